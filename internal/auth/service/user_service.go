package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
	"github.com/gowtham404/books-store-api/internal/auth/dto"
	"github.com/gowtham404/books-store-api/internal/auth/security"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
	"github.com/gowtham404/books-store-api/pkg/keygen"
)

// UserService orchestrates the account lifecycle flows: signup, login,
// account verification, token refresh, logout and password reset.
type UserService struct {
	users         domain.UserRepository
	refreshTokens domain.RefreshTokenRepository
	sessions      *SessionManager
	tokenService  TokenGenerator
	emailService  *EmailService
	validate      *validator.Validate
}

func NewUserService(
	users domain.UserRepository,
	refreshTokens domain.RefreshTokenRepository,
	sessions *SessionManager,
	tokenService TokenGenerator,
	emailService *EmailService,
) *UserService {
	return &UserService{
		users:         users,
		refreshTokens: refreshTokens,
		sessions:      sessions,
		tokenService:  tokenService,
		emailService:  emailService,
		validate:      newValidator(),
	}
}

// Signup validates the input, sends the verification email and only then
// persists the user. A failed email dispatch means no user is created.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*dto.UserOutput, error) {
	if err := s.validateStruct(input); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to look up user!", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	userID, err := keygen.NewKey()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "User not created!", err)
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserID:     userID,
		Name:       input.Name,
		Email:      input.Email,
		Password:   hash,
		IsVerified: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	verificationToken, err := s.tokenService.IssueAccessToken(user.UserID, user.Email, "")
	if err != nil {
		return nil, err
	}
	activateURL := s.emailService.VerificationURL(verificationToken, user.Email)
	if err := s.emailService.SendAccountVerificationEmail(ctx, user, activateURL, DispatchBlocking); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "User not created!", err)
	}

	out := dto.NewUserOutput(user)
	return &out, nil
}

// Login verifies credentials. Unverified accounts get the verification email
// re-sent and a soft-fail result instead of an error. Verified accounts get
// a fresh session plus an access/refresh token pair; the refresh-token store
// keeps only the newest record per user.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperrors.ErrAllFieldsRequired
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to look up user!", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	ok, err := security.VerifyPassword(input.Password, user.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrPasswordIncorrect
	}

	if !user.IsVerified {
		if err := s.resendVerificationEmail(ctx, user); err != nil {
			return nil, err
		}
		return &dto.LoginResult{Verified: false, User: dto.NewUserOutput(user)}, nil
	}

	sessionID, err := s.sessions.Open(ctx, user)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.IssueAccessToken(user.UserID, user.Email, sessionID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokenService.IssueRefreshToken(user.UserID, user.Email, sessionID)
	if err != nil {
		return nil, err
	}

	record := &domain.RefreshTokenRecord{
		UserID:       user.UserID,
		Email:        user.Email,
		RefreshToken: refreshToken,
	}
	if err := s.refreshTokens.Replace(ctx, record); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to store refresh token!", err)
	}

	return &dto.LoginResult{
		Verified:     true,
		User:         dto.NewUserOutput(user),
		SessionID:    sessionID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccount flips is_verified from an emailed token. Stale links fail
// with the token error; re-verifying an already verified account succeeds
// without another confirmation email.
func (s *UserService) VerifyAccount(ctx context.Context, token string) (string, error) {
	claims, err := s.tokenService.Verify(token, false)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByIDAndEmail(ctx, claims.UserID, claims.Email)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Failed to look up user!", err)
	}
	if user == nil {
		return "", apperrors.New(apperrors.KindNotFound, "User not found!")
	}

	if user.IsVerified {
		return "User account already verified. Login to continue.", nil
	}

	if err := s.users.MarkVerified(ctx, user.UserID, user.Email); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Failed to update verification status!", err)
	}

	// The flag change is already committed; a confirmation-email failure
	// surfaces as an internal error without rolling it back.
	if err := s.emailService.SendAccountVerificationConfirmationEmail(ctx, user, DispatchBackground); err != nil {
		return "", err
	}

	return "User account verified successfully. Login to continue.", nil
}

// Refresh exchanges a verified refresh-token claim set for a new access
// token. The refresh token itself is not rotated; the stored record's value
// is returned unchanged.
func (s *UserService) Refresh(ctx context.Context, claims *TokenClaims) (*dto.RefreshResult, error) {
	active, err := s.sessions.IsActiveForUser(ctx, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to look up user session!", err)
	}
	if !active {
		return nil, apperrors.ErrSessionInvalid
	}

	accessToken, err := s.tokenService.IssueAccessToken(claims.UserID, claims.Email, claims.SessionID)
	if err != nil {
		return nil, err
	}

	record, err := s.refreshTokens.Find(ctx, claims.UserID, claims.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to look up refresh token!", err)
	}
	if record == nil {
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	return &dto.RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: record.RefreshToken,
		SessionID:    claims.SessionID,
	}, nil
}

// Logout revokes the session and refresh token named by the token, which is
// decoded leniently so an expired access token still ends its session.
// Logging out twice is not an error.
func (s *UserService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokenService.DecodeIgnoringExpiry(token)
	if err != nil {
		return err
	}

	if err := s.sessions.Close(ctx, claims.UserID, claims.SessionID); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Failed to delete user session!", err)
	}
	if err := s.refreshTokens.Delete(ctx, claims.UserID, claims.Email); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Failed to delete refresh token!", err)
	}

	return nil
}

// ForgotPassword emails a reset link. The account does not need to be
// verified.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.ErrEmailRequired
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Failed to look up user!", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	resetToken, err := s.tokenService.IssueAccessToken(user.UserID, user.Email, "")
	if err != nil {
		return err
	}
	resetURL := s.emailService.PasswordResetURL(resetToken, user.Email)

	return s.emailService.SendPasswordResetEmail(ctx, user, resetURL, DispatchBackground)
}

// ResetPassword overwrites the password hash from an emailed reset token.
// Stale links fail with the token error.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return apperrors.ErrNewPasswordRequired
	}

	claims, err := s.tokenService.Verify(token, false)
	if err != nil {
		return err
	}

	user, err := s.users.FindByIDAndEmail(ctx, claims.UserID, claims.Email)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Failed to look up user!", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.UserID, user.Email, hash); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Failed to update password!", err)
	}

	// Same asymmetry as verification: the password change stays committed
	// even if the confirmation email fails.
	return s.emailService.SendPasswordResetConfirmationEmail(ctx, user, DispatchBackground)
}

func (s *UserService) resendVerificationEmail(ctx context.Context, user *domain.User) error {
	verificationToken, err := s.tokenService.IssueAccessToken(user.UserID, user.Email, "")
	if err != nil {
		return err
	}
	activateURL := s.emailService.VerificationURL(verificationToken, user.Email)
	return s.emailService.SendAccountVerificationEmail(ctx, user, activateURL, DispatchBackground)
}

func (s *UserService) validateStruct(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		fieldErrs = errs
	}
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			return apperrors.ErrAllFieldsRequired
		case "emailstrict":
			return apperrors.ErrInvalidEmailFormat
		case "strongpwd":
			return apperrors.ErrWeakPassword
		}
	}

	return apperrors.Wrap(apperrors.KindInternal, "Failed to validate input!", err)
}
