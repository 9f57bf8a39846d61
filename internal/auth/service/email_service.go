package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gowtham404/books-store-api/config"
	"github.com/gowtham404/books-store-api/internal/auth/domain"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

// DispatchMode selects how an email leaves the request path.
type DispatchMode int

const (
	// DispatchBlocking delivers before returning. Signup uses this so no
	// user record is persisted unless the verification mail went out.
	DispatchBlocking DispatchMode = iota
	// DispatchBackground enqueues delivery; only enqueue failures surface.
	DispatchBackground
)

const (
	TemplateAccountVerification             = "account-verification"
	TemplateAccountVerificationConfirmation = "account-verification-confirmation"
	TemplatePasswordReset                   = "password-reset"
	TemplatePasswordResetConfirmation       = "password-reset-confirmation"
)

// EmailService composes the transactional emails of the account lifecycle
// and hands them to the dispatcher.
type EmailService struct {
	dispatcher domain.EmailDispatcher
	cfg        *config.Config
}

func NewEmailService(dispatcher domain.EmailDispatcher, cfg *config.Config) *EmailService {
	return &EmailService{dispatcher: dispatcher, cfg: cfg}
}

// VerificationURL builds the frontend activation link for a signed token.
func (es *EmailService) VerificationURL(token, email string) string {
	return fmt.Sprintf("%s/user-auth/account-verify?token=%s&email=%s", es.cfg.FrontendHost, token, email)
}

// PasswordResetURL builds the frontend reset link for a signed token.
func (es *EmailService) PasswordResetURL(token, email string) string {
	return fmt.Sprintf("%s/user-auth/reset-password?token=%s&email=%s", es.cfg.FrontendHost, token, email)
}

func (es *EmailService) SendAccountVerificationEmail(ctx context.Context, user *domain.User, activateURL string, mode DispatchMode) error {
	msg := es.message(user, fmt.Sprintf("Account Verification - %s", es.cfg.AppName), TemplateAccountVerification, map[string]any{
		"app_name":     es.cfg.AppName,
		"name":         user.Name,
		"activate_url": activateURL,
	})
	return es.dispatch(ctx, msg, mode, "Failed to send account verification email!")
}

func (es *EmailService) SendAccountVerificationConfirmationEmail(ctx context.Context, user *domain.User, mode DispatchMode) error {
	msg := es.message(user, fmt.Sprintf("Welcome - %s", es.cfg.AppName), TemplateAccountVerificationConfirmation, map[string]any{
		"app_name":  es.cfg.AppName,
		"name":      user.Name,
		"login_url": fmt.Sprintf("%s/login", es.cfg.FrontendHost),
	})
	return es.dispatch(ctx, msg, mode, "Failed to send account activation confirmation email!")
}

func (es *EmailService) SendPasswordResetEmail(ctx context.Context, user *domain.User, resetURL string, mode DispatchMode) error {
	msg := es.message(user, fmt.Sprintf("Reset Password - %s", es.cfg.AppName), TemplatePasswordReset, map[string]any{
		"app_name":     es.cfg.AppName,
		"name":         user.Name,
		"activate_url": resetURL,
	})
	return es.dispatch(ctx, msg, mode, "Failed to send reset password email!")
}

func (es *EmailService) SendPasswordResetConfirmationEmail(ctx context.Context, user *domain.User, mode DispatchMode) error {
	msg := es.message(user, fmt.Sprintf("Password Reset Successful - %s", es.cfg.AppName), TemplatePasswordResetConfirmation, map[string]any{
		"app_name":           es.cfg.AppName,
		"name":               user.Name,
		"login_url":          fmt.Sprintf("%s/login", es.cfg.FrontendHost),
		"support_team_email": es.cfg.MailFrom,
	})
	return es.dispatch(ctx, msg, mode, "Failed to send password reset confirmation email!")
}

func (es *EmailService) message(user *domain.User, subject, template string, context map[string]any) domain.EmailMessage {
	return domain.EmailMessage{
		MessageID:  uuid.NewString(),
		Recipients: []string{user.Email},
		Subject:    subject,
		Template:   template,
		Context:    context,
	}
}

func (es *EmailService) dispatch(ctx context.Context, msg domain.EmailMessage, mode DispatchMode, failMsg string) error {
	var err error
	if mode == DispatchBlocking {
		err = es.dispatcher.Send(ctx, msg)
	} else {
		err = es.dispatcher.Schedule(ctx, msg)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, failMsg, err)
	}
	return nil
}
