package domain

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_repository.go -package=mocks

import "context"

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByIDAndEmail(ctx context.Context, userID, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, userID, email string) error
	UpdatePassword(ctx context.Context, userID, email, passwordHash string) error
}

type SessionRepository interface {
	Insert(ctx context.Context, session *Session) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	ExistsForUser(ctx context.Context, userID, sessionID string) (bool, error)
	Delete(ctx context.Context, userID, sessionID string) error
}

type RefreshTokenRepository interface {
	Replace(ctx context.Context, record *RefreshTokenRecord) error
	Find(ctx context.Context, userID, email string) (*RefreshTokenRecord, error)
	Delete(ctx context.Context, userID, email string) error
}

// EmailDispatcher delivers an email either synchronously (Send) or by
// handing it to the background queue (Schedule). Schedule only reports
// enqueue failures; delivery failures surface in the worker.
type EmailDispatcher interface {
	Send(ctx context.Context, msg EmailMessage) error
	Schedule(ctx context.Context, msg EmailMessage) error
}
