package domain

import "time"

// User is a stored account record. Password holds the bcrypt hash; it is
// never serialized outward.
type User struct {
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Password   string    `bson:"password" json:"-"`
	IsVerified bool      `bson:"is_verified" json:"is_verified"`
	CreatedAt  time.Time `bson:"created_at" json:"-"`
	UpdatedAt  time.Time `bson:"updated_at" json:"-"`
}

// Session binds a session identifier to a user. Its existence is the sole
// authority for whether tokens carrying the session id remain honored.
type Session struct {
	SessionID string `bson:"session_id"`
	UserID    string `bson:"user_id"`
	Email     string `bson:"email"`
}

// RefreshTokenRecord stores the latest issued refresh token for a user.
// At most one record exists per (user_id, email) pair; a new login replaces
// the previous one.
type RefreshTokenRecord struct {
	UserID       string `bson:"user_id"`
	Email        string `bson:"email"`
	RefreshToken string `bson:"refresh_token"`
}

// EmailMessage is the unit handed to the email dispatcher. Context keys feed
// the named HTML template.
type EmailMessage struct {
	MessageID  string         `json:"message_id"`
	Recipients []string       `json:"recipients"`
	Subject    string         `json:"subject"`
	Template   string         `json:"template"`
	Context    map[string]any `json:"context"`
}
