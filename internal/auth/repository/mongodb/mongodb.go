// Package mongodb implements the credential store over the users,
// refresh_tokens and user_sessions collections.
package mongodb

const (
	usersCollection         = "users"
	refreshTokensCollection = "refresh_tokens"
	userSessionsCollection  = "user_sessions"
)
