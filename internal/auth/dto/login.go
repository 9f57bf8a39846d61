package dto

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries everything the login handler needs to shape its
// response, including the soft-fail branch for unverified accounts.
type LoginResult struct {
	Verified     bool
	User         UserOutput
	SessionID    string
	AccessToken  string
	RefreshToken string
}
