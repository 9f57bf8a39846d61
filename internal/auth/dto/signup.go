package dto

type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,emailstrict"`
	Password string `json:"password" validate:"required,strongpwd"`
}
