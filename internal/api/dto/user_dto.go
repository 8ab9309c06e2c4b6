package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/shopping-service/internal/domain"
)

// LoginRequest payload for basic authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate requires both credentials to be present.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokensResponse is returned by a successful login.
type TokensResponse struct {
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	Token string `json:"token"`
}

// Validate requires the token to be present.
func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)
}

// RefreshResponse carries a new access token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// NewUserRequest payload for creating an account.
type NewUserRequest struct {
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsAdmin     bool   `json:"is_admin"`
}

// Validate checks the request fields.
func (r NewUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 256)),
	)
}

// UserResponse is the public view of an account. Username and password hash are omitted.
type UserResponse struct {
	ID          int32  `json:"id"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, DisplayName: u.DisplayName, IsAdmin: u.IsAdmin}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// MeResponse echoes the caller's verified claims.
type MeResponse struct {
	UserID      int32  `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}
