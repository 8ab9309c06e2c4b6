package domain

// User is an account that can log in to the service.
type User struct {
	ID           int32
	DisplayName  string
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// NewUser carries the fields required to insert a user.
type NewUser struct {
	DisplayName  string
	Username     string
	PasswordHash string
	IsAdmin      bool
}
