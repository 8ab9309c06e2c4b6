package service

// Messages returned to clients by the service layer.
const (
	MsgUsernameNotFound  = "Username not found."
	MsgWrongPassword     = "Wrong password"
	MsgTokenFailure      = "Failed to generate token"
	MsgInvalidRefresh    = "Invalid JWT"
	MsgRefreshUserGone   = "No user found."
	MsgUsernameTaken     = "Username already taken"
	MsgSelfDelete        = "You cannot delete your own account"
	MsgUserNotFound      = "User not found"
	MsgItemNotFound      = "Item not found"
	MsgPasswordHashError = "Failed to hash password"
)
