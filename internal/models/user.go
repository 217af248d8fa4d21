package models

// User is the identity returned by the external identity provider after a
// successful login. Only the fields the mobile app needs are kept.
type User struct {
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
}
