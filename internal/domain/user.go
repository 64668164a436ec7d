package domain

// User is an operator account. PasswordHash is only populated on the
// authentication path; listing queries never select it.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	CreatedAt    string
}
