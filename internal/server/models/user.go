// Package models defines the fixture server's domain types.
package models

// User is a fixture account. The password is stored as a bcrypt hash.
type User struct {
	ID           int
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Image        string
	Gender       string
	Age          int
	BirthDate    string
	PasswordHash []byte
}
