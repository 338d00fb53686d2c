package model

import "time"

// User mirrors the 'users' table.  PasswordHash is the bcrypt digest; the
// plaintext password never leaves the signup/login handlers.
type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
