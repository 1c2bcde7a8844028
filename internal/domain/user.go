package domain

import "time"

// User is the identity record. The id is immutable once assigned and the
// email is stored case-normalized; the password hash is an argon2id PHC
// string that never leaves the store layer except for verification.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
