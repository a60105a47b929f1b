package user

import "time"

// User is a marketplace account. PasswordHash never leaves the persistence
// and auth layers; API payloads are built from the public fields only.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
