// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account. PasswordHash holds a bcrypt hash and is
// never serialized; use SetPassword to change it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// MaxPasswordBytes is the longest input bcrypt reads. Longer passwords are
// cut to this many bytes before hashing and comparing.
const MaxPasswordBytes = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// SetPassword hashes password with a fresh salt at the given bcrypt cost and
// stores the result. It is the only way the stored hash changes, so saving a
// user without calling it never re-hashes.
func (u *User) SetPassword(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, bcryptInput(password)) == nil
}
