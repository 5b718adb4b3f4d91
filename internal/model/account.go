package model

import "time"

// Role values stored on an account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a person who signed in with Google or registered with
// an email and password.  The same document shape serves both methods; at
// least one of GoogleID or PasswordHash is always set.
//
// Fields:
//
//	ID           – system-assigned identifier (xid string).
//	Email        – unique address, stored as supplied.
//	Name         – display name.
//	Picture      – avatar URL, optional.
//	GoogleID     – Google subject identifier, optional and unique when present.
//	PasswordHash – bcrypt hash for locally registered accounts; never serialized.
//	Role         – user or admin.
//	CreatedAt    – creation timestamp (UTC).
type Account struct {
	ID           string    `json:"_id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Picture      string    `json:"picture,omitempty" bson:"picture,omitempty"`
	GoogleID     string    `json:"googleId,omitempty" bson:"googleId,omitempty"`
	PasswordHash string    `json:"-" bson:"password,omitempty"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// HasPassword reports whether the account can log in with a password.
func (a Account) HasPassword() bool { return a.PasswordHash != "" }

// Sanitized returns a copy without the password hash.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}
