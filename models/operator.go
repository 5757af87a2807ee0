package models

import "time"

// Operator is the signed-in staff member carried in the session token.
type Operator struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OperatorCredential is a stored login. PasswordHash is bcrypt.
type OperatorCredential struct {
	Username     string    `json:"username" bson:"_id"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
