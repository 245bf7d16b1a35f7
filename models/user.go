package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash is the bcrypt form of the password and is never serialized.
type User struct {
	// ID is the database-assigned identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the salted bcrypt hash. It must never contain
	// plaintext and is not exposed via JSON.
	PasswordHash string `json:"-"`

	// Name is the optional display name of the user.
	Name *string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credentials is the request body of the register and login endpoints.
// Passwords are capped at 72 bytes, the longest input bcrypt hashes without
// truncation.
type Credentials struct {
	Email    string  `json:"email" validate:"required,max=254,email"`
	Password string  `json:"password" validate:"required,maxbytes=72"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

// LoginResult describes the outcome of a login attempt.
// Token is set only when Success is true.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Profile is the payload of the authenticated profile endpoint.
type Profile struct {
	UserInfo User `json:"userInfo"`
}
