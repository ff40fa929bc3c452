package users

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates a new account with a bcrypt-hashed password.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, req LoginRequest) (string, error)
}

// Repository defines the data access interface for accounts
type Repository interface {
	// Create inserts a new user. Duplicate email or username surface as
	// ErrEmailTaken / ErrUsernameTaken.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail returns ErrUserNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns ErrUserNotFound when no account matches.
	GetByID(ctx context.Context, id string) (*User, error)
}

// TokenIssuer mints a signed credential for an authenticated user.
type TokenIssuer interface {
	Issue(userID, name string) (string, error)
}
