package app

// User represents an account on the auth service.
type User struct {
	// Unique user ID in the auth service.
	ID string `json:"id"`

	// User's display name.
	Name string `json:"name"`

	// User's email address, used as the login.
	Email string `json:"email"`

	// Either "CLIENT" or "SELLER".
	Role string `json:"role"`
}

// RegisterBody is the payload sent to the auth service on registration.
type RegisterBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginBody is the payload sent to the auth service on login.
type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the auth service reply for both register and login.
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
