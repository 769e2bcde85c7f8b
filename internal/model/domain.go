package model

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Calculation is a saved addition belonging to a user.
type Calculation struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Number1   float64   `json:"number1"`
	Number2   float64   `json:"number2"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
