package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}
