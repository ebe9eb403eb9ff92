package models

import "time"

// RoleUser is the role assigned to accounts created through signup.
const RoleUser = "USER"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
