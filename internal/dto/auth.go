package dto

import "time"

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=2,max=20" example:"sensei"`
	Email    string `json:"email" validate:"required,email,max=120" example:"sensei@dojo.it"`
	Password string `json:"password" validate:"required,min=6" example:"kihon123"`
	Pin      string `json:"pin,omitempty" validate:"omitempty,number,min=4,max=6" example:"1234"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required" example:"sensei@dojo.it"`
	Password string `json:"password" example:"kihon123"`
	Pin      string `json:"pin,omitempty" example:"1234"`
}

type PinLoginRequestDTO struct {
	Email string `json:"email" validate:"required" example:"sensei@dojo.it"`
	Pin   string `json:"pin" validate:"required" example:"1234"`
}

type UserResponseDTO struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"sensei"`
	Email     string     `json:"email" example:"sensei@dojo.it"`
	IsAdmin   bool       `json:"is_admin" example:"false"`
	LastLogin *time.Time `json:"last_login,omitempty" example:"2024-03-01T18:30:00Z"`
}

type LoginResponseDTO struct {
	Message string          `json:"message" example:"User successfully authenticated"`
	Token   string          `json:"token"`
	User    UserResponseDTO `json:"user"`
}
