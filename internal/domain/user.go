package domain

import "time"

// User представляет пользователя сервиса
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserCreate - данные для регистрации пользователя
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserPatch - частичное обновление профиля
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}
