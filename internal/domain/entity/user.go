package entity

import "time"

// User usuario que puede iniciar sesión en el panel.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash
	FullName     string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Actor usuario autenticado de la petición en curso.
type Actor struct {
	UserID    int64
	Username  string
	SessionID string
	ExpiresAt time.Time // vencimiento de la sesión
}
