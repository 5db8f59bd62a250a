package entity

import "time"

// Task es una tarea de un usuario. OwnerID no se valida contra users.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
