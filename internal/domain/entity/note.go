package entity

import "time"

// Note es privada de su dueño (OwnerID = id del usuario del token).
type Note struct {
	ID        string
	Title     string
	Content   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
