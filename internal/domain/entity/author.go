package entity

import "time"

// Author firma posts del blog. Name es único.
type Author struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
