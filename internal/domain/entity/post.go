package entity

import "time"

// Post pertenece a un Author.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment pertenece a un Post y se borra con él.
type Comment struct {
	ID        string
	Content   string
	PostID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
