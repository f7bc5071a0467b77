// File: internal/model/article.go
package model

import "time"

// Article is a content record owned by exactly one author.
// Categories holds the stored CSV form; handlers expand it for responses.
type Article struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Excerpt     string    `db:"excerpt" json:"excerpt"`
	Categories  string    `db:"categories" json:"categories"`
	AuthorID    int       `db:"author_id" json:"author_id"`
	AuthorEmail string    `db:"-" json:"author_email"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
