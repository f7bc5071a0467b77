// File: internal/api/article_response.go
package api

import "time"

// swagger:model api.ArticleResponse
type ArticleResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Categories  []string  `json:"categories"`
	Published   bool      `json:"published"`
	AuthorEmail string    `json:"author_email" example:"alice@example.com"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
