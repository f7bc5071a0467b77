// File: internal/api/article_request.go
package api

// ArticleRequest is shared by create and update. Excerpt and categories
// are optional; a blank excerpt is derived from the content head.
// swagger:model api.ArticleRequest
type ArticleRequest struct {
	Title      string   `json:"title" validate:"required" example:"Patch 14.9 jungle notes"`
	Content    string   `json:"content" validate:"required"`
	Published  bool     `json:"published"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Categories []string `json:"categories,omitempty" example:"jungle,meta"`
}
