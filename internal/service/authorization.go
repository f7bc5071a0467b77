// File: internal/service/authorization.go
package service

import (
	"errors"

	"hextechhub/internal/model"
)

// ErrAccessDenied is returned when the policy rejects a requester.
var ErrAccessDenied = errors.New("access denied")

// CanModifyArticle allows writes and deletes for the author and for
// admins, regardless of the published flag.
func CanModifyArticle(article *model.Article, requesterEmail string, role model.Role) error {
	switch role {
	case model.RoleAdmin:
		return nil
	case model.RoleUser:
		if article.AuthorEmail == requesterEmail {
			return nil
		}
	}
	return ErrAccessDenied
}

// CanReadArticle allows reads of published articles for anyone; drafts
// follow the modify rule.
func CanReadArticle(article *model.Article, requesterEmail string, role model.Role) error {
	if article.Published {
		return nil
	}
	return CanModifyArticle(article, requesterEmail, role)
}
