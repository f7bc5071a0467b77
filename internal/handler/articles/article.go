// File: internal/handler/articles/article.go
package articles

import (
	"errors"
	"net/http"
	"strconv"

	"hextechhub/internal/api"
	"hextechhub/internal/database"
	"hextechhub/internal/middleware"
	"hextechhub/internal/model"
	"hextechhub/internal/service"
	"hextechhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail = store.GetUserByEmail
	createArticle  = store.CreateArticle
	getArticleByID = store.GetArticleByID
	listPublished  = store.ListPublishedArticles
	listByAuthor   = store.ListArticlesByAuthor
	updateArticle  = store.UpdateArticle
	deleteArticle  = store.DeleteArticle
)

func requester(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims.Subject != ""
}

func toResponse(a *model.Article) api.ArticleResponse {
	return api.ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		Categories:  service.SplitCategories(a.Categories),
		Published:   a.Published,
		AuthorEmail: a.AuthorEmail,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toResponses(list []model.Article) []api.ArticleResponse {
	out := make([]api.ArticleResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	return out
}

// @Summary     List public articles
// @Description Returns every published article. No authentication required.
// @Tags        articles
// @Produce     json
// @Success     200 {array} api.ArticleResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles/public [get]
func ListPublicHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listPublished(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponses(list))
	}
}

// @Summary     List own articles
// @Description Returns every article owned by the authenticated user, drafts included.
// @Tags        articles
// @Produce     json
// @Success     200 {array} api.ArticleResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles/mine [get]
func ListMineHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := requester(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByEmail(c.Request().Context(), db, claims.Subject)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		list, err := listByAuthor(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponses(list))
	}
}

// @Summary     Create an article
// @Description The authenticated user becomes the author. A blank excerpt is derived from the first 240 characters of content.
// @Tags        articles
// @Accept      json
// @Produce     json
// @Param       request body api.ArticleRequest true "article payload"
// @Success     200 {object} api.ArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := requester(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.ArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		author, err := getUserByEmail(c.Request().Context(), db, claims.Subject)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "author not found"})
		}

		article := &model.Article{
			Title:      req.Title,
			Content:    req.Content,
			Excerpt:    service.MakeExcerpt(req.Content, req.Excerpt),
			Categories: service.JoinCategories(req.Categories),
			AuthorID:   author.ID,
			Published:  req.Published,
		}
		created, err := createArticle(c.Request().Context(), db, article)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		created.AuthorEmail = author.Email

		return c.JSON(http.StatusOK, toResponse(created))
	}
}

// @Summary     Get an article by ID
// @Description Drafts are visible only to their author and to admins.
// @Tags        articles
// @Produce     json
// @Param       id path int true "article ID"
// @Success     200 {object} api.ArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := requester(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		article, err := getArticleByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := service.CanReadArticle(article, claims.Subject, claims.Role); err != nil {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		return c.JSON(http.StatusOK, toResponse(article))
	}
}

// @Summary     Update an article
// @Description Only the author or an admin may update. The author is never reassigned.
// @Tags        articles
// @Accept      json
// @Produce     json
// @Param       id path int true "article ID"
// @Param       request body api.ArticleRequest true "article payload"
// @Success     200 {object} api.ArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := requester(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		var req api.ArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		article, err := getArticleByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := service.CanModifyArticle(article, claims.Subject, claims.Role); err != nil {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		article.Title = req.Title
		article.Content = req.Content
		article.Excerpt = service.MakeExcerpt(req.Content, req.Excerpt)
		article.Categories = service.JoinCategories(req.Categories)
		article.Published = req.Published
		if err := updateArticle(c.Request().Context(), db, article); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// re-read for the refreshed updated_at
		updated, err := getArticleByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(updated))
	}
}

// @Summary     Delete an article
// @Description Only the author or an admin may delete.
// @Tags        articles
// @Param       id path int true "article ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := requester(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		article, err := getArticleByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := service.CanModifyArticle(article, claims.Subject, claims.Role); err != nil {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		if err := deleteArticle(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
