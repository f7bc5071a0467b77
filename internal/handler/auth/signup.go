// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"regexp"
	"strings"

	"hextechhub/internal/api"
	"hextechhub/internal/database"
	"hextechhub/internal/model"
	"hextechhub/internal/service"
	"hextechhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// riotIDPattern matches "GameName#TAG" Riot identifiers.
var riotIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.\s]{3,16}#[A-Za-z0-9]{3,5}$`)

// @Summary     Sign up
// @Description Registers a new account. Email is normalized to lowercase; the role is always USER.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.SignupRequest true "signup payload"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}
		if req.RiotID != nil && !riotIDPattern.MatchString(*req.RiotID) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid riot id format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		_, err = createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			FullName:     req.FullName,
			RiotID:       req.RiotID,
			Region:       req.Region,
			Role:         model.RoleUser,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusOK)
	}
}
