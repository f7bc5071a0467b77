// File: internal/handler/champions/champion.go
package champions

import (
	"errors"
	"net/http"
	"strconv"

	"hextechhub/internal/api"
	"hextechhub/internal/database"
	"hextechhub/internal/model"
	"hextechhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listChampions       = store.ListChampions
	getChampionByID     = store.GetChampionByID
	listChampionsByRole = store.ListChampionsByRole
)

func toResponse(c *model.Champion) api.ChampionResponse {
	return api.ChampionResponse{
		ID:       c.ID,
		Name:     c.Name,
		Role:     c.Role,
		WinRate:  c.WinRate,
		PickRate: c.PickRate,
		BanRate:  c.BanRate,
		Matches:  c.Matches,
	}
}

func toResponses(list []model.Champion) []api.ChampionResponse {
	out := make([]api.ChampionResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	return out
}

// @Summary     List champions
// @Description Returns all champion statistics, numeric fields parsed from the stored raw strings.
// @Tags        champions
// @Produce     json
// @Success     200 {array} api.ChampionResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /champions [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listChampions(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponses(list))
	}
}

// @Summary     Get a champion by ID
// @Tags        champions
// @Produce     json
// @Param       id path int true "champion ID"
// @Success     200 {object} api.ChampionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /champions/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid champion ID"})
		}
		champion, err := getChampionByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "champion not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(champion))
	}
}

// @Summary     List champions by role
// @Description Role match is case-insensitive.
// @Tags        champions
// @Produce     json
// @Param       role path string true "champion role"
// @Success     200 {array} api.ChampionResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /champions/role/{role} [get]
func ListByRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listChampionsByRole(c.Request().Context(), db, c.Param("role"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponses(list))
	}
}

// @Summary     Meta tier list
// @Description Alias over the full champion list, as consumed by the tier-list view.
// @Tags        meta
// @Produce     json
// @Success     200 {array} api.ChampionResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meta/tier-list [get]
func TierListHandler(db database.DB) echo.HandlerFunc {
	return ListHandler(db)
}
