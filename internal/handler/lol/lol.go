// File: internal/handler/lol/lol.go
package lol

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hextechhub/internal/api"
	"hextechhub/internal/riot"

	"github.com/labstack/echo/v4"
)

// defaultMatchCount mirrors the upstream default page size.
const defaultMatchCount = 10

// Proxy is the slice of the riot client these handlers need.
type Proxy interface {
	SummonerByName(ctx context.Context, region, name string) (json.RawMessage, error)
	MatchesByPUUID(ctx context.Context, region, puuid string, count int) (json.RawMessage, error)
	MatchByID(ctx context.Context, region, matchID string) (json.RawMessage, error)
}

// proxyError collapses upstream failures: a missing credential is 503,
// anything that went wrong past that point is 404.
func proxyError(c echo.Context, err error) error {
	if errors.Is(err, riot.ErrAPIUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "riot api unavailable"})
	}
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "data not found or unavailable"})
}

// @Summary     Summoner by name
// @Description Proxies the summoner-v4 lookup for the region, returning the upstream body unchanged.
// @Tags        lol
// @Produce     json
// @Param       region path string true "region code (EUW, NA, KR, ...)"
// @Param       name path string true "summoner name"
// @Success     200
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /lol/summoner/by-name/{region}/{name} [get]
func SummonerByNameHandler(client Proxy) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := client.SummonerByName(c.Request().Context(), c.Param("region"), c.Param("name"))
		if err != nil {
			return proxyError(c, err)
		}
		return c.JSONBlob(http.StatusOK, body)
	}
}

// @Summary     Match IDs by PUUID
// @Description Proxies the match-v5 id list for the region's cluster. count defaults to 10.
// @Tags        lol
// @Produce     json
// @Param       region path string true "region code"
// @Param       puuid path string true "player PUUID"
// @Param       count query int false "number of match IDs" default(10)
// @Success     200
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /lol/matches/by-puuid/{region}/{puuid} [get]
func MatchesByPUUIDHandler(client Proxy) echo.HandlerFunc {
	return func(c echo.Context) error {
		count := defaultMatchCount
		if v := c.QueryParam("count"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				count = n
			}
		}
		body, err := client.MatchesByPUUID(c.Request().Context(), c.Param("region"), c.Param("puuid"), count)
		if err != nil {
			return proxyError(c, err)
		}
		return c.JSONBlob(http.StatusOK, body)
	}
}

// @Summary     Match detail
// @Description Proxies one match-v5 detail for the region's cluster.
// @Tags        lol
// @Produce     json
// @Param       region path string true "region code"
// @Param       id path string true "match ID"
// @Success     200
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /lol/match/{region}/{id} [get]
func MatchByIDHandler(client Proxy) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := client.MatchByID(c.Request().Context(), c.Param("region"), c.Param("id"))
		if err != nil {
			return proxyError(c, err)
		}
		return c.JSONBlob(http.StatusOK, body)
	}
}
