package router

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hextechhub/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubProxy struct{}

func (stubProxy) SummonerByName(context.Context, string, string) (json.RawMessage, error) {
	return nil, nil
}

func (stubProxy) MatchesByPUUID(context.Context, string, string, int) (json.RawMessage, error) {
	return nil, nil
}

func (stubProxy) MatchByID(context.Context, string, string) (json.RawMessage, error) {
	return nil, nil
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, stubProxy{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/signup",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/articles/public",
		http.MethodGet + " /api/articles/mine",
		http.MethodPost + " /api/articles",
		http.MethodGet + " /api/articles/:id",
		http.MethodPut + " /api/articles/:id",
		http.MethodDelete + " /api/articles/:id",
		http.MethodGet + " /api/champions",
		http.MethodGet + " /api/champions/:id",
		http.MethodGet + " /api/champions/role/:role",
		http.MethodGet + " /api/meta/tier-list",
		http.MethodGet + " /api/lol/summoner/by-name/:region/:name",
		http.MethodGet + " /api/lol/matches/by-puuid/:region/:puuid",
		http.MethodGet + " /api/lol/match/:region/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
