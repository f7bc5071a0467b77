// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"hextechhub/internal/database"
	"hextechhub/internal/handler"
	"hextechhub/internal/handler/articles"
	"hextechhub/internal/handler/auth"
	"hextechhub/internal/handler/champions"
	"hextechhub/internal/handler/lol"
	"hextechhub/internal/middleware"
)

// Setup registers every route under /api.
func Setup(e *echo.Echo, db database.DB, riotClient lol.Proxy) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth)

	// authentication
	api.POST("/auth/signup", auth.SignupHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// articles: public list is open, everything else needs a token
	apiArticles := api.Group("/articles")
	apiArticles.GET("/public", articles.ListPublicHandler(db))
	apiArticles.GET("/mine", articles.ListMineHandler(db), middleware.RequireAuth)
	apiArticles.POST("", articles.CreateHandler(db), middleware.RequireAuth)
	apiArticles.GET("/:id", articles.GetHandler(db), middleware.RequireAuth)
	apiArticles.PUT("/:id", articles.UpdateHandler(db), middleware.RequireAuth)
	apiArticles.DELETE("/:id", articles.DeleteHandler(db), middleware.RequireAuth)

	// champion reference data, open
	apiChampions := api.Group("/champions")
	apiChampions.GET("", champions.ListHandler(db))
	apiChampions.GET("/:id", champions.GetHandler(db))
	apiChampions.GET("/role/:role", champions.ListByRoleHandler(db))
	api.GET("/meta/tier-list", champions.TierListHandler(db))

	// riot proxy, open (the upstream credential is server-side)
	apiLol := api.Group("/lol")
	apiLol.GET("/summoner/by-name/:region/:name", lol.SummonerByNameHandler(riotClient))
	apiLol.GET("/matches/by-puuid/:region/:puuid", lol.MatchesByPUUIDHandler(riotClient))
	apiLol.GET("/match/:region/:id", lol.MatchByIDHandler(riotClient))
}
