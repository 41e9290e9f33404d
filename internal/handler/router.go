package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the route table, template set and static mount on a
// default gin engine. The paths are parameters so tests can point at the
// repository-relative template and asset directories.
func SetupRouter(templateGlob, staticDir string) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(templateGlob)
	router.Static("/public", staticDir)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.GET("/", Home)

	games := router.Group("/games")
	{
		games.GET("", ListGames)
		games.GET("/create", NewGame)
		games.POST("/create", CreateGame)
		games.GET("/:id", GameDetail)
		games.GET("/:id/edit", EditGame)
		games.POST("/:id/edit", UpdateGame)
		games.POST("/:id/delete", DeleteGame)
	}

	return router
}
