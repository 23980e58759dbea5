package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/livrariapp/livraria-server/internal/database"
)

// RouterConfig carries the router dependencies, keeping NewRouter's
// signature stable as controllers are added.
type RouterConfig struct {
	Database  *database.Database
	Favorites FavoritesService
	Books     BooksService
	Version   string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// The mobile client runs from arbitrary origins and sends no
	// credentials, so CORS is wide open.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	favoritesController := NewFavoritesController(cfg.Favorites)
	favoritos := router.Group("/favoritos")
	favoritos.GET("/device/:deviceId", favoritesController.ListByDevice)
	favoritos.GET("/check", favoritesController.Check)
	favoritos.POST("", favoritesController.Add)
	favoritos.DELETE("", favoritesController.Remove)
	favoritos.GET("/:id", favoritesController.GetByID)
	favoritos.DELETE("/:id", favoritesController.DeleteByID)

	booksController := NewBooksController(cfg.Books)
	livros := router.Group("/livros")
	livros.POST("", booksController.Create)
	livros.GET("", booksController.List)
	livros.GET("/busca", booksController.Search)
	livros.GET("/favoritos/device/:deviceId", booksController.FavoritesByDevice)
	livros.GET("/favoritos/check", booksController.CheckFavorite)
	livros.POST("/favoritos", booksController.AddFavorite)
	livros.DELETE("/favoritos", booksController.RemoveFavorite)
	livros.GET("/:id", booksController.GetByID)
	livros.PUT("/:id", booksController.Update)
	livros.DELETE("/:id", booksController.Delete)

	return router
}
