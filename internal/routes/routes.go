package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/config"
	"github.com/tsuiio/blog/internal/handlers"
	"github.com/tsuiio/blog/internal/middleware"
	"github.com/tsuiio/blog/internal/services"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	shortIDService := services.NewShortIDService(db)
	authService := services.NewAuthService(db)
	noteService := services.NewNoteService(db, shortIDService, cfg.Blog.SummaryLength)
	pageService := services.NewPageService(db, shortIDService)
	assocService := services.NewAssocService(db)
	tagService := services.NewTagService(db)
	sortService := services.NewSortService(db)
	infoService := services.NewInfoService(db)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService, assocService)
	pageHandler := handlers.NewPageHandler(pageService, assocService)
	tagHandler := handlers.NewTagHandler(tagService)
	sortHandler := handlers.NewSortHandler(sortService)
	infoHandler := handlers.NewInfoHandler(infoService)

	api := router.Group("/api")

	public := api.Group("")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/user", userHandler.Register)
		public.GET("/tags/:page", tagHandler.GetTags)
		public.GET("/sorts", sortHandler.GetSorts)
		public.GET("/info", infoHandler.GetInfo)
	}

	// read paths reveal ids and hidden statuses only to valid tokens
	optional := api.Group("")
	optional.Use(middleware.OptionalAuth(cfg))
	{
		optional.GET("/note/:token", noteHandler.GetNote)
		optional.GET("/notes/:page", noteHandler.ListNotes)
		optional.GET("/page/:token", pageHandler.GetPage)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg))
	{
		protected.PUT("/user", userHandler.UpdateInfo)

		protected.POST("/note", noteHandler.CreateNote)
		protected.PUT("/note/:id", noteHandler.UpdateNote)
		protected.DELETE("/note/:id", noteHandler.DeleteNote)
		protected.POST("/note/:id/tag/:tagID", noteHandler.AddTag)
		protected.DELETE("/note/:id/tag/:tagID", noteHandler.RemoveTag)
		protected.POST("/note/:id/sort/:sortID", noteHandler.AddSort)
		protected.DELETE("/note/:id/sort/:sortID", noteHandler.RemoveSort)

		protected.POST("/page", pageHandler.CreatePage)
		protected.PUT("/page/:id", pageHandler.UpdatePage)
		protected.DELETE("/page/:id", pageHandler.DeletePage)
		protected.POST("/page/:id/sort/:sortID", pageHandler.AddSort)
		protected.DELETE("/page/:id/sort/:sortID", pageHandler.RemoveSort)

		protected.POST("/tag", tagHandler.CreateTag)
		protected.PUT("/tag/:id", tagHandler.UpdateTag)
		protected.DELETE("/tag/:id", tagHandler.DeleteTag)

		protected.POST("/sort", sortHandler.CreateSort)
		protected.PUT("/sort/:id", sortHandler.UpdateSort)
		protected.DELETE("/sort/:id", sortHandler.DeleteSort)

		protected.POST("/info", infoHandler.CreateInfo)
		protected.PUT("/info", infoHandler.UpdateInfo)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
