package server

import (
	"log"
	"net/http"

	"blog-server/auth"
	"blog-server/confs"
	"blog-server/db"
	"blog-server/handlers"
	httpHandler "blog-server/handlers/http"
	"blog-server/media"
	"blog-server/repositories"
	"blog-server/usecases"
	"blog-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app  *gin.Engine
	db   db.Database
	feed *ws.Manager
	addr string
}

func NewServer(database db.Database, cfg *confs.Config) (*Server, error) {
	app := gin.New()
	app.Use(gin.Logger())
	app.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		// Unhandled panics never leak internals to the client
		log.Printf("ERROR: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
	}))
	app.Use(httpHandler.RequestID())

	// Setup CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	app.Use(cors.New(corsConfig))

	// Setup healthcheck route
	app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Media store backing uploads and image retrieval
	mediaStore, err := media.NewStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(database)
	blogRepo := repositories.NewBlogPgRepository(database)

	// Initialize use cases
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authUseCase := usecases.NewAuthUseCase(userRepo, tokens)
	blogUseCase := usecases.NewBlogUseCase(blogRepo)

	// WebSocket feed manager and handler
	feed := ws.NewManager()
	feedHandler := handlers.NewFeedHandler(feed)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	blogHandler := httpHandler.NewBlogHandler(blogUseCase, mediaStore, feed)
	imageHandler := httpHandler.NewImageHandler(mediaStore)

	// Auth routes
	app.POST("/signup", authHandler.Signup)
	app.POST("/login", authHandler.Login)

	// Blog routes
	requireAuth := httpHandler.RequireAuth(authUseCase)
	blogs := app.Group("/blogs")
	{
		blogs.POST("/", requireAuth, blogHandler.CreateBlog)
		blogs.GET("/", blogHandler.GetAllBlogs)
		blogs.GET("/all", blogHandler.GetAllBlogs) // kept for client compatibility
		blogs.GET("/:id", blogHandler.GetBlog)
		blogs.PUT("/:id", requireAuth, blogHandler.UpdateBlog)
		blogs.DELETE("/:id", requireAuth, blogHandler.DeleteBlog)
	}

	// Image retrieval plus a public static mount of the upload directory
	app.GET("/images/:filename", imageHandler.GetImage)
	app.Static("/uploads", mediaStore.Root())

	// Live feed
	app.GET("/ws", feedHandler.HandleFeedWS)

	return &Server{
		app:  app,
		db:   database,
		feed: feed,
		addr: cfg.ServerAddress,
	}, nil
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler { return s.app }

// Feed exposes the live feed manager, mainly for tests.
func (s *Server) Feed() *ws.Manager { return s.feed }

func (s *Server) Start() {
	if err := s.app.Run(s.addr); err != nil {
		panic(err)
	}
}
