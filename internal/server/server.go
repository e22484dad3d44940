package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "crewcal/internal/api/v1"
	"crewcal/internal/config"
	"crewcal/internal/store"
)

// Server is the HTTP front of the importer.
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
}

// NewServer wires the store and API handlers.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	dbStore, err := store.New(filepath.Join(dataDir, "crewcal.db"))
	if err != nil {
		log.Fatalf("initialize database: %v", err)
	}

	s := &Server{
		router: gin.Default(),
		store:  dbStore,
		v1:     v1.NewHandler(dbStore, cfg),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api/v1")
	{
		s.v1.RegisterRoutes(api)
	}
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the underlying store.
func (s *Server) Close() error {
	return s.store.Close()
}
