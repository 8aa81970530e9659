package ui

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"propfilter/app"
	"propfilter/internal/logger"

	"github.com/gin-gonic/gin"
)

// Server is the filter page web server
type Server struct {
	router    *gin.Engine
	service   *app.ProjectService
	templates *template.Template
	log       *logger.Logger
}

// NewServer creates the server and registers its routes
func NewServer(service *app.ProjectService, ginMode string) (*Server, error) {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.New(),
		service:   service,
		templates: templates,
		log:       logger.Named("ui"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/filter", s.handleFilter)
	s.router.GET("/export", s.handleExport)
	s.router.POST("/reload", s.handleReload)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until the listener fails
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("starting filter UI")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
