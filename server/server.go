// Package server exposes the schema inference engine over HTTP: a
// manifest upload endpoint that returns the inferred column mapping,
// and an ad hoc waybill validation endpoint.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/demoperez-ux/manifestpro/internal/config"
	"github.com/demoperez-ux/manifestpro/schema"
)

// Server wires the engine, configuration and logger behind the routes.
type Server struct {
	cfg    *config.Config
	engine *schema.Engine
	log    *slog.Logger
}

// New creates a server around an inference engine built from the given
// configuration.
func New(cfg *config.Config, log *slog.Logger) *Server {
	opts := schema.DefaultOptions()
	opts.SampleSize = cfg.SampleSize

	return &Server{
		cfg:    cfg,
		engine: schema.NewEngine(opts).WithLogger(log),
		log:    log,
	}
}

// Router builds the gin engine with the full middleware stack.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(s.log))
	router.Use(CORSMiddleware())
	router.Use(GzipMiddleware())

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	api.Use(RateLimitMiddleware(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst))
	{
		api.POST("/manifests/analyze", s.handleAnalyzeManifest)
		api.POST("/waybills/validate", s.handleValidateWaybill)
	}

	return router
}
