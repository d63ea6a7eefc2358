package registryapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers the registry endpoints and /metrics served from gatherer.
func SetupRoutes(router *gin.Engine, h *Handler, gatherer prometheus.Gatherer) {
	router.GET("/environments", h.ListEnvironments)
	router.GET("/environments/:name", h.GetEnvironment)
	router.GET("/environments/:name/validate", h.ValidateEnvironment)

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

func NewRouter(h *Handler, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, h, gatherer)
	return router
}
