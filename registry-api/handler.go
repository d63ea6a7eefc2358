package registryapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/margined-protocol/mrgnd-perpetuals/logger"
	"github.com/margined-protocol/mrgnd-perpetuals/metrics"
	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

type Handler struct {
	registry *registry.Registry
	logger   logger.Logger
	metrics  metrics.Recorder
}

func NewHandler(r *registry.Registry, log logger.Logger, recorder metrics.Recorder) *Handler {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &Handler{registry: r, logger: log, metrics: recorder}
}

// ListEnvironments returns the sorted environment names.
func (h *Handler) ListEnvironments(c *gin.Context) {
	c.JSON(http.StatusOK, OK.WithData(h.registry.Names()))
}

// GetEnvironment returns the deployment record of one environment.
func (h *Handler) GetEnvironment(c *gin.Context) {
	cfg, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, OK.WithData(cfg))
}

type validateQuery struct {
	Stage  string `form:"stage" binding:"omitempty,oneof=template deployable"`
	Prefix string `form:"prefix" binding:"omitempty,alphanum,lowercase"`
}

// ValidateEnvironment validates the record at the requested stage, deployable by default.
// With a prefix query parameter every set address must also be bech32 with that prefix.
func (h *Handler) ValidateEnvironment(c *gin.Context) {
	var query validateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrParam.WithData(err.Error()))
		return
	}
	stage, err := registry.ParseStage(query.Stage)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrParam.WithData(err.Error()))
		return
	}

	cfg, ok := h.lookup(c)
	if !ok {
		return
	}

	env := c.Param("name")
	errs := []error{cfg.ValidateStage(env, stage)}
	if query.Prefix != "" {
		errs = append(errs, registry.CheckBech32(env, cfg, query.Prefix))
	}
	if err := errors.Join(errs...); err != nil {
		violations := make([]Violation, 0)
		for _, v := range registry.Violations(err) {
			violations = append(violations, Violation{Field: v.Field, Reason: v.Reason})
		}
		c.JSON(http.StatusUnprocessableEntity, ErrInvalid.WithData(violations))
		return
	}
	c.JSON(http.StatusOK, OK.WithData(gin.H{"valid": true, "stage": stage.String()}))
}

func (h *Handler) lookup(c *gin.Context) (registry.Config, bool) {
	name := c.Param("name")
	cfg, err := h.registry.Get(name)
	if errors.Is(err, registry.ErrConfigNotFound) {
		h.metrics.Lookup(name, metrics.LookupNotFound)
		h.logger.Debug("Unknown environment", logger.WithField("environment", name))
		c.JSON(http.StatusNotFound, ErrNotFound.WithData(err.Error()))
		return registry.Config{}, false
	}
	if err != nil {
		h.logger.Error("Failed to get environment", logger.WithField("environment", name), logger.WithField("error", err))
		c.JSON(http.StatusInternalServerError, NewResponse(50001, err.Error()))
		return registry.Config{}, false
	}
	h.metrics.Lookup(name, metrics.LookupFound)
	return cfg, true
}
