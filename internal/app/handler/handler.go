package handler

import (
	"context"
	"net/http"
	"time"

	"starfleet/internal/app/handler/api"
	"starfleet/internal/app/handler/middleware"
	"starfleet/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HealthCheck probes one dependency of the service.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	ShipAPIHandler *api.ShipHandler
	healthChecks   map[string]HealthCheck
}

func NewHandler(ships *service.ShipService, checks map[string]HealthCheck) *Handler {
	return &Handler{
		ShipAPIHandler: &api.ShipHandler{Ships: ships},
		healthChecks:   checks,
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger())

	router.GET("/healthz", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rest := router.Group("/rest")
	{
		rest.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		rest.GET("/ships/count", h.ShipAPIHandler.GetShipsCountAPI)
		rest.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		rest.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
		rest.POST("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		rest.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		rest.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
	}
}

// Health runs every registered check and reports each result.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	report := gin.H{}
	for name, check := range h.healthChecks {
		if err := check(ctx); err != nil {
			logrus.Errorf("health check %s: %v", name, err)
			report[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	c.JSON(status, report)
}
