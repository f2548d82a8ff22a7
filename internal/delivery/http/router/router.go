// Package router contains routing setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegionHandler *handler.RegionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	regionHandler *handler.RegionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		regionHandler: params.RegionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	regionGroup := api.Group("/regions")
	{
		regionGroup.GET("", r.regionHandler.ListRegions)
		regionGroup.POST("", r.regionHandler.CreateRegion)

		// Query routes are registered before /:id so "query" is never
		// captured as a region id.
		queryGroup := regionGroup.Group("/query")
		{
			queryGroup.GET("/point", r.regionHandler.QueryByPoint)
			queryGroup.GET("/distance", r.regionHandler.QueryByDistance)
			queryGroup.GET("/address", r.regionHandler.QueryByAddress)
			queryGroup.GET("/reverse", r.regionHandler.QueryReverse)
		}

		regionGroup.GET("/:id", r.regionHandler.GetRegion)
		regionGroup.PUT("/:id", r.regionHandler.UpdateRegion)
		regionGroup.DELETE("/:id", r.regionHandler.DeleteRegion)
	}
}
