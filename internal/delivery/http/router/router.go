// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medportal/internal/delivery/http/middleware"
	"medportal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PortalHandler  *handler.PortalHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	portalHandler  *handler.PortalHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		portalHandler:  params.PortalHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/patient", r.portalHandler.RegisterPatient)
		authGroup.POST("/register/provider", r.portalHandler.RegisterProvider)
		authGroup.POST("/login", r.portalHandler.Login)
	}

	// Portal routes that require authentication
	portalGroup := e.Group("/portal")
	portalGroup.Use(r.authMiddleware.Authenticate)
	{
		portalGroup.GET("/profile", r.portalHandler.GetProfile)
	}

	// Admin routes for the demo's reporting and maintenance surface
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/accounts", r.adminHandler.ListAccounts)
		adminGroup.GET("/accounts/count", r.adminHandler.CountAccounts)
		adminGroup.DELETE("/accounts", r.adminHandler.ClearAccounts)
	}
}
