// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"valunds/internal/delivery/api/middleware"
	"valunds/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	OAuthHandler   *handler.OAuthHandler
	BankIDHandler  *handler.BankIDHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	oauthHandler   *handler.OAuthHandler
	bankIDHandler  *handler.BankIDHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		oauthHandler:   params.OAuthHandler,
		bankIDHandler:  params.BankIDHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/api/accounts")

	// Password authentication and recovery
	{
		accounts.POST("/register", r.authHandler.Register)
		accounts.POST("/login", r.authHandler.Login)
		accounts.POST("/token/refresh", r.authHandler.Refresh)
		accounts.POST("/logout", r.authHandler.Logout)
		accounts.POST("/verify-email", r.authHandler.VerifyEmail)
		accounts.POST("/resend-verification", r.authHandler.ResendVerification)
		accounts.POST("/password-reset/request", r.authHandler.RequestPasswordReset)
		accounts.POST("/password-reset/confirm", r.authHandler.ConfirmPasswordReset)
	}

	oauthGroup := accounts.Group("/oauth/google")
	{
		oauthGroup.GET("/login", r.oauthHandler.GoogleLogin)
		oauthGroup.GET("/callback", r.oauthHandler.GoogleCallback)
	}

	bankIDGroup := accounts.Group("/bankid")
	{
		bankIDGroup.POST("/initiate", r.bankIDHandler.Initiate)
		bankIDGroup.POST("/collect", r.bankIDHandler.Collect)
		bankIDGroup.POST("/cancel", r.bankIDHandler.Cancel)
		bankIDGroup.GET("/qr", r.bankIDHandler.QRCode)
	}

	// Account settings require a valid access token
	authenticated := accounts.Group("", r.authMiddleware.Authenticate)
	{
		authenticated.GET("/me", r.accountHandler.Me)
		authenticated.PATCH("/me", r.accountHandler.UpdateProfile)
		authenticated.POST("/change-password", r.accountHandler.ChangePassword)
		authenticated.POST("/change-email", r.accountHandler.ChangeEmail)
		authenticated.POST("/delete", r.accountHandler.DeleteAccount)
		authenticated.GET("/login-history", r.accountHandler.LoginHistory)
		authenticated.GET("/security-events", r.accountHandler.SecurityEvents)
	}
}
