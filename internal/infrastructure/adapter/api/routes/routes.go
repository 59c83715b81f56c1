package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	authUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/auth"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/handler"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authService *authUseCase.Service,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	contactHandler *handler.ContactHandler,
	smsHandler *handler.SMSHandler,
) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/admin/login", authHandler.AdminLogin)
		auth.POST("/client/login", authHandler.ClientLogin)
		auth.POST("/client-user/login", authHandler.ClientUserLogin)
		auth.GET("/verify",
			middleware.RequireAuth(authService,
				authUseCase.UserTypeAdmin,
				authUseCase.UserTypeClient,
				authUseCase.UserTypeClientUser),
			authHandler.Verify)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(authService, authUseCase.UserTypeAdmin))
	{
		admin.GET("/clients", adminHandler.ListClients)
		admin.POST("/clients", adminHandler.CreateClient)
		admin.GET("/clients/:clientId", adminHandler.GetClient)
		admin.PUT("/clients/:clientId", adminHandler.UpdateClient)
		admin.DELETE("/clients/:clientId", adminHandler.DeleteClient)

		admin.POST("/client-users", adminHandler.CreateClientUser)
		admin.GET("/clients/:clientId/users", adminHandler.ListClientUsers)

		admin.GET("/transactions", adminHandler.ListTransactions)
		admin.POST("/transactions", adminHandler.CreateTransaction)
	}

	client := api.Group("/client")
	client.Use(middleware.RequireAuth(authService,
		authUseCase.UserTypeClient,
		authUseCase.UserTypeClientUser))
	{
		client.GET("/contacts", contactHandler.List)
		client.POST("/contacts", contactHandler.Create)
		client.GET("/contacts/:contactId", contactHandler.Get)
		client.PUT("/contacts/:contactId", contactHandler.Update)
		client.DELETE("/contacts/:contactId", contactHandler.Delete)
		client.POST("/contacts/import", contactHandler.ImportCSV)
		client.GET("/contacts/export", contactHandler.ExportCSV)

		client.POST("/sms/send", smsHandler.Send)
		client.GET("/sms/history", smsHandler.GetHistory)
		client.GET("/balance", smsHandler.GetBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
