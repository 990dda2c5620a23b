package routes

import (
	"github.com/gin-gonic/gin"

	"eisen_qms/internal/adapter/http/handlers"
)

const PathClients = "/clients"

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id/contact", clientHandler.UpdateContact)
		clients.PATCH("/:id/status", clientHandler.SetStatus)
	}
}
