package routes

import (
	"github.com/gin-gonic/gin"

	"eisen_qms/internal/adapter/http/handlers"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
