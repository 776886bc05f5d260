package routes

import (
	"rentpulse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdvisor = "/advisor"
)

func addAdvisorRoutes(rg *gin.RouterGroup, advisorHandler *handlers.AdvisorHandler) {
	adv := rg.Group(PathAdvisor)
	{
		adv.POST("/recommendation", advisorHandler.Recommend)
	}
}
