package controllers

import (
	"github.com/gin-gonic/gin"

	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

func (ac *AnalyticsController) PlatformMetricsHandler(c *gin.Context) {
	metrics, err := ac.analyticsService.PlatformMetrics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, metrics, "Fetched platform metrics successfully")
}

func (ac *AnalyticsController) MyMetricsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metrics, err := ac.analyticsService.UserMetrics(c.Request.Context(), userID, c.GetString("user_type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, metrics, "Fetched user metrics successfully")
}
