package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pressmatch/internal/models/request_models"
	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

func (fc *FeedbackController) SubmitFeedbackHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	feedback, err := fc.feedbackService.SubmitFeedback(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback recorded successfully")
}

func (fc *FeedbackController) ListMyFeedbackHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	feedbacks, err := fc.feedbackService.ListUserFeedback(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Fetched feedback successfully")
}

func (fc *FeedbackController) FeedbackStatsHandler(c *gin.Context) {
	stats, err := fc.feedbackService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Fetched feedback stats successfully")
}
