package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pressmatch/internal/models/request_models"
	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type TopicController struct {
	topicService services.TopicServiceInterface
}

func NewTopicController(topicService services.TopicServiceInterface) *TopicController {
	return &TopicController{
		topicService: topicService,
	}
}

func (tc *TopicController) ListTopicsHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "50")
	category := c.Query("category")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	topics, err := tc.topicService.ListTopics(c.Request.Context(), category, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, topics, "Fetched topics successfully")
}

func (tc *TopicController) CreateTopicHandler(c *gin.Context) {
	var req request_models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topic, err := tc.topicService.CreateTopic(c.Request.Context(), req.Name, req.DisplayName, req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, topic, "Topic created successfully")
}
