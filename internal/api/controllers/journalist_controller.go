package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressmatch/internal/models/request_models"
	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type JournalistController struct {
	journalistService services.JournalistServiceInterface
}

func NewJournalistController(journalistService services.JournalistServiceInterface) *JournalistController {
	return &JournalistController{
		journalistService: journalistService,
	}
}

func (jc *JournalistController) CreateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateJournalistProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := jc.journalistService.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Journalist profile created successfully")
}

func (jc *JournalistController) UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateJournalistProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := jc.journalistService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Journalist profile updated successfully")
}

func (jc *JournalistController) GetMyProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := jc.journalistService.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Fetched journalist profile successfully")
}
