package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressmatch/internal/models/request_models"
	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type CompanyController struct {
	companyService services.CompanyServiceInterface
}

func NewCompanyController(companyService services.CompanyServiceInterface) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

func (cc *CompanyController) CreateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := cc.companyService.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Company profile created successfully")
}

func (cc *CompanyController) UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := cc.companyService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Company profile updated successfully")
}

func (cc *CompanyController) GetMyProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := cc.companyService.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Fetched company profile successfully")
}
