package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressmatch/internal/models/request_models"
	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := ac.authService.Register(c.Request.Context(), req.Email, req.Password, req.UserType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Registered successfully")
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Logged in successfully")
}
