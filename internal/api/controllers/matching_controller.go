package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pressmatch/internal/services"
	"pressmatch/pkg/utils"
)

type MatchingController struct {
	matchingService   services.MatchingServiceInterface
	similarityService services.SimilarityServiceInterface
	insightsService   services.InsightsServiceInterface
}

func NewMatchingController(
	matchingService services.MatchingServiceInterface,
	similarityService services.SimilarityServiceInterface,
	insightsService services.InsightsServiceInterface,
) *MatchingController {
	return &MatchingController{
		matchingService:   matchingService,
		similarityService: similarityService,
		insightsService:   insightsService,
	}
}

func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}

func parseSimilarityParams(c *gin.Context) (float64, int, bool) {
	minSimilarity, err := strconv.ParseFloat(c.DefaultQuery("min_similarity", "0.3"), 64)
	if err != nil || minSimilarity < -1 || minSimilarity > 1.1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid min_similarity")
		return 0, 0, false
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return 0, 0, false
	}
	return minSimilarity, limit, true
}

// FindJournalistsHandler serves companies searching for journalists.
func (mc *MatchingController) FindJournalistsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	results, err := mc.matchingService.FindJournalistsForCompany(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Fetched journalist matches successfully")
}

// FindCompaniesHandler serves journalists searching for companies.
func (mc *MatchingController) FindCompaniesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	results, err := mc.matchingService.FindCompaniesForJournalist(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Fetched company matches successfully")
}

func (mc *MatchingController) FindSimilarJournalistsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	minSimilarity, limit, ok := parseSimilarityParams(c)
	if !ok {
		return
	}

	results, err := mc.similarityService.FindSimilarJournalists(c.Request.Context(), userID, minSimilarity, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Fetched similar journalists successfully")
}

func (mc *MatchingController) FindSimilarCompaniesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	minSimilarity, limit, ok := parseSimilarityParams(c)
	if !ok {
		return
	}

	results, err := mc.similarityService.FindSimilarCompanies(c.Request.Context(), userID, minSimilarity, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Fetched similar companies successfully")
}

// JournalistInsightsHandler gives a company pitch intelligence for one
// journalist.
func (mc *MatchingController) JournalistInsightsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	journalistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid journalist id")
		return
	}

	insightsResp, err := mc.insightsService.InsightsForCompany(c.Request.Context(), userID, journalistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, insightsResp, "Fetched match insights successfully")
}

// CompanyInsightsHandler gives a journalist pitch intelligence for one
// company.
func (mc *MatchingController) CompanyInsightsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid company id")
		return
	}

	insightsResp, err := mc.insightsService.InsightsForJournalist(c.Request.Context(), userID, companyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, insightsResp, "Fetched match insights successfully")
}
