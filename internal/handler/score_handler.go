package handler

import (
	"net/http"
	"strconv"

	"beltdash/backend/internal/auth"
	"beltdash/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateScoreInput defines the structure for score submission. Points is a
// pointer so that a submitted zero survives required-field validation.
type CreateScoreInput struct {
	Points *int `json:"points" binding:"required,gte=0" example:"150"`
}

// ScoreHandler exposes the score endpoints.
type ScoreHandler struct {
	scores *service.ScoreService
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(scores *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

// CreateScore godoc
// @Summary      Submit a new score
// @Description  Records a score for the authenticated user.
// @Tags         scores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateScoreInput true "Score data"
// @Success      201  {object}  service.Response[service.ScoreResponse]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /scores [post]
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, service.Error[any]("Authentication required.", http.StatusUnauthorized))
		return
	}

	var input CreateScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any](err.Error(), http.StatusBadRequest))
		return
	}

	resp := h.scores.CreateScore(c.Request.Context(), userID, *input.Points)
	c.JSON(resp.StatusCode, resp)
}

// GetPaginatedScores godoc
// @Summary      List scores with pagination
// @Description  Returns one page of the global score listing. Unknown sortBy values fall back to points descending.
// @Tags         scores
// @Produce      json
// @Param        pageNumber query int    false "Page number (1-based)"   default(1)
// @Param        pageSize   query int    false "Items per page (max 50)" default(10)
// @Param        sortBy     query string false "Sort field"              default(points)
// @Param        ascending  query bool   false "Sort ascending"          default(false)
// @Success      200  {object}  service.Response[service.PaginatedScores]
// @Router       /scores [get]
func (h *ScoreHandler) GetPaginatedScores(c *gin.Context) {
	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	ascending, _ := strconv.ParseBool(c.DefaultQuery("ascending", "false"))

	query := service.ScoreQuery{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortBy:     c.DefaultQuery("sortBy", "points"),
		Ascending:  ascending,
	}

	resp := h.scores.GetPaginatedScores(c.Request.Context(), query)
	c.JSON(resp.StatusCode, resp)
}

// GetTopScores godoc
// @Summary      Leaderboard
// @Description  Returns the highest scores globally with their owners.
// @Tags         scores
// @Produce      json
// @Param        count query int false "Number of scores to return (max 50)" default(10)
// @Success      200  {object}  service.Response[[]service.ScoreResponse]
// @Router       /scores/top [get]
func (h *ScoreHandler) GetTopScores(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "10"))

	resp := h.scores.GetTopScores(c.Request.Context(), count)
	c.JSON(resp.StatusCode, resp)
}
