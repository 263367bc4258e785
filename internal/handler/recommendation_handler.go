package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"MuTeLu-App/internal/usecase"
)

// RecommendationHandler はおすすめスポットAPIのハンドラー
type RecommendationHandler struct {
	useCase      usecase.RecommendationUseCase
	defaultLimit int
}

// NewRecommendationHandler は新しいRecommendationHandlerインスタンスを作成
func NewRecommendationHandler(useCase usecase.RecommendationUseCase, defaultLimit int) *RecommendationHandler {
	return &RecommendationHandler{
		useCase:      useCase,
		defaultLimit: defaultLimit,
	}
}

// GetRecommendations は会員へのおすすめスポットを返すエンドポイント
// GET /members/:email/recommendations?limit=
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, &ValidationError{Field: "limit", Message: "整数で指定してください"})
			return
		}
		// 負の値は0件として扱う
		limit = v
	}

	response, err := h.useCase.Recommend(c.Request.Context(), c.Param("email"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ReloadCatalog はカタログを再読み込みするエンドポイント
// POST /admin/catalog/reload
func (h *RecommendationHandler) ReloadCatalog(c *gin.Context) {
	response, err := h.useCase.ReloadCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
