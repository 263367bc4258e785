package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MuTeLu-App/internal/application"
	"MuTeLu-App/internal/domain/model"
)

// CheckInsHandler チェックインと徳ポイントに関するHTTPハンドラー
type CheckInsHandler struct {
	checkInsService application.CheckInsService
}

// NewCheckInsHandler CheckInsHandlerの新しいインスタンスを作成
func NewCheckInsHandler(checkInsService application.CheckInsService) *CheckInsHandler {
	return &CheckInsHandler{
		checkInsService: checkInsService,
	}
}

// CheckIn POST /checkins - 現在地を添えてスポットにチェックイン
func (h *CheckInsHandler) CheckIn(c *gin.Context) {
	var req model.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.checkInsService.CheckIn(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetHistory GET /members/:email/checkins - チェックイン履歴（新しい順）
func (h *CheckInsHandler) GetHistory(c *gin.Context) {
	records, err := h.checkInsService.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkins": records})
}

// GetMeritSummary GET /members/:email/merit - 徳ポイント合計
func (h *CheckInsHandler) GetMeritSummary(c *gin.Context) {
	summary, err := h.checkInsService.MeritSummary(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ClearHistory DELETE /members/:email/checkins - チェックイン履歴を全削除
func (h *CheckInsHandler) ClearHistory(c *gin.Context) {
	if err := h.checkInsService.ClearHistory(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
