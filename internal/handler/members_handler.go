package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MuTeLu-App/internal/application"
	"MuTeLu-App/internal/domain/model"
)

// MembersHandler 会員管理に関するHTTPハンドラー
type MembersHandler struct {
	membersService application.MembersService
}

// NewMembersHandler MembersHandlerの新しいインスタンスを作成
func NewMembersHandler(membersService application.MembersService) *MembersHandler {
	return &MembersHandler{
		membersService: membersService,
	}
}

// Register POST /members - 会員登録
func (h *MembersHandler) Register(c *gin.Context) {
	var req model.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.membersService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// Login POST /members/login - メールアドレスとパスワードで認証
func (h *MembersHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.membersService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers GET /members - 会員一覧
func (h *MembersHandler) ListMembers(c *gin.Context) {
	members, err := h.membersService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.GetMembersResponse{Members: members})
}

// GetMember GET /members/:email
func (h *MembersHandler) GetMember(c *gin.Context) {
	member, err := h.membersService.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember PUT /members/:email - プロフィール更新
func (h *MembersHandler) UpdateMember(c *gin.Context) {
	var req model.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.membersService.Update(c.Request.Context(), c.Param("email"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateStatus PATCH /members/:email/status - アカウントの有効化・停止
func (h *MembersHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.membersService.SetStatus(c.Request.Context(), c.Param("email"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember DELETE /members/:email - 会員とチェックイン履歴を削除
func (h *MembersHandler) DeleteMember(c *gin.Context) {
	if err := h.membersService.Delete(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
