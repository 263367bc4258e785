package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"MuTeLu-App/internal/domain/model"
)

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// statusForError はドメインエラーをHTTPステータスに対応付ける
func statusForError(err error) (int, string) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, model.ErrPlaceNotFound), errors.Is(err, model.ErrMemberNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrAlreadyCheckedIn):
		return http.StatusConflict, "conflict"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, model.ErrMemberSuspended):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, model.ErrTooFarFromPlace):
		return http.StatusUnprocessableEntity, "too_far"
	case errors.Is(err, model.ErrDirectionsDisabled):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respondError はエラー内容に応じたステータスでJSONエラーを返す
func respondError(c *gin.Context, err error) {
	status, code := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{
		"error":   code,
		"message": err.Error(),
	})
}

// respondBindError はリクエストボディの解析失敗を返す
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": "Invalid JSON format: " + err.Error(),
	})
}
