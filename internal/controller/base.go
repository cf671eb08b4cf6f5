package controller

import (
	"errors"

	"skill_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError 把服务层错误映射为 HTTP 响应：
// NotFound → 404（不存在和无权访问不可区分），校验类错误 → 400，其余 → 500
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrDuplicateEntry),
		errors.Is(err, util.ErrMissingHours),
		errors.Is(err, util.ErrNegativeHours),
		errors.Is(err, util.ErrInvalidDate),
		errors.Is(err, util.ErrInvalidWindow),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrUsernameTaken):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
