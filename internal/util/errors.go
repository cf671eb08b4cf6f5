package util

import "errors"

var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrEmailRegistered = errors.New("该邮箱已被注册")
	ErrUsernameTaken   = errors.New("该用户名已被使用")

	// ErrNotFound 记录不存在或不属于当前用户，两种情况对外不可区分
	ErrNotFound = errors.New("record not found")

	ErrDuplicateEntry = errors.New("progress already logged for this skill on this date")
	ErrMissingHours   = errors.New("hours spent is required")
	ErrNegativeHours  = errors.New("hours spent must not be negative")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidWindow  = errors.New("days must be at least 1")
)
