package util

import "errors"

// 校验类错误只中断当前这一次用户操作，不修改任何状态
var (
	ErrEmptyDate       = errors.New("date is required")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptySubject    = errors.New("subject is required")
	ErrInvalidHours    = errors.New("hours must be between 0 and 24")
	ErrInvalidGoal     = errors.New("daily goal must be greater than 0")
	ErrEntryNotFound   = errors.New("log entry not found")
	ErrInvalidDuration = errors.New("timer durations must be positive whole minutes")
)

// IsValidation 判断是否为用户输入校验错误（应返回 400 而非 500）
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrEmptyDate),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrEmptySubject),
		errors.Is(err, ErrInvalidHours),
		errors.Is(err, ErrInvalidGoal),
		errors.Is(err, ErrInvalidDuration):
		return true
	}
	return false
}
