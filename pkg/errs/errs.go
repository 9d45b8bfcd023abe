package errs

import (
	"errors"
	"fmt"
)

// 业务错误哨兵：handler层据此映射HTTP状态码
// NotFound: 引用的用户/影片/匹配不存在，不重试
// Conflict: 重复滑动、重复请求等，请求被拒绝但不致命
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// NotFound 构造带描述的NotFound错误
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflict 构造带描述的Conflict错误
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// IsNotFound 判断是否NotFound
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict 判断是否Conflict
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
