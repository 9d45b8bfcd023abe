package db

import (
	"errors"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// 锁竞争重试参数：短暂的行锁冲突在存储层内部消化，不暴露给请求方
const (
	maxRetries   = 3
	retryBackoff = 50 * time.Millisecond
)

// WithRetry 在事务中执行fn，遇到锁竞争时有界重试
// 仅重试瞬时竞争错误（MySQL死锁1213/锁等待超时1205、SQLite busy）
// 其他错误原样返回
func WithRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
		err = db.Transaction(fn)
		if err == nil || !isContention(err) {
			return err
		}
	}
	return err
}

// isContention 判断是否为瞬时锁竞争错误
func isContention(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1213: Deadlock found; 1205: Lock wait timeout
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	// SQLite（测试环境）
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
