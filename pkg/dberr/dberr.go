// Package dberr 将底层存储错误归类为稳定的领域错误。
// 各 Service 只依赖这里的哨兵错误，不直接感知驱动细节。
package dberr

import (
	"context"
	"errors"
	"net"
	"os"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ── 存储层错误分类 ──

var (
	// ErrDuplicateKey 唯一约束冲突（主键/唯一索引重复）
	ErrDuplicateKey = errors.New("唯一约束冲突")
	// ErrForeignKey 外键约束冲突
	ErrForeignKey = errors.New("外键约束冲突")
	// ErrTimeout 连接或语句超时，属可重试的瞬时错误
	ErrTimeout = errors.New("数据库超时")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
)

// PostgreSQL SQLSTATE 错误码
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeQueryCanceled       = "57014"
)

// Classify 将任意存储层错误映射为上述哨兵错误之一。
// 无法归类的错误原样返回，由调用方按内部错误处理。
// 已经是哨兵错误的输入直接透传，便于 mock 仓储在测试中复用。
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrDuplicateKey),
		errors.Is(err, ErrForeignKey),
		errors.Is(err, ErrTimeout),
		errors.Is(err, ErrNotFound):
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return ErrDuplicateKey
		case codeForeignKeyViolation:
			return ErrForeignKey
		case codeQueryCanceled:
			return ErrTimeout
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return err
}
