package dberr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassify_Nil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("nil 应原样返回，实际: %v", got)
	}
}

func TestClassify_PgErrorCodes(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"23505", ErrDuplicateKey},
		{"23503", ErrForeignKey},
		{"57014", ErrTimeout},
	}
	for _, tt := range tests {
		err := fmt.Errorf("执行语句失败: %w", &pgconn.PgError{Code: tt.code})
		if got := Classify(err); !errors.Is(got, tt.want) {
			t.Errorf("SQLSTATE %s 期望 %v，实际: %v", tt.code, tt.want, got)
		}
	}
}

func TestClassify_UnknownPgErrorPassesThrough(t *testing.T) {
	orig := &pgconn.PgError{Code: "42P01"} // undefined_table
	err := fmt.Errorf("执行语句失败: %w", orig)
	got := Classify(err)
	var pgErr *pgconn.PgError
	if !errors.As(got, &pgErr) || pgErr.Code != "42P01" {
		t.Errorf("未知 SQLSTATE 应原样返回，实际: %v", got)
	}
}

func TestClassify_RecordNotFound(t *testing.T) {
	if got := Classify(gorm.ErrRecordNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", got)
	}
}

func TestClassify_ContextDeadline(t *testing.T) {
	err := fmt.Errorf("查询失败: %w", context.DeadlineExceeded)
	if got := Classify(err); !errors.Is(got, ErrTimeout) {
		t.Errorf("期望 ErrTimeout，实际: %v", got)
	}
}

func TestClassify_SentinelPassthrough(t *testing.T) {
	// mock 仓储直接返回哨兵错误时不应被二次包装
	for _, sentinel := range []error{ErrDuplicateKey, ErrForeignKey, ErrTimeout, ErrNotFound} {
		if got := Classify(sentinel); !errors.Is(got, sentinel) {
			t.Errorf("哨兵错误应透传，期望 %v，实际: %v", sentinel, got)
		}
	}
}

func TestClassify_OpaqueError(t *testing.T) {
	orig := errors.New("磁盘已满")
	if got := Classify(orig); !errors.Is(got, orig) {
		t.Errorf("无法归类的错误应原样返回，实际: %v", got)
	}
}
