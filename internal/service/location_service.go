package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/OMoWiCe/admin-api/internal/dto"
	"github.com/OMoWiCe/admin-api/internal/model"
	"github.com/OMoWiCe/admin-api/internal/repository"
	"github.com/OMoWiCe/admin-api/pkg/dberr"
)

// ── 地点模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("地点不存在")
	ErrLocationExists   = errors.New("地点ID已存在")
	ErrInvalidReference = errors.New("提交数据中存在无效引用")
	ErrHasDependents    = errors.New("存在关联记录，无法删除")
	ErrStoreTimeout     = errors.New("数据库超时")
)

// LocationService 地点业务接口
// 入参由 Handler 层完成校验，这里只负责组装模型、调用仓储并归类存储错误
type LocationService interface {
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Add(ctx context.Context, req *dto.AddLocationRequest) error
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) error
	Delete(ctx context.Context, id string) error
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	rows, err := s.repo.Location.ListOverview(ctx)
	if err != nil {
		s.logger.Error("查询地点列表失败", zap.Error(err))
		if errors.Is(dberr.Classify(err), dberr.ErrTimeout) {
			return nil, ErrStoreTimeout
		}
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *toLocationResponse(&rows[i]))
	}
	return result, nil
}

// ────────────────────── Add ──────────────────────

func (s *locationService) Add(ctx context.Context, req *dto.AddLocationRequest) error {
	loc := &model.Location{
		ID:            req.ID,
		Name:          req.Name,
		Address:       req.Address,
		GoogleMapsURL: req.GoogleMapsURL,
		OpeningHours:  req.OpeningHours,
	}
	params := toParametersModel(req.ID, req.Parameters)

	if err := s.repo.Location.CreateWithParameters(ctx, loc, params); err != nil {
		s.logger.Error("创建地点失败", zap.String("id", req.ID), zap.Error(err))
		switch classified := dberr.Classify(err); {
		case errors.Is(classified, dberr.ErrDuplicateKey):
			return ErrLocationExists
		case errors.Is(classified, dberr.ErrForeignKey):
			return ErrInvalidReference
		case errors.Is(classified, dberr.ErrTimeout):
			return ErrStoreTimeout
		default:
			return err
		}
	}
	return nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) error {
	loc := &model.Location{
		ID:            id,
		Name:          *req.Name,
		Address:       *req.Address,
		GoogleMapsURL: *req.GoogleMapsURL,
		OpeningHours:  *req.OpeningHours,
	}
	params := toParametersModel(id, req.Parameters)

	if err := s.repo.Location.UpdateWithParameters(ctx, loc, params); err != nil {
		switch classified := dberr.Classify(err); {
		case errors.Is(classified, dberr.ErrNotFound):
			return ErrLocationNotFound
		case errors.Is(classified, dberr.ErrForeignKey):
			s.logger.Error("更新地点失败", zap.String("id", id), zap.Error(err))
			return ErrInvalidReference
		case errors.Is(classified, dberr.ErrTimeout):
			s.logger.Error("更新地点失败", zap.String("id", id), zap.Error(err))
			return ErrStoreTimeout
		default:
			s.logger.Error("更新地点失败", zap.String("id", id), zap.Error(err))
			return err
		}
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Location.DeleteCascade(ctx, id); err != nil {
		switch classified := dberr.Classify(err); {
		case errors.Is(classified, dberr.ErrNotFound):
			return ErrLocationNotFound
		case errors.Is(classified, dberr.ErrForeignKey):
			// 仍有其他表引用该地点（删除顺序未覆盖的依赖）
			s.logger.Error("删除地点失败", zap.String("id", id), zap.Error(err))
			return ErrHasDependents
		case errors.Is(classified, dberr.ErrTimeout):
			s.logger.Error("删除地点失败", zap.String("id", id), zap.Error(err))
			return ErrStoreTimeout
		default:
			s.logger.Error("删除地点失败", zap.String("id", id), zap.Error(err))
			return err
		}
	}
	return nil
}

// ── 内部辅助方法 ──

func toParametersModel(locationID string, p *dto.LocationParametersPayload) *model.LocationParameters {
	return &model.LocationParameters{
		LocationID:          locationID,
		AvgDevicesPerPerson: *p.AvgDevicesPerPerson,
		AvgSimsPerPerson:    *p.AvgSimsPerPerson,
		WifiUsageRatio:      *p.WifiUsageRatio,
		CellularUsageRatio:  *p.CellularUsageRatio,
		UpdateInterval:      *p.UpdateInterval,
	}
}

func toLocationResponse(row *model.LocationOverview) *dto.LocationResponse {
	return &dto.LocationResponse{
		LocationID:          row.LocationID,
		Name:                row.Name,
		Address:             row.Address,
		GoogleMapsURL:       row.GoogleMapsURL,
		OpeningHours:        row.OpeningHours,
		CreatedAt:           row.CreatedAt,
		AvgDevicesPerPerson: row.AvgDevicesPerPerson,
		AvgSimsPerPerson:    row.AvgSimsPerPerson,
		WifiUsageRatio:      row.WifiUsageRatio,
		CellularUsageRatio:  row.CellularUsageRatio,
		UpdateInterval:      row.UpdateInterval,
		LastRecordUpdated:   row.LastRecordUpdated,
		LastMetricUpdated:   row.LastMetricUpdated,
	}
}
