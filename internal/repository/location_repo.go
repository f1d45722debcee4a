package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/OMoWiCe/admin-api/internal/model"
)

// LocationRepository 地点数据访问接口
// 多表写操作在仓储内部以单事务完成：任一语句失败即整体回滚
type LocationRepository interface {
	ListOverview(ctx context.Context) ([]model.LocationOverview, error)
	// CreateWithParameters 同一事务内依次写入地点行与参数行
	CreateWithParameters(ctx context.Context, loc *model.Location, params *model.LocationParameters) error
	// UpdateWithParameters 同一事务内更新地点行并 upsert 参数行；
	// 地点不存在时返回 gorm.ErrRecordNotFound 且不产生任何写入
	UpdateWithParameters(ctx context.Context, loc *model.Location, params *model.LocationParameters) error
	// DeleteCascade 同一事务内按外键依赖顺序清理依赖行后删除地点行；
	// 地点不存在时返回 gorm.ErrRecordNotFound 且不产生任何写入
	DeleteCascade(ctx context.Context, id string) error
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) ListOverview(ctx context.Context) ([]model.LocationOverview, error) {
	var rows []model.LocationOverview
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id AS location_id,
		       l.name,
		       l.address,
		       l.google_maps_url,
		       l.opening_hours,
		       l.created_at,
		       lp.avg_devices_per_person,
		       lp.avg_sims_per_person,
		       lp.wifi_usage_ratio,
		       lp.cellular_usage_ratio,
		       lp.update_interval,
		       lp.last_updated AS last_record_updated,
		       (SELECT MAX(mm.date) FROM main_metrics mm WHERE mm.location_id = l.id) AS last_metric_updated
		FROM locations l
		LEFT JOIN location_parameters lp ON lp.location_id = l.id
		ORDER BY l.created_at`).Scan(&rows).Error
	return rows, err
}

func (r *locationRepo) CreateWithParameters(ctx context.Context, loc *model.Location, params *model.LocationParameters) error {
	// 地点行先写：id 重复时事务在第一条语句即失败，参数行不会落库
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loc).Error; err != nil {
			return err
		}
		params.LocationID = loc.ID
		return tx.Create(params).Error
	})
}

func (r *locationRepo) UpdateWithParameters(ctx context.Context, loc *model.Location, params *model.LocationParameters) error {
	// 存在性检查与写入在同一事务内进行。
	// 两个并发请求之间仍是 check-then-act（默认隔离级别下未加行锁），属已接受的局限。
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Location{}).Where("id = ?", loc.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&model.Location{}).Where("id = ?", loc.ID).Updates(map[string]interface{}{
			"name":            loc.Name,
			"address":         loc.Address,
			"google_maps_url": loc.GoogleMapsURL,
			"opening_hours":   loc.OpeningHours,
		}).Error; err != nil {
			return err
		}

		var paramCount int64
		if err := tx.Model(&model.LocationParameters{}).Where("location_id = ?", loc.ID).Count(&paramCount).Error; err != nil {
			return err
		}

		params.LocationID = loc.ID
		if paramCount > 0 {
			return tx.Model(&model.LocationParameters{}).Where("location_id = ?", loc.ID).Updates(map[string]interface{}{
				"avg_devices_per_person": params.AvgDevicesPerPerson,
				"avg_sims_per_person":    params.AvgSimsPerPerson,
				"wifi_usage_ratio":       params.WifiUsageRatio,
				"cellular_usage_ratio":   params.CellularUsageRatio,
				"update_interval":        params.UpdateInterval,
				"last_updated":           gorm.Expr("CURRENT_TIMESTAMP"),
			}).Error
		}
		// 历史数据可能缺参数行，首次更新时补建
		return tx.Create(params).Error
	})
}

func (r *locationRepo) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Location{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		// 删除顺序遵循外键依赖，最后删地点行
		if err := tx.Where("location_id = ?", id).Delete(&model.ActiveDevice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&model.PendingDeactivation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&model.LocationParameters{}).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&model.MainMetric{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Location{}).Error
	})
}
