package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/OMoWiCe/admin-api/internal/model"
	"github.com/OMoWiCe/admin-api/pkg/dberr"
)

// ── Mock LocationRepository ──

// mockLocationRepo 以内存 map 模拟仓储的事务语义：
// 任一步失败时不产生部分写入，失败路径直接返回 dberr 哨兵错误
type mockLocationRepo struct {
	locations     map[string]*model.Location
	params        map[string]*model.LocationParameters
	devices       map[string][]model.ActiveDevice
	deactivations map[string][]model.PendingDeactivation
	metrics       map[string][]model.MainMetric

	failWith error // 非 nil 时所有操作返回该错误（模拟存储层故障）
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{
		locations:     make(map[string]*model.Location),
		params:        make(map[string]*model.LocationParameters),
		devices:       make(map[string][]model.ActiveDevice),
		deactivations: make(map[string][]model.PendingDeactivation),
		metrics:       make(map[string][]model.MainMetric),
	}
}

func (m *mockLocationRepo) ListOverview(_ context.Context) ([]model.LocationOverview, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var rows []model.LocationOverview
	for id, loc := range m.locations {
		row := model.LocationOverview{
			LocationID:    loc.ID,
			Name:          loc.Name,
			Address:       loc.Address,
			GoogleMapsURL: loc.GoogleMapsURL,
			OpeningHours:  loc.OpeningHours,
			CreatedAt:     loc.CreatedAt,
		}
		if p, ok := m.params[id]; ok {
			row.AvgDevicesPerPerson = &p.AvgDevicesPerPerson
			row.AvgSimsPerPerson = &p.AvgSimsPerPerson
			row.WifiUsageRatio = &p.WifiUsageRatio
			row.CellularUsageRatio = &p.CellularUsageRatio
			row.UpdateInterval = &p.UpdateInterval
			lastUpdated := p.LastUpdated
			row.LastRecordUpdated = &lastUpdated
		}
		for _, mm := range m.metrics[id] {
			if row.LastMetricUpdated == nil || mm.Date.After(*row.LastMetricUpdated) {
				d := mm.Date
				row.LastMetricUpdated = &d
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (m *mockLocationRepo) CreateWithParameters(_ context.Context, loc *model.Location, params *model.LocationParameters) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.locations[loc.ID]; ok {
		// 主键重复：第一条语句失败，参数行不落库
		return dberr.ErrDuplicateKey
	}
	locCopy := *loc
	locCopy.CreatedAt = time.Now()
	m.locations[loc.ID] = &locCopy

	paramsCopy := *params
	paramsCopy.LocationID = loc.ID
	paramsCopy.LastUpdated = time.Now()
	m.params[loc.ID] = &paramsCopy
	return nil
}

func (m *mockLocationRepo) UpdateWithParameters(_ context.Context, loc *model.Location, params *model.LocationParameters) error {
	if m.failWith != nil {
		return m.failWith
	}
	existing, ok := m.locations[loc.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = loc.Name
	existing.Address = loc.Address
	existing.GoogleMapsURL = loc.GoogleMapsURL
	existing.OpeningHours = loc.OpeningHours

	paramsCopy := *params
	paramsCopy.LocationID = loc.ID
	paramsCopy.LastUpdated = time.Now()
	m.params[loc.ID] = &paramsCopy
	return nil
}

func (m *mockLocationRepo) DeleteCascade(_ context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.locations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.devices, id)
	delete(m.deactivations, id)
	delete(m.params, id)
	delete(m.metrics, id)
	delete(m.locations, id)
	return nil
}
