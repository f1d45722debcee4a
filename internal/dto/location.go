package dto

import (
	"errors"
	"time"
)

// ── 地点模块 DTO ──

// 校验失败提示（字段枚举信息与对外 API 约定一致）
var (
	ErrAddMissingFields       = errors.New("Missing required fields: id, name, address, googleMapsUrl, openingHours, parameters(avgDevicesPerPerson, avgSimsPerPerson, wifiUsageRatio, cellularUsageRatio, updateInterval)")
	ErrUpdateMissingFields    = errors.New("Required location fields are missing (name, address, googleMapsUrl, openingHours)")
	ErrParametersRequired     = errors.New("Location parameters are required")
	ErrParameterFieldsMissing = errors.New("All parameter fields are required (avgDevicesPerPerson, avgSimsPerPerson, wifiUsageRatio, cellularUsageRatio, updateInterval)")
)

// LocationParametersPayload 估算参数载荷
// 数值字段一律用指针：0 是合法取值，只有字段缺失（null/未出现）才算未提供
type LocationParametersPayload struct {
	AvgDevicesPerPerson *float64 `json:"avgDevicesPerPerson"`
	AvgSimsPerPerson    *float64 `json:"avgSimsPerPerson"`
	WifiUsageRatio      *float64 `json:"wifiUsageRatio"`
	CellularUsageRatio  *float64 `json:"cellularUsageRatio"`
	UpdateInterval      *int     `json:"updateInterval"`
}

// complete 五个字段是否全部提供
func (p *LocationParametersPayload) complete() bool {
	return p.AvgDevicesPerPerson != nil &&
		p.AvgSimsPerPerson != nil &&
		p.WifiUsageRatio != nil &&
		p.CellularUsageRatio != nil &&
		p.UpdateInterval != nil
}

// AddLocationRequest 新增地点请求
type AddLocationRequest struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	Address       string                     `json:"address"`
	GoogleMapsURL string                     `json:"googleMapsUrl"`
	OpeningHours  string                     `json:"openingHours"`
	Parameters    *LocationParametersPayload `json:"parameters"`
}

// Validate 校验新增请求；不触达数据库
func (r *AddLocationRequest) Validate() error {
	if r.ID == "" || r.Name == "" || r.Address == "" || r.GoogleMapsURL == "" || r.OpeningHours == "" {
		return ErrAddMissingFields
	}
	if r.Parameters == nil || !r.Parameters.complete() {
		return ErrAddMissingFields
	}
	return nil
}

// UpdateLocationRequest 更新地点请求
// 顶层字段用指针区分「缺失」与「空串」：仅缺失视为未提供
type UpdateLocationRequest struct {
	Name          *string                    `json:"name"`
	Address       *string                    `json:"address"`
	GoogleMapsURL *string                    `json:"googleMapsUrl"`
	OpeningHours  *string                    `json:"openingHours"`
	Parameters    *LocationParametersPayload `json:"parameters"`
}

// Validate 校验更新请求，按缺失类别返回对应提示；不触达数据库
func (r *UpdateLocationRequest) Validate() error {
	if r.Name == nil || r.Address == nil || r.GoogleMapsURL == nil || r.OpeningHours == nil {
		return ErrUpdateMissingFields
	}
	if r.Parameters == nil {
		return ErrParametersRequired
	}
	if !r.Parameters.complete() {
		return ErrParameterFieldsMissing
	}
	return nil
}

// LocationResponse 列表接口单行：地点 + 参数（LEFT JOIN，可能为空）+ 最新指标时间
type LocationResponse struct {
	LocationID          string     `json:"locationId"`
	Name                string     `json:"name"`
	Address             string     `json:"address"`
	GoogleMapsURL       string     `json:"googleMapsUrl"`
	OpeningHours        string     `json:"openingHours"`
	CreatedAt           time.Time  `json:"createdAt"`
	AvgDevicesPerPerson *float64   `json:"avgDevicesPerPerson"`
	AvgSimsPerPerson    *float64   `json:"avgSimsPerPerson"`
	WifiUsageRatio      *float64   `json:"wifiUsageRatio"`
	CellularUsageRatio  *float64   `json:"cellularUsageRatio"`
	UpdateInterval      *int       `json:"updateInterval"`
	LastRecordUpdated   *time.Time `json:"lastRecordUpdated"`
	LastMetricUpdated   *time.Time `json:"lastMetricUpdated"`
}
