package model

import "time"

// 以下三张表由采集/统计子系统写入，本服务只在删除地点时级联清理。

// ActiveDevice 在线设备表 — 对应 active_devices
type ActiveDevice struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"                json:"id"`
	LocationID     string    `gorm:"column:location_id;type:varchar(50);not null" json:"locationId"`
	DeviceHash     string    `gorm:"column:device_hash;type:varchar(64);not null" json:"deviceHash"`
	ConnectionType string    `gorm:"column:connection_type;type:varchar(10)" json:"connectionType,omitempty"`
	FirstSeen      time.Time `gorm:"column:first_seen;not null;default:CURRENT_TIMESTAMP" json:"firstSeen"`
	LastSeen       time.Time `gorm:"column:last_seen;not null;default:CURRENT_TIMESTAMP"  json:"lastSeen"`
}

// TableName 指定表名
func (ActiveDevice) TableName() string { return "active_devices" }

// PendingDeactivation 待下线设备表 — 对应 pending_deactivations
type PendingDeactivation struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"                     json:"id"`
	LocationID string    `gorm:"column:location_id;type:varchar(50);not null" json:"locationId"`
	DeviceHash string    `gorm:"column:device_hash;type:varchar(64);not null" json:"deviceHash"`
	MarkedAt   time.Time `gorm:"column:marked_at;not null;default:CURRENT_TIMESTAMP" json:"markedAt"`
}

// TableName 指定表名
func (PendingDeactivation) TableName() string { return "pending_deactivations" }

// MainMetric 指标历史表 — 对应 main_metrics
type MainMetric struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"                     json:"id"`
	LocationID      string    `gorm:"column:location_id;type:varchar(50);not null" json:"locationId"`
	Date            time.Time `gorm:"column:date;not null"                         json:"date"`
	LiveDevices     int       `gorm:"column:live_devices;not null;default:0"       json:"liveDevices"`
	EstimatedPeople int       `gorm:"column:estimated_people;not null;default:0"   json:"estimatedPeople"`
}

// TableName 指定表名
func (MainMetric) TableName() string { return "main_metrics" }
