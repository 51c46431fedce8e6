package models

import "time"

// LoginLog is an append-only audit row, one per successful login.
// Name and Category are snapshots taken at login time; rows are never
// updated or deleted.
type LoginLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	LoginTime time.Time `gorm:"column:login_time;autoCreateTime" json:"login_time"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}
