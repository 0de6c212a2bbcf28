package model

import (
	"time"
)

// BaseModel 基础模型，内部自增ID仅用于存储，对外统一使用业务码
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
