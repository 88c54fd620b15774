package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringList 以 JSON 文本形式持久化的字符串列表，保持元素顺序
type StringList []string

// Scan 实现 sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported string list source: %T", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	return json.Unmarshal(raw, l)
}

// Value 实现 driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}

	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// GalleryItem 定义画廊条目模型，同时是对外的 JSON 表示
type GalleryItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Category    string         `gorm:"size:50;not null" json:"category"`
	Type        string         `gorm:"size:20;not null;default:image" json:"type"`
	Image       string         `gorm:"not null" json:"image"`
	VideoURL    string         `json:"videoUrl,omitempty"`
	Description string         `gorm:"not null" json:"description"`
	Height      string         `gorm:"size:20;not null;default:h-64" json:"height"`
	Featured    bool           `gorm:"not null;default:false" json:"featured"`
	Tags        StringList     `gorm:"type:text" json:"tags"`
}
