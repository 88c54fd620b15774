package db

import "time"

// Session 定义服务端会话记录，Token 即客户端 Cookie 中保存的不透明标识
type Session struct {
	Token     string    `gorm:"primarykey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
