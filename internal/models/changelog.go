package models

import "time"

// ChangeEntry одно изменение за день.
type ChangeEntry struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// DailyChangeLog журнал изменений за календарный день.
type DailyChangeLog struct {
	ID        int64         `json:"id"`
	Date      time.Time     `json:"date"`
	Changes   []ChangeEntry `json:"changes"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateDailyChangeLogInput входные данные журнала.
type CreateDailyChangeLogInput struct {
	Date    *time.Time    `json:"date"`
	Changes []ChangeEntry `json:"changes"`
}
