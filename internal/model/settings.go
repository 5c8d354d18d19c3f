package model

import "time"

// SiteSettings drives the landing page theme. Singleton row like
// AboutSection and ContactInfo.
type SiteSettings struct {
	ID              string    `gorm:"primaryKey;size:50" json:"id"`
	BackgroundColor string    `gorm:"size:20" json:"backgroundColor"`
	AccentColor     string    `gorm:"size:20" json:"accentColor"`
	TextColor       string    `gorm:"size:20" json:"textColor"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
