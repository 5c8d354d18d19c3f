package model

import (
	"time"

	"github.com/lib/pq"
)

// Project IDs are short human-assigned slugs (e.g. "SP-24"), chosen by the
// admin when the project is created.
type Project struct {
	ID          string         `gorm:"primaryKey;size:50" json:"id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Tech        pq.StringArray `gorm:"type:text[]" json:"tech"`
	Gallery     pq.StringArray `gorm:"type:text[]" json:"gallery"`
	GithubURL   string         `gorm:"size:512" json:"githubUrl"`
	LiveURL     string         `gorm:"size:512" json:"liveUrl"`
	Order       int            `gorm:"not null;default:0" json:"order"`
	Published   bool           `gorm:"not null;default:true" json:"published"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}
