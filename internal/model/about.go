package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const SingletonID = "default"

// AboutSection is a singleton row (id = "default") holding the landing
// page's bio content. Stats and Education are free-form JSONB blobs edited
// as a whole by the admin UI.
type AboutSection struct {
	ID        string         `gorm:"primaryKey;size:50" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Tagline   string         `gorm:"type:text" json:"tagline"`
	Objective string         `gorm:"type:text" json:"objective"`
	Arsenal   pq.StringArray `gorm:"type:text[]" json:"arsenal"`
	Stats     datatypes.JSON `json:"stats"`
	Education datatypes.JSON `json:"education"`
	Clearance string         `gorm:"size:50" json:"clearance"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (AboutSection) TableName() string {
	return "about_sections"
}
