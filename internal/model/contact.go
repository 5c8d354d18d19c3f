package model

import "time"

type ContactInfo struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Email     string    `gorm:"size:255" json:"email"`
	Github    string    `gorm:"size:512" json:"github"`
	Linkedin  string    `gorm:"size:512" json:"linkedin"`
	Twitter   string    `gorm:"size:512" json:"twitter"`
	Resume    string    `gorm:"size:512" json:"resume"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}
