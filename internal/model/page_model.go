package model

import "time"

// CreatedDate/UpdatedDate are named so GORM does not manage them as
// CreatedAt/UpdatedAt; the service owns both timestamps.
type Page struct {
	Id          int        `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(30);not null"`
	Content     string     `gorm:"type:text"`
	SizeInBytes int64      `gorm:"not null"`
	SectionId   int        `gorm:"not null;index"`
	CreatedDate time.Time  `gorm:"column:created_at;not null"`
	UpdatedDate *time.Time `gorm:"column:updated_at"`
}

func (Page) TableName() string {
	return "pages"
}
