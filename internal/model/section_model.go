package model

type Section struct {
	Id     int    `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:varchar(30);not null"`
	UserId string `gorm:"type:varchar(255);not null;index"`
	Pages  []Page `gorm:"foreignKey:SectionId;constraint:OnDelete:CASCADE"`
}

func (Section) TableName() string {
	return "sections"
}
