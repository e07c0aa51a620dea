package specification

import "gorm.io/gorm"

// ByID filters by primary key
type ByID struct {
	ID int
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OwnedBy filters by the owning user
type OwnedBy struct {
	UserId string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// OrderBy applies ordering on a single column
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(s.Field + " " + direction)
}
