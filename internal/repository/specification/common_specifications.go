package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID filters by primary key of the base table
type ByID struct {
	Table string
	ID    int64
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s.id = ?", s.Table), s.ID)
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
