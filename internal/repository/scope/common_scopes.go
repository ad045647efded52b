package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// ForQuery restricts rows to one guidance query.
func ForQuery(queryId uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("query_id = ?", queryId)
	}
}
