package model

import (
	"time"

	"gorm.io/datatypes"
)

// KnowledgeArticle is a curated corpus entry. Craft types and tags are jsonb
// arrays so the craft filter can use containment.
type KnowledgeArticle struct {
	Id         string                      `gorm:"type:varchar(64);primaryKey"`
	Title      string                      `gorm:"type:varchar(255);not null"`
	Content    string                      `gorm:"type:text;not null"`
	Category   string                      `gorm:"type:varchar(32);not null;index"`
	Difficulty string                      `gorm:"type:varchar(32);not null;index"`
	CraftTypes datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Author     string                      `gorm:"type:varchar(255)"`
	Source     string                      `gorm:"type:varchar(255)"`
	ViewCount  int64                       `gorm:"not null;default:0"`
	Rating     float64                     `gorm:"not null;default:0"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt  time.Time                   `gorm:"autoUpdateTime"`
}

func (KnowledgeArticle) TableName() string {
	return "knowledge_articles"
}
