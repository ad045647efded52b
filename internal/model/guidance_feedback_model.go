package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GuidanceFeedback struct {
	Id         uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QueryId    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Helpful    bool                        `gorm:"not null"`
	Rating     *float64                    `gorm:"type:numeric(3,2)"`
	Comment    string                      `gorm:"type:text"`
	ArticleIds datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime"`
}

func (GuidanceFeedback) TableName() string {
	return "guidance_feedbacks"
}
