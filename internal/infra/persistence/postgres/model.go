package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// documentModel is one document of any collection stored as JSONB.
type documentModel struct {
	Collection string            `gorm:"primaryKey;size:64"`
	ID         string            `gorm:"primaryKey;size:128"`
	Data       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	Version    int64             `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentModel) TableName() string {
	return "documents"
}
