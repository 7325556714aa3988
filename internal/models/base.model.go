package models

import (
	"time"
)

// BaseModel carries the server-assigned id and creation timestamp.
// created_at is the tie-breaker when records share an assessment date.
type BaseModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"created_at"`
}
