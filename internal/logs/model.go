package logs

import (
	"time"

	"gorm.io/datatypes"
)

type SystemLog struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string         `gorm:"size:10;not null" json:"level"`
	Service   string         `gorm:"size:50;not null" json:"service"`
	Action    string         `gorm:"size:50;not null" json:"action"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	UserEmail *string        `gorm:"size:254" json:"user_email,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (SystemLog) TableName() string {
	return "logs"
}

type LogFilterInput struct {
	Level     *string    `json:"level"`
	Service   *string    `json:"service"`
	Action    *string    `json:"action"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}
