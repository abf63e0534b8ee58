package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeLongTerm  = "long_term"
	TypeShortTerm = "short_term"
)

type Course struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	Description *string   `gorm:"type:text" json:"description"`
	RepEmail    string    `gorm:"size:254;not null" json:"rep_email"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// PublicCourse is the minimal projection served to the enquiry form.
type PublicCourse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Type        string  `json:"type" binding:"required,oneof=long_term short_term"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	RepEmail    string  `json:"rep_email" binding:"required,email,max=254"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateCourseRequest struct {
	ID          string  `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Type        *string `json:"type" binding:"omitempty,oneof=long_term short_term"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	RepEmail    *string `json:"rep_email" binding:"omitempty,email,max=254"`
	IsActive    *bool   `json:"is_active"`
}
