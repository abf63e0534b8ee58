package enquiry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is the deduplicated person record keyed by email. Re-submitting
// the same email refreshes the name fields on the existing row.
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Enquiry is one submission event. Course fields are populated only for
// course-type enquiries; the course name is denormalized at write time.
type Enquiry struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ContactID      string    `gorm:"size:36;not null;index" json:"contact_id"`
	EnquiryType    string    `gorm:"size:20;not null" json:"enquiry_type"`
	EnquiryDetails *string   `gorm:"type:text" json:"enquiry_details"`
	Phone          string    `gorm:"size:10;not null" json:"phone"`
	CourseID       *string   `gorm:"size:36;index" json:"course_id"`
	CourseName     *string   `gorm:"size:200" json:"course_name"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// SubmitEnquiryRequest is the raw public form body before validation.
type SubmitEnquiryRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EnquiryType string `json:"enquiry_type"`
	Message     string `json:"message"`
	CourseID    string `json:"course_id"`
}

// Submission is a validated, normalized enquiry ready for storage.
type Submission struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	EnquiryType string
	Message     *string
	CourseID    string
}

type UpdateEnquiryRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// EnquiryListRow is one admin list entry with the contact joined in.
type EnquiryListRow struct {
	ID             string    `json:"id"`
	ContactID      string    `json:"contact_id"`
	EnquiryType    string    `json:"enquiry_type"`
	EnquiryDetails *string   `json:"enquiry_details"`
	Phone          string    `json:"phone"`
	CourseID       *string   `json:"course_id"`
	CourseName     *string   `json:"course_name"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	ContactEmail   string    `json:"contact_email"`
}
