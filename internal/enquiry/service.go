package enquiry

import (
	"pewec-api/internal/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageSize is the fixed page size for admin list views.
const PageSize = 10

type EnquiryService struct {
	DB *gorm.DB
}

// UpsertContact writes (first_name, last_name, email) with email as the
// conflict key: insert-if-absent, refresh names if present. The row that
// survives the write is re-read so callers always get its identifier.
func (s *EnquiryService) UpsertContact(firstName, lastName, email string) (*Contact, error) {
	contact := Contact{FirstName: firstName, LastName: lastName, Email: email}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "updated_at"}),
	}).Create(&contact).Error
	if err != nil {
		return nil, err
	}

	var saved Contact
	if err := s.DB.Where("email = ?", email).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *EnquiryService) CreateEnquiry(e Enquiry) (*Enquiry, error) {
	if err := s.DB.Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEnquiries returns one admin page, newest first, with the contact
// joined in. typeFilter narrows to one enquiry type; "" or "all" means
// no filter.
func (s *EnquiryService) ListEnquiries(page int, typeFilter string) ([]EnquiryListRow, int64, int, error) {
	base := s.DB.Table("enquiries").
		Joins("LEFT JOIN contacts c ON enquiries.contact_id = c.id")

	if typeFilter != "" && typeFilter != "all" {
		base = base.Where("enquiries.enquiry_type = ?", typeFilter)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	offset, totalPages := pagination.Paginate(total, page, PageSize)

	var rows []EnquiryListRow
	err := base.
		Session(&gorm.Session{}).
		Select("enquiries.id, enquiries.contact_id, enquiries.enquiry_type, enquiries.enquiry_details, enquiries.phone, enquiries.course_id, enquiries.course_name, enquiries.is_read, enquiries.created_at, c.first_name, c.last_name, c.email AS contact_email").
		Order("enquiries.created_at DESC").
		Offset(offset).
		Limit(PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}

// SetRead flips the read flag. Returns gorm.ErrRecordNotFound for an
// unknown id.
func (s *EnquiryService) SetRead(id string, isRead bool) (*Enquiry, error) {
	var e Enquiry
	if err := s.DB.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&e).Update("is_read", isRead).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EnquiryService) DeleteEnquiry(id string) error {
	var e Enquiry
	if err := s.DB.Where("id = ?", id).First(&e).Error; err != nil {
		return err
	}
	return s.DB.Delete(&e).Error
}

func (s *EnquiryService) ListContacts(page int) ([]Contact, int64, int, error) {
	var total int64
	if err := s.DB.Model(&Contact{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	offset, totalPages := pagination.Paginate(total, page, PageSize)

	var rows []Contact
	err := s.DB.
		Order("created_at DESC").
		Offset(offset).
		Limit(PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}

// GetContactWithEnquiries returns one contact and its enquiries, newest
// first.
func (s *EnquiryService) GetContactWithEnquiries(id string) (*Contact, []Enquiry, error) {
	var contact Contact
	if err := s.DB.Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, nil, err
	}

	var enquiries []Enquiry
	err := s.DB.
		Where("contact_id = ?", id).
		Order("created_at DESC").
		Find(&enquiries).Error
	if err != nil {
		return nil, nil, err
	}

	return &contact, enquiries, nil
}
