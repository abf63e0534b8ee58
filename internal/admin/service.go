package admin

import (
	"pewec-api/internal/course"
	"pewec-api/internal/enquiry"

	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

type DashboardStats struct {
	Contacts        int64 `json:"contacts"`
	Enquiries       int64 `json:"enquiries"`
	UnreadEnquiries int64 `json:"unread_enquiries"`
	Courses         int64 `json:"courses"`
}

func (s *AdminService) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.DB.Model(&enquiry.Contact{}).Count(&stats.Contacts).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&enquiry.Enquiry{}).Count(&stats.Enquiries).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&enquiry.Enquiry{}).Where("is_read = ?", false).Count(&stats.UnreadEnquiries).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&course.Course{}).Count(&stats.Courses).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
