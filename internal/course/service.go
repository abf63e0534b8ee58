package course

import (
	"gorm.io/gorm"
)

type CourseService struct {
	DB *gorm.DB
}

// GetAll returns every course, active or not, for the admin catalog.
func (cs *CourseService) GetAll() ([]Course, error) {
	var courses []Course
	result := cs.DB.Order("type asc").Order("name asc").Find(&courses)
	if result.Error != nil {
		return nil, result.Error
	}
	return courses, nil
}

// GetActive returns the projection served to the public enquiry form.
func (cs *CourseService) GetActive() ([]PublicCourse, error) {
	var courses []PublicCourse
	result := cs.DB.Model(&Course{}).
		Select("id, name, type").
		Where("is_active = ?", true).
		Order("type asc").Order("name asc").
		Scan(&courses)
	if result.Error != nil {
		return nil, result.Error
	}
	return courses, nil
}

// GetByID resolves one course. Inactive courses remain valid enquiry
// targets, so no is_active filter here.
func (cs *CourseService) GetByID(id string) (*Course, error) {
	var c Course
	result := cs.DB.Where("id = ?", id).First(&c)
	if result.Error != nil {
		return nil, result.Error
	}
	return &c, nil
}

func (cs *CourseService) Create(c Course) (*Course, error) {
	if err := cs.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Update applies only the supplied fields and returns the updated row.
// Returns gorm.ErrRecordNotFound when id does not exist.
func (cs *CourseService) Update(id string, updates map[string]interface{}) (*Course, error) {
	var existing Course
	if err := cs.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := cs.DB.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var updated Course
	if err := cs.DB.Where("id = ?", id).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
