package logs

import (
	"encoding/json"
	"strings"
	"time"

	"pewec-api/internal/pagination"

	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

// Log writes one audit row. Metadata (map/struct) is stored as JSON if
// provided.
func (ls *LogService) Log(entry SystemLog, metadata interface{}) error {
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			entry.Metadata = b
		}
	}
	entry.CreatedAt = time.Now()
	return ls.DB.Create(&entry).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]SystemLog, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	base := ls.DB.Model(&SystemLog{})

	// Default: last 30 days if no dates
	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("created_at >= ?", time.Now().AddDate(0, 0, -30))
	}
	if input.StartDate != nil {
		base = base.Where("created_at >= ?", *input.StartDate)
	}
	if input.EndDate != nil {
		base = base.Where("created_at <= ?", *input.EndDate)
	}

	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		base = base.Where("action = ?", strings.TrimSpace(*input.Action))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	offset, totalPages := pagination.Paginate(total, input.Page, input.PageSize)

	var rows []SystemLog
	err := base.
		Session(&gorm.Session{}).
		Order("created_at desc").
		Offset(offset).
		Limit(input.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}
