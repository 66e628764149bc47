package repository

import (
	"github.com/shopfront/internal/constants"

	"gorm.io/gorm"
)

// paginate 分页 scope，页码从 1 开始，pageSize 超过上限时截断，非正数时不分页
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if pageSize > constants.MaxPageSize {
			pageSize = constants.MaxPageSize
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
