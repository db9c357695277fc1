package counter

import "time"

// CompanyCounter backs the atomic per-company sequence upsert. Rows are only
// ever touched through GetNextValue.
type CompanyCounter struct {
	CompanyID   string    `gorm:"type:uuid;primaryKey"`
	CounterType string    `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

func (CompanyCounter) TableName() string {
	return "company_counters"
}
