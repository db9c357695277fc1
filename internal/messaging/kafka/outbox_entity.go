package kafka

import "time"

// outboxEventRow exists for schema migration only; the repository reads and
// writes the table through raw SQL.
type outboxEventRow struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     string     `gorm:"type:varchar(64)"`
	AggregateType string     `gorm:"type:varchar(50);not null"`
	AggregateID   string     `gorm:"type:uuid;not null"`
	EventType     string     `gorm:"type:varchar(100);not null"`
	Topic         string     `gorm:"type:varchar(200);not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RetryCount    int        `gorm:"not null;default:0"`
	ErrorMessage  string     `gorm:"type:varchar(500)"`
	NextRetryAt   *time.Time `gorm:""`
	ProcessedAt   *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()"`
}

func (outboxEventRow) TableName() string {
	return "outbox_events"
}

// MigrationModel is passed to AutoMigrate by the app wiring.
func MigrationModel() interface{} {
	return &outboxEventRow{}
}
