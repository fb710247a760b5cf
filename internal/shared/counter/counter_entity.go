package counter

import "time"

// EntityCounter backs the identifier allocator. One row per entity kind.
type EntityCounter struct {
	Entity    string    `gorm:"column:entity;type:text;primaryKey"`
	LastValue int64     `gorm:"column:last_value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (EntityCounter) TableName() string {
	return "entity_counters"
}
