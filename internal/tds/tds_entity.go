package tds

import (
	"time"

	"github.com/google/uuid"
)

// TDSRecord is a tax-deduction billing entry. The refrence column name
// (and json key) carries over the legacy spelling; the dashboard binds
// to it.
type TDSRecord struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TDSID     int64     `gorm:"column:tds_id;not null;uniqueIndex:uq_tds_records_tds_id"`
	PartyName string    `gorm:"column:party_name;type:text;not null"`
	PanCardNo string    `gorm:"column:pan_card_no;type:text;not null;uniqueIndex:uq_tds_records_pan"`
	Refrence  string    `gorm:"column:refrence;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TDSRecord) TableName() string {
	return "tds_records"
}
