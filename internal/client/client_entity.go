package client

import (
	"time"

	"github.com/google/uuid"
)

// Client has no storage-level unique email index: the duplicate check
// runs only on the create path, as the legacy API did.
type Client struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientID  int64     `gorm:"column:client_id;not null;uniqueIndex:uq_clients_client_id"`
	Name      string    `gorm:"column:name;type:text;not null"`
	Email     string    `gorm:"column:email;type:text;not null"`
	Phone     string    `gorm:"column:phone;type:text"`
	Address   string    `gorm:"column:address;type:text"`
	City      string    `gorm:"column:city;type:text"`
	State     string    `gorm:"column:state;type:text"`
	ZipCode   string    `gorm:"column:zip_code;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
