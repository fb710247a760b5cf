package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account. Passwords are stored verbatim to keep
// the credential contract of the legacy API; see DESIGN.md.
type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"column:email;type:text;not null;uniqueIndex:uq_users_email"`
	Password  string    `gorm:"column:password;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
