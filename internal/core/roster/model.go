package roster

import (
	"time"

	"github.com/uptrace/bun"
)

// Model is a read-only view of the account table owned by the account system.
type Model struct {
	bun.BaseModel `bun:"users,alias:u"`

	UserID    int64     `bun:"id,pk" json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Counts is the user summary shown on the admin overview.
type Counts struct {
	Total  int `json:"total_users"`
	Active int `json:"active_users"`
}
