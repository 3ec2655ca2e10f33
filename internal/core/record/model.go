package record

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Model is one activity completion entry. (UserID, ActivityName, Date) is unique.
type Model struct {
	bun.BaseModel `bun:"activity_records,alias:ar"`

	RecordID     int64     `bun:",pk,autoincrement" json:"id"`
	UserID       int64     `bun:",notnull" json:"user_id"`
	ActivityName string    `bun:",notnull" json:"activity_name"`
	Date         time.Time `bun:"type:date,notnull" json:"date"`
	Completed    bool      `bun:",notnull,default:false" json:"completed"`
	// Value is passed through untouched by every computation.
	Value     null.Int  `json:"value"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

type key struct {
	userID int64
	name   string
	date   time.Time
}

func (m *Model) key() key {
	return key{userID: m.UserID, name: m.ActivityName, date: m.Date}
}
