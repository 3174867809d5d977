// BlogHub | 2026
// entity.go

package template

import (
	"encoding/json"
	"time"
)

// Template is a reusable blog skin: the code column is the structured
// html/css/js bundle, stored as jsonb and passed through untouched.
type Template struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Thumbnail string          `db:"thumbnail" json:"thumbnail"`
	Code      json.RawMessage `db:"code" json:"code"`
	Share     bool            `db:"share" json:"share"`
	UserID    int64           `db:"user_id" json:"userId"`
	Deleted   bool            `db:"deleted" json:"-"`
	DeletedAt *time.Time      `db:"deleted_at" json:"-"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}
