// BlogHub | 2026
// entity.go

package blog

import (
	"encoding/json"
	"time"
)

type Blog struct {
	ID         int64      `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	SubDomain  string     `db:"subdomain" json:"subDomain"`
	UserID     int64      `db:"user_id" json:"userId"`
	TemplateID int64      `db:"template_id" json:"templateId"`
	Deleted    bool       `db:"deleted" json:"-"`
	DeletedAt  *time.Time `db:"deleted_at" json:"-"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// BlogWithTemplate is the public blog view joined with its template,
// served on the subdomain lookup.
type BlogWithTemplate struct {
	Blog
	TemplateName      string          `db:"template_name" json:"templateName"`
	TemplateThumbnail string          `db:"template_thumbnail" json:"templateThumbnail"`
	TemplateCode      json.RawMessage `db:"template_code" json:"templateCode"`
}
