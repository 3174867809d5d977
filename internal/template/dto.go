// BlogHub | 2026
// dto.go

package template

import "encoding/json"

type CreateRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Thumbnail string          `json:"thumbnail" validate:"required,url"`
	Code      json.RawMessage `json:"code" validate:"required"`
	Share     *bool           `json:"share"`
}
