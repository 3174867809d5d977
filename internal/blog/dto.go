// BlogHub | 2026
// dto.go

package blog

type CreateRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	SubDomain  string `json:"subDomain" validate:"required,hostname_rfc1123,max=63"`
	TemplateID int64  `json:"templateId" validate:"required,gt=0"`
}

type UpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	TemplateID *int64  `json:"template_id" validate:"omitempty,gt=0"`
}
