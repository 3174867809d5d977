// BlogHub | 2026
// dto.go

package board

type CreateRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=200"`
	Detail    string   `json:"detail" validate:"required"`
	ImageURLs []string `json:"image_url" validate:"omitempty,dive,url"`
}

// UpdateRequest distinguishes an absent image_url field from an empty
// one: absent leaves the images alone, present replaces the whole set,
// empty included.
type UpdateRequest struct {
	Title     *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Detail    *string   `json:"detail" validate:"omitempty"`
	ImageURLs *[]string `json:"image_url" validate:"omitempty,dive,url"`
}
