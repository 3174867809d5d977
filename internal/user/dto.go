// BlogHub | 2026
// dto.go

package user

// PasswordChange carries a password rotation: the current password is
// verified before the new one is accepted.
type PasswordChange struct {
	Current string `json:"current" validate:"required"`
	Change  string `json:"change" validate:"required,min=8,max=72"`
}

// UpdateRequest is the partial profile update. Only fields present in
// the payload reach the UPDATE statement.
type UpdateRequest struct {
	Nickname     *string         `json:"nickname" validate:"omitempty,min=2,max=30"`
	ProfileImage *string         `json:"profileImage" validate:"omitempty,url"`
	Password     *PasswordChange `json:"password"`
}
