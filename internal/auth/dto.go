// BlogHub | 2026
// dto.go

package auth

type SignupRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=8,max=72"`
	Username     string  `json:"username" validate:"required,min=2,max=50"`
	Nickname     string  `json:"nickname" validate:"required,min=2,max=30"`
	SubDomain    *string `json:"subDomain" validate:"omitempty,hostname_rfc1123,max=63"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the data payload for login and refresh; the refresh
// token itself only ever travels in the cookie.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
