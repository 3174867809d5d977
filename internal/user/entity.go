// BlogHub | 2026
// entity.go

package user

import "time"

const (
	RoleGeneral = "general"
	RoleAdmin   = "admin"
)

// User is the users row. Password never serializes.
type User struct {
	ID           int64      `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	Password     string     `db:"password" json:"-"`
	Username     string     `db:"username" json:"username"`
	Nickname     string     `db:"nickname" json:"nickname"`
	ProfileImage *string    `db:"profile_image" json:"profileImage,omitempty"`
	SubDomain    *string    `db:"subdomain" json:"subDomain,omitempty"`
	Role         string     `db:"role" json:"role"`
	Deleted      bool       `db:"deleted" json:"-"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
