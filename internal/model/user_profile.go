package model

import "time"

// Role is the authorization level of a user profile.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserProfile is the locally stored part of an identity issued by the external provider.
type UserProfile struct {
	UID       string    `json:"uid" gorm:"column:uid;size:128;primaryKey"`
	Email     string    `json:"email" gorm:"size:255"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null;default:'user';index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the collection name used by the original data set.
func (UserProfile) TableName() string {
	return "users"
}

// IsAdmin reports whether the profile carries the admin role.
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
