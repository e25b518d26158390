package models

import "time"

// Role labels, least to most privileged.
const (
	RoleModerator  = "moderator"
	RoleEditor     = "editor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var roleRank = map[string]int{
	RoleModerator:  1,
	RoleEditor:     2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// RoleAtLeast reports whether role meets or exceeds the required role.
// Unknown roles never qualify.
func RoleAtLeast(role, required string) bool {
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	req, ok := roleRank[required]
	if !ok {
		return false
	}
	return r >= req
}

// ValidRole reports whether the role label is one we recognise.
func ValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// UserModel represents an admin-surface account (chaplain, editors,
// association moderators).
type UserModel struct {
	Base
	Email         string     `json:"email"       gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Password      string     `json:"-"           gorm:"not null"`
	Role          string     `json:"role"        gorm:"not null;default:'editor'"`
	Association   string     `json:"association,omitempty"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }
