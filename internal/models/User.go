package models

import "time"

// UserRole is the authorization role carried by a user and by its tokens.
type UserRole string

const (
	RoleVisitor   UserRole = "VISITOR"
	RoleLocal     UserRole = "LOCAL"
	RoleGuide     UserRole = "GUIDE"
	RoleOrganizer UserRole = "ORGANIZER"
	RoleAdmin     UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleVisitor, RoleLocal, RoleGuide, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole accepts any casing, e.g. "admin" or "Admin".
func ParseUserRole(s string) (UserRole, error) {
	return parseEnum("role", s, UserRole.Valid)
}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`
}
