package models

// Profile holds the public-facing details of a user. One per user.
type Profile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"uniqueIndex;not null" json:"userId"`
	DisplayName string `json:"displayName"`
	Bio         string `gorm:"type:text" json:"bio"`
	City        string `json:"city"`
	PhotoURL    string `json:"photoUrl"`
	Verified    bool   `json:"verified"`
}
