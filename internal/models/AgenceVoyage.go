package models

// AgenceVoyage is a travel agency guides can be attached to.
type AgenceVoyage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nom       string `gorm:"not null;index" json:"nom"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `gorm:"index" json:"email"`

	Guides []Guide `gorm:"foreignKey:AgenceVoyageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"guides,omitempty"`
}

func (AgenceVoyage) TableName() string { return "agences_voyage" }
