package models

import "encoding/json"

// Guide shares its primary key with the user it extends.
type Guide struct {
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`
	// User is filled by the repository; guides.id already is the user id.
	User *User `gorm:"-" json:"user,omitempty"`

	Specialties []GuideSpecialty `gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE;" json:"specialties"`
	HourlyRate  float64          `json:"hourlyRate"`
	RatingAvg   float64          `json:"ratingAvg"`
	Verified    bool             `json:"verified"`

	AgenceVoyageID *uint         `gorm:"index" json:"agenceVoyageId"`
	AgenceVoyage   *AgenceVoyage `gorm:"foreignKey:AgenceVoyageID" json:"agenceVoyage,omitempty"`
}

// GuideSpecialty is one element of a guide's specialty collection.
// It serializes as a bare string.
type GuideSpecialty struct {
	ID      uint   `gorm:"primaryKey"`
	GuideID uint   `gorm:"index;not null"`
	Name    string `gorm:"not null"`
}

func (GuideSpecialty) TableName() string { return "guide_specialties" }

func (s GuideSpecialty) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name)
}

func (s *GuideSpecialty) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.Name)
}

// NewSpecialties builds the collection from names, skipping blanks.
func NewSpecialties(names []string) []GuideSpecialty {
	out := make([]GuideSpecialty, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		out = append(out, GuideSpecialty{Name: n})
	}
	return out
}

// SpecialtyNames returns the plain names of the guide's specialties.
func (g Guide) SpecialtyNames() []string {
	names := make([]string, len(g.Specialties))
	for i, s := range g.Specialties {
		names[i] = s.Name
	}
	return names
}
