package models

import "time"

// LiveData is the live score shown while a sport event is running.
type LiveData struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Score    string `json:"score"`
}

type Event struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"index" json:"location"`
	Type        string `gorm:"index" json:"type"`
	Category    string `json:"category"`
	Status      string `gorm:"index" json:"status"`

	Date          *time.Time `json:"date"`
	StartDateTime *time.Time `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime"`
	Capacity      *int       `json:"capacity"`
	Price         *float64   `json:"price"`

	Live       bool     `json:"live"`
	Registered int      `gorm:"not null;default:0" json:"registered"`
	LiveData   LiveData `gorm:"embedded;embeddedPrefix:live_" json:"liveData"`

	OrganizerID  *uint  `gorm:"index" json:"organizerId"`
	Organizer    *User  `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organizer,omitempty"`
	Participants []User `gorm:"many2many:event_participants;" json:"participants,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is among the loaded participants.
func (e Event) HasParticipant(userID uint) bool {
	for _, p := range e.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// Full reports whether a capacity is set and reached.
func (e Event) Full() bool {
	return e.Capacity != nil && e.Registered >= *e.Capacity
}
