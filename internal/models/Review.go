package models

import "time"

// Review targets exactly one of a guide, a place or an event.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	AuthorID uint  `gorm:"index;not null" json:"authorId"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	GuideID *uint `gorm:"index" json:"guideId,omitempty"`
	PlaceID *uint `gorm:"index" json:"placeId,omitempty"`
	EventID *uint `gorm:"index" json:"eventId,omitempty"`
}

// TargetCount returns how many of the guide/place/event references are set.
func (r Review) TargetCount() int {
	n := 0
	for _, id := range []*uint{r.GuideID, r.PlaceID, r.EventID} {
		if id != nil {
			n++
		}
	}
	return n
}
