package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	return parseEnum("booking status", s, BookingStatus.Valid)
}

// Booking is a visitor's reservation of a guide for a time slot.
type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	StartDateTime time.Time     `gorm:"not null" json:"startDateTime"`
	EndDateTime   time.Time     `gorm:"not null;index" json:"endDateTime"`
	Status        BookingStatus `gorm:"type:varchar(20);index" json:"status"`
	Price         float64       `json:"price"`

	VisitorID uint   `gorm:"index;not null" json:"visitorId"`
	Visitor   *User  `gorm:"foreignKey:VisitorID" json:"visitor,omitempty"`
	GuideID   uint   `gorm:"index;not null" json:"guideId"`
	Guide     *Guide `gorm:"foreignKey:GuideID" json:"guide,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
