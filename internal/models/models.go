package models

// All lists every persisted type, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{}, &Profile{}, &AgenceVoyage{}, &Guide{}, &GuideSpecialty{},
		&Place{}, &Event{}, &Booking{}, &Match{}, &Review{}, &Media{}, &Article{},
	}
}
