package models

import "time"

type MatchStatus string

const (
	MatchPending  MatchStatus = "PENDING"
	MatchAccepted MatchStatus = "ACCEPTED"
	MatchRejected MatchStatus = "REJECTED"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchPending, MatchAccepted, MatchRejected:
		return true
	}
	return false
}

func ParseMatchStatus(s string) (MatchStatus, error) {
	return parseEnum("match status", s, MatchStatus.Valid)
}

// Match pairs two users with a compatibility score.
type Match struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Score     float64     `json:"score"`
	Reasons   string      `gorm:"type:text" json:"reasons"`
	Status    MatchStatus `gorm:"type:varchar(20);index" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`

	User1ID uint  `gorm:"index;not null" json:"user1Id"`
	User1   *User `gorm:"foreignKey:User1ID" json:"user1,omitempty"`
	User2ID uint  `gorm:"index;not null" json:"user2Id"`
	User2   *User `gorm:"foreignKey:User2ID" json:"user2,omitempty"`
}

// Involves reports whether userID is one of the two matched users.
func (m Match) Involves(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}
