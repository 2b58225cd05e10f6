package models

import "time"

type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

func ParseMediaType(s string) (MediaType, error) {
	return parseEnum("media type", s, MediaType.Valid)
}

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "PENDING"
	ModerationApproved ModerationStatus = "APPROVED"
	ModerationRejected ModerationStatus = "REJECTED"
)

func (s ModerationStatus) Valid() bool {
	switch s {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return true
	}
	return false
}

func ParseModerationStatus(s string) (ModerationStatus, error) {
	return parseEnum("moderation status", s, ModerationStatus.Valid)
}

// RelatedType names the kind of record a media item is attached to.
type RelatedType string

const (
	RelatedPlace   RelatedType = "PLACE"
	RelatedEvent   RelatedType = "EVENT"
	RelatedProfile RelatedType = "PROFILE"
	RelatedGuide   RelatedType = "GUIDE"
	RelatedArticle RelatedType = "ARTICLE"
)

func (t RelatedType) Valid() bool {
	switch t {
	case RelatedPlace, RelatedEvent, RelatedProfile, RelatedGuide, RelatedArticle:
		return true
	}
	return false
}

func ParseRelatedType(s string) (RelatedType, error) {
	return parseEnum("related type", s, RelatedType.Valid)
}

// Media is an uploaded asset loosely attached to another record through
// RelatedType/RelatedID.
type Media struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	URL         string           `gorm:"not null" json:"url"`
	Type        MediaType        `gorm:"type:varchar(20)" json:"type"`
	Status      ModerationStatus `gorm:"type:varchar(20);index" json:"status"`
	RelatedType RelatedType      `gorm:"type:varchar(20);index:idx_media_related" json:"relatedType"`
	RelatedID   uint             `gorm:"index:idx_media_related" json:"relatedId"`
	UploaderID  *uint            `gorm:"index" json:"uploaderId,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (Media) TableName() string { return "media" }
