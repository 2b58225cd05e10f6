package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type EventRepository interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByType(ctx context.Context, eventType string) ([]models.Event, error)
	FindByStatus(ctx context.Context, status string) ([]models.Event, error)
	FindByLocation(ctx context.Context, location string) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Save(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	AddParticipant(ctx context.Context, eventID, userID uint) error
	RemoveParticipant(ctx context.Context, eventID, userID uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) list(q *gorm.DB) ([]models.Event, error) {
	var events []models.Event
	if err := q.Preload("Organizer.Profile").Order("id").Find(&events).Error; err != nil {
		return nil, translate(err)
	}
	return events, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var e models.Event
	err := r.db.WithContext(ctx).
		Preload("Organizer.Profile").
		Preload("Participants.Profile").
		First(&e, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *eventRepository) FindByType(ctx context.Context, eventType string) ([]models.Event, error) {
	return r.list(r.db.WithContext(ctx).Where("LOWER(type) = LOWER(?)", eventType))
}

func (r *eventRepository) FindByStatus(ctx context.Context, status string) ([]models.Event, error) {
	return r.list(r.db.WithContext(ctx).Where("LOWER(status) = LOWER(?)", status))
}

func (r *eventRepository) FindByLocation(ctx context.Context, location string) ([]models.Event, error) {
	return r.list(r.db.WithContext(ctx).Where("LOWER(location) LIKE ?"+likeEscape, containsFold(location)))
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error)
}

// Save writes every column except registered, which only AddParticipant and
// RemoveParticipant change.
func (r *eventRepository) Save(ctx context.Context, event *models.Event) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations, "Registered").Save(event).Error)
}

// Delete removes the event, its reviews and its participant rows.
func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Exec("DELETE FROM event_participants WHERE event_id = ?", id).Error; err != nil {
			return translate(err)
		}
		return affected(tx.Delete(&models.Event{}, id))
	})
}

// AddParticipant is a no-op when the user already participates.
func (r *eventRepository) AddParticipant(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Table("event_participants").
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&n).Error
		if err != nil {
			return translate(err)
		}
		if n > 0 {
			return nil
		}
		if err := tx.Exec("INSERT INTO event_participants (event_id, user_id) VALUES (?, ?)", eventID, userID).Error; err != nil {
			return translate(err)
		}
		return affected(tx.Model(&models.Event{}).
			Where("id = ?", eventID).
			UpdateColumn("registered", gorm.Expr("registered + 1")))
	})
}

func (r *eventRepository) RemoveParticipant(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec("DELETE FROM event_participants WHERE event_id = ? AND user_id = ?", eventID, userID)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return affected(tx.Model(&models.Event{}).
			Where("id = ?", eventID).
			UpdateColumn("registered", gorm.Expr("CASE WHEN registered > 0 THEN registered - 1 ELSE 0 END")))
	})
}
