package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Profile").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error)
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error)
}

// Delete removes the user together with its profile, its guide entry and
// its event participations. Bookings, matches or reviews still pointing at
// the user make it fail with ErrConflict.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return translate(err)
		}
		if _, err := deleteGuide(tx, id); err != nil {
			return err
		}
		joined := tx.Table("event_participants").Select("event_id").Where("user_id = ?", id)
		err := tx.Model(&models.Event{}).
			Where("id IN (?)", joined).
			UpdateColumn("registered", gorm.Expr("CASE WHEN registered > 0 THEN registered - 1 ELSE 0 END")).Error
		if err != nil {
			return translate(err)
		}
		if err := tx.Exec("DELETE FROM event_participants WHERE user_id = ?", id).Error; err != nil {
			return translate(err)
		}
		return affected(tx.Delete(&models.User{}, id))
	})
}
