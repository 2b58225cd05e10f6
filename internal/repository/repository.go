// Package repository holds the per-entity data access layer on top of gorm.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repositories groups one repository per entity over a shared handle.
type Repositories struct {
	Users    UserRepository
	Profiles ProfileRepository
	Agencies AgencyRepository
	Guides   GuideRepository
	Places   PlaceRepository
	Events   EventRepository
	Bookings BookingRepository
	Matches  MatchRepository
	Reviews  ReviewRepository
	Media    MediaRepository
	Articles ArticleRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Profiles: NewProfileRepository(db),
		Agencies: NewAgencyRepository(db),
		Guides:   NewGuideRepository(db),
		Places:   NewPlaceRepository(db),
		Events:   NewEventRepository(db),
		Bookings: NewBookingRepository(db),
		Matches:  NewMatchRepository(db),
		Reviews:  NewReviewRepository(db),
		Media:    NewMediaRepository(db),
		Articles: NewArticleRepository(db),
	}
}

// translate maps gorm and driver errors onto ErrNotFound / ErrConflict.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == uniqueViolation || pgErr.Code == foreignKeyViolation) {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (pqErr.Code == uniqueViolation || pqErr.Code == foreignKeyViolation) {
		return fmt.Errorf("%w: %s", ErrConflict, pqErr.Message)
	}
	return err
}

// affected turns a statement that touched no row into ErrNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// containsFold builds a LIKE pattern for case-insensitive substring matching
// against a LOWER(column).
func containsFold(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}

const likeEscape = ` ESCAPE '\'`
