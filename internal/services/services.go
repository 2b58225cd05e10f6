// Package services holds the business rules sitting between controllers
// and repositories.
package services

import (
	"errors"
	"fmt"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   models.UserRole
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// TokenFunc issues a bearer token for a user.
type TokenFunc func(models.User) (string, error)

// LivePublisher pushes an event's live data to its subscribers.
type LivePublisher interface {
	Publish(eventID uint, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(uint, any) {}

type Services struct {
	Auth     *AuthService
	Users    *UserService
	Profiles *ProfileService
	Agencies *AgencyService
	Guides   *GuideService
	Places   *PlaceService
	Events   *EventService
	Bookings *BookingService
	Matches  *MatchService
	Reviews  *ReviewService
	Media    *MediaService
	Articles *ArticleService
}

func New(repos *repository.Repositories, token TokenFunc, live LivePublisher) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, token),
		Users:    NewUserService(repos.Users),
		Profiles: NewProfileService(repos.Profiles, repos.Users),
		Agencies: NewAgencyService(repos.Agencies),
		Guides:   NewGuideService(repos.Guides, repos.Users, repos.Agencies),
		Places:   NewPlaceService(repos.Places),
		Events:   NewEventService(repos.Events, live),
		Bookings: NewBookingService(repos.Bookings, repos.Guides),
		Matches:  NewMatchService(repos.Matches, repos.Users),
		Reviews:  NewReviewService(repos.Reviews, repos.Guides, repos.Places, repos.Events),
		Media:    NewMediaService(repos.Media),
		Articles: NewArticleService(repos.Articles),
	}
}
