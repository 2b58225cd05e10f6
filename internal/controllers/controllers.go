package controllers

import (
	"teranga_match/internal/live"
	"teranga_match/internal/services"
	"teranga_match/internal/storage"
)

// Controllers bundles one controller per resource.
type Controllers struct {
	Auth     *AuthController
	Users    *UserController
	Profiles *ProfileController
	Agencies *AgencyController
	Guides   *GuideController
	Places   *PlaceController
	Events   *EventController
	Live     *LiveController
	Bookings *BookingController
	Matches  *MatchController
	Reviews  *ReviewController
	Media    *MediaController
	Articles *ArticleController
}

func New(svc *services.Services, images storage.ImageStore, hub *live.Hub, allowedOrigins []string) *Controllers {
	return &Controllers{
		Auth:     &AuthController{auth: svc.Auth},
		Users:    &UserController{users: svc.Users},
		Profiles: &ProfileController{profiles: svc.Profiles},
		Agencies: &AgencyController{agencies: svc.Agencies},
		Guides:   &GuideController{guides: svc.Guides},
		Places:   &PlaceController{places: svc.Places},
		Events:   &EventController{events: svc.Events},
		Live:     NewLiveController(svc.Events, hub, allowedOrigins),
		Bookings: &BookingController{bookings: svc.Bookings},
		Matches:  &MatchController{matches: svc.Matches},
		Reviews:  &ReviewController{reviews: svc.Reviews},
		Media:    &MediaController{media: svc.Media},
		Articles: &ArticleController{articles: svc.Articles, images: images},
	}
}
