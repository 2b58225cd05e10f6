package services

import (
	"context"
	"sort"
	"strings"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type PlaceService struct {
	places repository.PlaceRepository
}

func NewPlaceService(places repository.PlaceRepository) *PlaceService {
	return &PlaceService{places: places}
}

func (s *PlaceService) GetAll(ctx context.Context) ([]models.Place, error) {
	return s.places.FindAll(ctx)
}

func (s *PlaceService) GetByID(ctx context.Context, id uint) (*models.Place, error) {
	return s.places.FindByID(ctx, id)
}

func (s *PlaceService) GetByType(ctx context.Context, t models.PlaceType) ([]models.Place, error) {
	return s.places.FindByType(ctx, t)
}

func (s *PlaceService) SearchByName(ctx context.Context, q string) ([]models.Place, error) {
	return s.places.SearchByName(ctx, q)
}

func (s *PlaceService) SearchByAddress(ctx context.Context, q string) ([]models.Place, error) {
	return s.places.SearchByAddress(ctx, q)
}

// NearbyPlace is a place with its distance from a search point.
type NearbyPlace struct {
	models.Place
	DistanceMeters float64 `json:"distanceMeters"`
}

// Near returns the places with coordinates within radiusMeters of the
// point, closest first.
func (s *PlaceService) Near(ctx context.Context, lat, lon, radiusMeters float64) ([]NearbyPlace, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 || radiusMeters <= 0 {
		return nil, invalidf("invalid search point or radius")
	}
	places, err := s.places.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]NearbyPlace, 0)
	for _, p := range places {
		if !p.HasCoordinates() {
			continue
		}
		d := distanceMeters(lat, lon, *p.Latitude, *p.Longitude)
		if d <= radiusMeters {
			out = append(out, NearbyPlace{Place: p, DistanceMeters: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistanceMeters < out[j].DistanceMeters })
	return out, nil
}

func (s *PlaceService) Create(ctx context.Context, in models.Place) (*models.Place, error) {
	if err := validatePlace(&in); err != nil {
		return nil, err
	}
	in.ID = 0
	if err := s.places.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *PlaceService) Update(ctx context.Context, id uint, in models.Place) (*models.Place, error) {
	if _, err := s.places.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := validatePlace(&in); err != nil {
		return nil, err
	}
	in.ID = id
	if err := s.places.Save(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *PlaceService) Delete(ctx context.Context, id uint) error {
	return s.places.Delete(ctx, id)
}

func validatePlace(p *models.Place) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidf("name is required")
	}
	if p.Type == "" {
		p.Type = models.PlaceOther
	}
	if !p.Type.Valid() {
		return invalidf("invalid place type %q", p.Type)
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return invalidf("latitude and longitude go together")
	}
	if p.HasCoordinates() && (*p.Latitude < -90 || *p.Latitude > 90 || *p.Longitude < -180 || *p.Longitude > 180) {
		return invalidf("coordinates out of range")
	}
	return nil
}
