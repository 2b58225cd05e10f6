package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type PlaceController struct {
	places *services.PlaceService
}

type placeInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Type         string   `json:"type" binding:"omitempty,placetype"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	OpeningHours string   `json:"openingHours"`
}

func (in placeInput) toModel() models.Place {
	t, _ := models.ParsePlaceType(in.Type)
	return models.Place{
		Name:         in.Name,
		Description:  in.Description,
		Type:         t,
		Address:      in.Address,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		OpeningHours: in.OpeningHours,
	}
}

// List supports ?type=, ?q= (name) and ?address= filters.
func (pc *PlaceController) List(c *gin.Context) {
	places, ok := pc.filtered(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) filtered(c *gin.Context) ([]models.Place, bool) {
	ctx := c.Request.Context()
	var (
		places []models.Place
		err    error
	)
	switch {
	case c.Query("type") != "":
		t, perr := models.ParsePlaceType(c.Query("type"))
		if perr != nil {
			badRequest(c, perr)
			return nil, false
		}
		places, err = pc.places.GetByType(ctx, t)
	case c.Query("q") != "":
		places, err = pc.places.SearchByName(ctx, c.Query("q"))
	case c.Query("address") != "":
		places, err = pc.places.SearchByAddress(ctx, c.Query("address"))
	default:
		places, err = pc.places.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return places, true
}

// GeoJSON exports the (filtered) places with coordinates as a
// FeatureCollection of points.
func (pc *PlaceController) GeoJSON(c *gin.Context) {
	places, ok := pc.filtered(c)
	if !ok {
		return
	}
	fc, err := toFeatureCollection(places)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

func toFeatureCollection(places []models.Place) (*gjson.FeatureCollection, error) {
	fc := &gjson.FeatureCollection{Features: make([]*gjson.Feature, 0, len(places))}
	for _, p := range places {
		if !p.HasCoordinates() {
			continue
		}
		pt, err := geom.NewPoint(geom.XY).SetCoords(geom.Coord{*p.Longitude, *p.Latitude})
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, &gjson.Feature{
			ID:       strconv.FormatUint(uint64(p.ID), 10),
			Geometry: pt,
			Properties: map[string]interface{}{
				"name":         p.Name,
				"type":         p.Type,
				"address":      p.Address,
				"openingHours": p.OpeningHours,
			},
		})
	}
	return fc, nil
}

// Near handles ?lat=&lng=&radius= (meters, default 5000).
func (pc *PlaceController) Near(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		badRequest(c, errors.New("lat and lng are required numbers"))
		return
	}
	radius := 5000.0
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, errors.New("invalid radius"))
			return
		}
		radius = r
	}
	places, err := pc.places.Near(c.Request.Context(), lat, lng, radius)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := pc.places.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PlaceController) Create(c *gin.Context) {
	var input placeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	p, err := pc.places.Create(c.Request.Context(), input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (pc *PlaceController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input placeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	p, err := pc.places.Update(c.Request.Context(), id, input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PlaceController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := pc.places.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
