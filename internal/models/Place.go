package models

type PlaceType string

const (
	PlaceRestaurant PlaceType = "RESTAURANT"
	PlaceHotel      PlaceType = "HOTEL"
	PlaceAuberge    PlaceType = "AUBERGE"
	PlaceMuseum     PlaceType = "MUSEUM"
	PlaceMonument   PlaceType = "MONUMENT"
	PlaceBeach      PlaceType = "BEACH"
	PlaceMarket     PlaceType = "MARKET"
	PlaceAtelier    PlaceType = "ATELIER"
	PlacePark       PlaceType = "PARK"
	PlaceOther      PlaceType = "OTHER"
)

func (t PlaceType) Valid() bool {
	switch t {
	case PlaceRestaurant, PlaceHotel, PlaceAuberge, PlaceMuseum, PlaceMonument,
		PlaceBeach, PlaceMarket, PlaceAtelier, PlacePark, PlaceOther:
		return true
	}
	return false
}

func ParsePlaceType(s string) (PlaceType, error) {
	return parseEnum("place type", s, PlaceType.Valid)
}

// Place is a point of interest. Coordinates are WGS84 degrees.
type Place struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Type         PlaceType `gorm:"type:varchar(20);index" json:"type"`
	Address      string    `json:"address"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	OpeningHours string    `json:"openingHours"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
