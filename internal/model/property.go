package model

import "time"

const (
	PropertyTypeHouse     = "house"
	PropertyTypeApartment = "apartment"
	PropertyTypeCondo     = "condo"
	PropertyTypeTownhouse = "townhouse"
	PropertyTypeLand      = "land"
	PropertyTypeOther     = "other"
)

const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
)

type Property struct {
	ID            int64      `json:"id"`
	PostedBy      int64      `json:"posted_by"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	ZipCode       string     `json:"zip_code"`
	Country       string     `json:"country"`
	Price         float64    `json:"price"`
	PropertyType  string     `json:"property_type"`
	Status        string     `json:"status"`
	Bedrooms      *int       `json:"bedrooms,omitempty"`
	Bathrooms     *float64   `json:"bathrooms,omitempty"`
	AreaSqft      *float64   `json:"area_sqft,omitempty"`
	LotSizeSqft   *float64   `json:"lot_size_sqft,omitempty"`
	ParkingSpaces *int       `json:"parking_spaces,omitempty"`
	HeatingType   string     `json:"heating_type,omitempty"`
	CoolingType   string     `json:"cooling_type,omitempty"`
	Amenities     []string   `json:"amenities"`
	YearBuilt     *int       `json:"year_built,omitempty"`
	ImageURLs     []string   `json:"image_urls,omitempty"`
	IsFeatured    bool       `json:"is_featured"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo,
		PropertyTypeTownhouse, PropertyTypeLand, PropertyTypeOther:
		return true
	}
	return false
}

func ValidPropertyStatus(s string) bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}
