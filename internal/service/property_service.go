package service

import (
	"context"
	"strings"

	"go-property-listing/internal/model"
	"go-property-listing/internal/repository"
	"go-property-listing/pkg/apierror"
)

type PropertyService struct {
	properties *repository.PropertyRepository
}

func NewPropertyService(properties *repository.PropertyRepository) *PropertyService {
	return &PropertyService{properties: properties}
}

// Create stores a new listing. posted_by always comes from the
// authenticated caller, never from the request body.
func (s *PropertyService) Create(ctx context.Context, postedBy int64, req model.CreatePropertyRequest) (model.Property, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Property{}, apierror.BadRequest("title is required", "title")
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.State) == "" || strings.TrimSpace(req.ZipCode) == "" ||
		strings.TrimSpace(req.Country) == "" {
		return model.Property{}, apierror.BadRequest("address, city, state, zip_code and country are required", "")
	}
	if req.Price <= 0 {
		return model.Property{}, apierror.BadRequest("price must be positive", "price")
	}
	if !model.ValidPropertyType(req.PropertyType) {
		return model.Property{}, apierror.BadRequest("invalid property_type", req.PropertyType)
	}

	status := req.Status
	if status == "" {
		status = model.PropertyStatusAvailable
	}
	if !model.ValidPropertyStatus(status) {
		return model.Property{}, apierror.BadRequest("invalid status", status)
	}

	amenities := make([]string, 0, len(req.Amenities))
	for _, amenity := range req.Amenities {
		if trimmed := strings.TrimSpace(amenity); trimmed != "" {
			amenities = append(amenities, strings.ToLower(trimmed))
		}
	}

	imageURLs := req.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return s.properties.Create(ctx, model.Property{
		PostedBy:      postedBy,
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		State:         strings.TrimSpace(req.State),
		ZipCode:       strings.TrimSpace(req.ZipCode),
		Country:       strings.TrimSpace(req.Country),
		Price:         req.Price,
		PropertyType:  req.PropertyType,
		Status:        status,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		AreaSqft:      req.AreaSqft,
		LotSizeSqft:   req.LotSizeSqft,
		ParkingSpaces: req.ParkingSpaces,
		HeatingType:   strings.TrimSpace(req.HeatingType),
		CoolingType:   strings.TrimSpace(req.CoolingType),
		Amenities:     amenities,
		YearBuilt:     req.YearBuilt,
		ImageURLs:     imageURLs,
	})
}

func (s *PropertyService) Get(ctx context.Context, id int64) (model.Property, error) {
	return s.properties.FindByID(ctx, id)
}

func (s *PropertyService) ListByUser(ctx context.Context, userID int64) ([]model.Property, error) {
	return s.properties.ListByUser(ctx, userID)
}

func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	return s.properties.List(ctx)
}
