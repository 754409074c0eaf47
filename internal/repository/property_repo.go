package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-property-listing/internal/model"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

const propertyColumns = `id, posted_by, title, COALESCE(description, ''),
	address, city, state, zip_code, country, price, property_type, status,
	bedrooms, bathrooms, area_sqft, lot_size_sqft, parking_spaces,
	COALESCE(heating_type, ''), COALESCE(cooling_type, ''),
	amenities, year_built, image_urls, is_featured, created_at, updated_at`

func scanProperty(row pgx.Row) (model.Property, error) {
	var p model.Property
	err := row.Scan(&p.ID, &p.PostedBy, &p.Title, &p.Description,
		&p.Address, &p.City, &p.State, &p.ZipCode, &p.Country, &p.Price, &p.PropertyType, &p.Status,
		&p.Bedrooms, &p.Bathrooms, &p.AreaSqft, &p.LotSizeSqft, &p.ParkingSpaces,
		&p.HeatingType, &p.CoolingType,
		&p.Amenities, &p.YearBuilt, &p.ImageURLs, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PropertyRepository) Create(ctx context.Context, p model.Property) (model.Property, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO properties (posted_by, title, description, address, city, state,
		        zip_code, country, price, property_type, status, bedrooms, bathrooms,
		        area_sqft, lot_size_sqft, parking_spaces, heating_type, cooling_type,
		        amenities, year_built, image_urls, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		         $14, $15, $16, NULLIF($17, ''), NULLIF($18, ''), $19, $20, $21, $22)
		 RETURNING id, created_at`,
		p.PostedBy, p.Title, p.Description, p.Address, p.City, p.State,
		p.ZipCode, p.Country, p.Price, p.PropertyType, p.Status, p.Bedrooms, p.Bathrooms,
		p.AreaSqft, p.LotSizeSqft, p.ParkingSpaces, p.HeatingType, p.CoolingType,
		p.Amenities, p.YearBuilt, p.ImageURLs, time.Now().UTC()).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return model.Property{}, fmt.Errorf("create property: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (model.Property, error) {
	p, err := scanProperty(r.pool.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Property{}, model.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("find property by id: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) ListByUser(ctx context.Context, userID int64) ([]model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties
		 WHERE posted_by = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties by user: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *PropertyRepository) List(ctx context.Context) ([]model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

func collectProperties(rows pgx.Rows) ([]model.Property, error) {
	properties := make([]model.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
