package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	SessionID    string `json:"session_id"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	UserType  string `json:"user_type"`
	Role      string `json:"role"`
}

// UpdateUserRequest uses pointers so omitted fields are left untouched.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
	UserType  *string `json:"user_type"`
	Role      *string `json:"role"`
}

type CreatePropertyRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Country       string   `json:"country"`
	Price         float64  `json:"price"`
	PropertyType  string   `json:"property_type"`
	Status        string   `json:"status"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms"`
	AreaSqft      *float64 `json:"area_sqft"`
	LotSizeSqft   *float64 `json:"lot_size_sqft"`
	ParkingSpaces *int     `json:"parking_spaces"`
	HeatingType   string   `json:"heating_type"`
	CoolingType   string   `json:"cooling_type"`
	Amenities     []string `json:"amenities"`
	YearBuilt     *int     `json:"year_built"`
	ImageURLs     []string `json:"image_urls"`
}
