package model

import "time"

const (
	UserTypeTenant   = "tenant"
	UserTypeLandlord = "landlord"
	UserTypeAgent    = "agent"
	UserTypeAdmin    = "admin"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	UserType     string     `json:"user_type"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResult struct {
	TokenPair
	SessionID string `json:"session_id"`
	User      User   `json:"user"`
}

func ValidUserType(t string) bool {
	switch t {
	case UserTypeTenant, UserTypeLandlord, UserTypeAgent, UserTypeAdmin:
		return true
	}
	return false
}

func ValidRole(r string) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
