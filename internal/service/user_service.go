package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"go-property-listing/internal/model"
	"go-property-listing/internal/repository"
	"go-property-listing/pkg/apierror"
)

// bcrypt truncates anything longer than 72 bytes, so longer passwords
// are rejected up front.
const maxPasswordBytes = 72

const minPasswordBytes = 8

const bcryptCost = 12

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, apierror.BadRequest("a valid email is required", "email")
	}
	if username == "" {
		return model.User{}, apierror.BadRequest("username is required", "username")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return model.User{}, apierror.BadRequest("first_name and last_name are required", "")
	}
	if !model.ValidUserType(req.UserType) {
		return model.User{}, apierror.BadRequest("invalid user_type", req.UserType)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return model.User{}, apierror.BadRequest("invalid role", role)
	}

	if err := validatePassword(req.Password); err != nil {
		return model.User{}, err
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if emailTaken {
		return model.User{}, model.ErrEmailTaken
	}

	usernameTaken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if usernameTaken {
		return model.User{}, model.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		UserType:     req.UserType,
		Role:         role,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Bio:          strings.TrimSpace(req.Bio),
		AvatarURL:    strings.TrimSpace(req.AvatarURL),
	})
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, skip int, limit int) (model.UserList, error) {
	if skip < 0 || limit <= 0 {
		return model.UserList{}, apierror.BadRequest("invalid pagination parameters", "")
	}

	users, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return model.UserList{}, err
	}

	return model.UserList{Users: users, Total: len(users)}, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			return model.User{}, apierror.BadRequest("a valid email is required", "email")
		}
		if !strings.EqualFold(email, user.Email) {
			taken, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return model.User{}, err
			}
			if taken {
				return model.User{}, model.ErrEmailTaken
			}
		}
		user.Email = email
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return model.User{}, apierror.BadRequest("username cannot be empty", "username")
		}
		if !strings.EqualFold(username, user.Username) {
			taken, err := s.users.ExistsByUsername(ctx, username)
			if err != nil {
				return model.User{}, err
			}
			if taken {
				return model.User{}, model.ErrUsernameTaken
			}
		}
		user.Username = username
	}

	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return model.User{}, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return model.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if req.UserType != nil {
		if !model.ValidUserType(*req.UserType) {
			return model.User{}, apierror.BadRequest("invalid user_type", *req.UserType)
		}
		user.UserType = *req.UserType
	}
	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return model.User{}, apierror.BadRequest("invalid role", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Bio != nil {
		user.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return model.User{}, err
	}

	return s.users.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func validatePassword(password string) error {
	if len(password) < minPasswordBytes {
		return apierror.BadRequest("password must be at least 8 characters", "password")
	}
	if len(password) > maxPasswordBytes {
		return apierror.BadRequest("password must be at most 72 bytes", "password")
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return apierror.BadRequest("password must contain an uppercase letter", "password")
	}
	if !hasDigit {
		return apierror.BadRequest("password must contain a number", "password")
	}
	if !hasSpecial {
		return apierror.BadRequest("password must contain a special character", "password")
	}

	return nil
}
