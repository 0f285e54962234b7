package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/metrics"
	"github.com/A-Basit02/Disaster-Management-App/pkg/utils"
)

// InterfaceAuthService registers users, logs them in and resolves tokens
type InterfaceAuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error)
}

// RegisterInput is the data needed to create an account
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Address     *string
	PhoneNumber *string
	RoleID      *uint
}

// AuthResult is returned by register and login
type AuthResult struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// AuthService implements InterfaceAuthService over gorm
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewAuthService creates the auth service
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 1 Register creates the user and its role association in one transaction
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, code.Newf(code.ErrValidation, "Name, email, and password are required")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, code.Wrap(code.ErrUnknown, err)
	}

	user := models.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    hash,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return code.New(code.ErrUserAlreadyExist)
		}

		role, err := resolveRole(tx, in.RoleID)
		if err != nil {
			return err
		}
		user.Roles = []models.Role{role}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return code.New(code.ErrUserAlreadyExist)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, code.From(err)
	}

	metrics.Event(metrics.EventUserRegistered)
	return s.issue(&user)
}

// resolveRole picks the explicit role, else Citizen, else the lowest id role
func resolveRole(tx *gorm.DB, roleID *uint) (models.Role, error) {
	var role models.Role

	if roleID != nil && *roleID != 0 {
		err := tx.Take(&role, *roleID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return role, code.Newf(code.ErrRoleNotFound, "Role with ID %d does not exist", *roleID)
		}
		return role, err
	}

	err := tx.Where("role_name = ?", models.RoleCitizen).Take(&role).Error
	if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return role, err
	}

	err = tx.Order("id").Take(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return role, code.New(code.ErrRolesMissing)
	}
	return role, err
}

// 2 Login checks the credentials. Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, code.Newf(code.ErrValidation, "Email and password are required")
	}

	var user models.User
	err := s.DB.WithContext(ctx).Preload("Roles").Where("email = ?", email).Take(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.From(err)
	}

	// an unknown email still pays for a bcrypt comparison
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, code.New(code.ErrUserPasswordIncorrect)
	}
	return s.issue(&user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.JWT.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, code.Wrap(code.ErrUnknown, err)
	}
	return &AuthResult{Token: token, User: user.Profile()}, nil
}

// 3 Authenticate resolves a bearer token to a live user with roles
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return nil, code.Wrap(code.ErrTokenInvalid, err)
	}

	var user models.User
	err = s.DB.WithContext(ctx).Preload("Roles").Take(&user, claims.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrTokenInvalid)
	}
	if err != nil {
		return nil, code.From(err)
	}
	return &user, nil
}

// 4 GetProfile returns the user with role names
func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Preload("Roles").Take(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrUserNotFound)
	}
	if err != nil {
		return nil, code.From(err)
	}
	profile := user.Profile()
	return &profile, nil
}
