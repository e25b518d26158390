// Package auth handles admin-surface sign-in and account management.
package auth

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/config"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/jwt"
)

// TokenTTL is how long a sign-in token stays valid.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	errDuplicateEmail     = errors.New("an account with this email already exists")
	errInvalidRole        = errors.New("unknown role")
	errLastSuperAdmin     = errors.New("cannot remove the last super admin")
)

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// EnsureDefaultAdmin seeds the chaplain super_admin account when the
// users table is empty. Skipped when no seed password is configured so
// an unset production config never creates a known credential.
func (s *Service) EnsureDefaultAdmin(seed config.AdminSeed) error {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if seed.Password == "" {
		s.logger.Warn("users table is empty and no admin seed password is configured, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.UserModel{
		Email:    strings.ToLower(seed.Email),
		Name:     seed.Name,
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}
	s.logger.Info("seeded default admin account", zap.String("email", user.Email))
	return nil
}

// Login verifies credentials and issues a token. The ip is recorded as
// the account's last sign-in address.
func (s *Service) Login(email, password, ip string) (string, *models.UserModel, error) {
	var user models.UserModel
	err := s.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.Sign(user.ID, user.Role, TokenTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	}).Error; err != nil {
		s.logger.Warn("failed to record last login", zap.Error(err))
	}
	user.LastLoginTime = &now
	user.LastLoginIP = ip
	return token, &user, nil
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) ListUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	err := s.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

// CountUsers is used by the admin summary.
func (s *Service) CountUsers() (int64, error) {
	var n int64
	err := s.db.Model(&models.UserModel{}).Count(&n).Error
	return n, err
}

func (s *Service) CreateUser(dto *CreateUserDTO) (*models.UserModel, error) {
	if !models.ValidRole(dto.Role) {
		return nil, errInvalidRole
	}
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var existing models.UserModel
	err := s.db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, errDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.UserModel{
		Email:       email,
		Name:        dto.Name,
		Password:    string(hash),
		Role:        dto.Role,
		Association: dto.Association,
	}
	return &user, s.db.Create(&user).Error
}

func (s *Service) UpdateUser(id string, dto *UpdateUserDTO) (*models.UserModel, error) {
	user, err := s.GetByID(id)
	if err != nil || user == nil {
		return user, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Association != nil {
		updates["association"] = *dto.Association
	}
	if dto.Role != nil {
		if !models.ValidRole(*dto.Role) {
			return nil, errInvalidRole
		}
		if user.Role == models.RoleSuperAdmin && *dto.Role != models.RoleSuperAdmin {
			if err := s.requireAnotherSuperAdmin(user.ID); err != nil {
				return nil, err
			}
		}
		updates["role"] = *dto.Role
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return user, nil
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) DeleteUser(id string) (bool, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if user.Role == models.RoleSuperAdmin {
		if err := s.requireAnotherSuperAdmin(user.ID); err != nil {
			return false, err
		}
	}
	res := s.db.Delete(&models.UserModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Service) requireAnotherSuperAdmin(excludeID string) error {
	var n int64
	err := s.db.Model(&models.UserModel{}).
		Where("role = ? AND id <> ?", models.RoleSuperAdmin, excludeID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return errLastSuperAdmin
	}
	return nil
}
