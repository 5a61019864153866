package service

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/jwt"
	"go-pharma-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	User         model.UserResponse `json:"user"`
}

type AuthService interface {
	Login(req *LoginRequest) (*LoginResponse, error)
	Refresh(refreshToken string) (*LoginResponse, error)
	ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error
	ResetPassword(targetID uuid.UUID, req *ResetPasswordRequest, actor Actor) error
	GetProfile(userID uuid.UUID) (*model.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) issueTokens(user *model.User) (*LoginResponse, error) {
	codes := user.GetPermissionCodes()

	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Email, user.Name, string(user.Role), codes)
	if err != nil {
		return nil, err
	}
	refreshToken, err := jwt.GenerateRefreshToken(user.ID, user.Email, user.Name, string(user.Role), codes)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.ToResponse(),
	}, nil
}

// Login authenticates by email and password. Deactivated users can not log
// in; the same message covers unknown email and wrong password.
func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if user.Status != model.StatusActive {
		return nil, apperror.Unauthorized("Account is deactivated")
	}
	if !user.CheckPassword(req.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	return s.issueTokens(user)
}

// Refresh mints a fresh token pair from a valid refresh token. The user is
// re-read so revoked permissions or deactivation take effect immediately.
func (s *authService) Refresh(refreshToken string) (*LoginResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Unauthorized("User no longer exists")
	}
	if err != nil {
		return nil, err
	}
	if user.Status != model.StatusActive {
		return nil, apperror.Unauthorized("Account is deactivated")
	}

	return s.issueTokens(user)
}

func (s *authService) ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("User not found")
	}
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.OldPassword) {
		return apperror.Unauthorized("Old password is incorrect")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.ID, user.Password)
}

// ResetPassword sets a user's password without the old one. An admin may not
// reset the password of another admin or of a super admin; only super admins
// can do that.
func (s *authService) ResetPassword(targetID uuid.UUID, req *ResetPasswordRequest, actor Actor) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	target, err := s.userRepo.FindByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("User not found")
	}
	if err != nil {
		return err
	}

	if err := guardAdminTarget(actor.Role, target.Role); err != nil {
		return err
	}

	if err := target.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(target.ID, target.Password)
}

func (s *authService) GetProfile(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// guardAdminTarget enforces the management hierarchy: admins can not act on
// admin or super-admin accounts.
func guardAdminTarget(actorRole, targetRole model.Role) error {
	if actorRole == model.RoleSuperAdmin {
		return nil
	}
	if actorRole == model.RoleAdmin &&
		(targetRole == model.RoleAdmin || targetRole == model.RoleSuperAdmin) {
		return apperror.Unauthorized("You are not allowed to manage this user")
	}
	return nil
}
