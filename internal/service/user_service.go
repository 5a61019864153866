package service

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=6"`
	Name        string     `json:"name" validate:"required"`
	PhoneNumber string     `json:"phone_number"`
	Address     string     `json:"address"`
	Role        model.Role `json:"role" validate:"required"`
	Permissions []string   `json:"permissions"`
}

type UpdateUserRequest struct {
	Name        string       `json:"name" validate:"required"`
	PhoneNumber string       `json:"phone_number"`
	Address     string       `json:"address"`
	Role        model.Role   `json:"role" validate:"required"`
	Status      model.Status `json:"status" validate:"omitempty,oneof=active deactive"`
}

type PermissionRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error)
	DeleteUser(id uuid.UUID, actor Actor) error
	AssignPermissions(id uuid.UUID, codes []string, actor Actor) (*model.UserResponse, error)

	GetAllPermissions() ([]model.Permission, error)
	CreatePermission(req *PermissionRequest, actor Actor) (*model.Permission, error)
	DeletePermission(id uint) error
}

type userService struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
}

func NewUserService(userRepo repository.UserRepository, permissionRepo repository.PermissionRepository) UserService {
	return &userService{userRepo: userRepo, permissionRepo: permissionRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if !model.ValidRole(req.Role) {
		return nil, apperror.InvalidInput("Invalid role")
	}
	// admins can create anything below admin
	if err := guardAdminTarget(actor.Role, req.Role); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing != nil {
		return nil, apperror.Conflict("Email already registered")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Role:        req.Role,
		Status:      model.StatusActive,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	user.CreatedBy = actor.Name
	user.UpdatedBy = actor.Name

	if len(req.Permissions) > 0 {
		perms, err := s.permissionRepo.FindByCodes(req.Permissions)
		if err != nil {
			return nil, err
		}
		if len(perms) != len(req.Permissions) {
			return nil, apperror.InvalidInput("Unknown permission code")
		}
		user.Permissions = perms
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if !model.ValidRole(req.Role) {
		return nil, apperror.InvalidInput("Invalid role")
	}

	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if err := guardAdminTarget(actor.Role, user.Role); err != nil {
		return nil, err
	}
	if err := guardAdminTarget(actor.Role, req.Role); err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address
	user.Role = req.Role
	if req.Status != "" {
		user.Status = req.Status
	}
	user.UpdatedBy = actor.Name

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) DeleteUser(id uuid.UUID, actor Actor) error {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("User not found")
	}
	if err != nil {
		return err
	}
	if user.ID.String() == actor.ID {
		return apperror.InvalidInput("You can not delete your own account")
	}
	if err := guardAdminTarget(actor.Role, user.Role); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}

// AssignPermissions replaces the user's permission set with the given codes
func (s *userService) AssignPermissions(id uuid.UUID, codes []string, actor Actor) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	if err := guardAdminTarget(actor.Role, user.Role); err != nil {
		return nil, err
	}

	perms, err := s.permissionRepo.FindByCodes(codes)
	if err != nil {
		return nil, err
	}
	if len(perms) != len(codes) {
		return nil, apperror.InvalidInput("Unknown permission code")
	}

	if err := s.userRepo.UpdatePermissions(user.ID, perms); err != nil {
		return nil, err
	}

	user.Permissions = perms
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) GetAllPermissions() ([]model.Permission, error) {
	return s.permissionRepo.FindAll()
}

func (s *userService) CreatePermission(req *PermissionRequest, actor Actor) (*model.Permission, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if existing, err := s.permissionRepo.FindByCode(req.Code); err == nil && existing != nil {
		return nil, apperror.Conflict("Permission code already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permission := &model.Permission{Code: req.Code, Name: req.Name}
	if err := s.permissionRepo.Create(permission); err != nil {
		return nil, err
	}
	return permission, nil
}

func (s *userService) DeletePermission(id uint) error {
	return s.permissionRepo.Delete(id)
}
