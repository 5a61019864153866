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

type SupplierRequest struct {
	Name      string       `json:"name" validate:"required"`
	Age       int          `json:"age"`
	Gender    model.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	ContactNo string       `json:"contact_no"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Address   string       `json:"address"`
	BrandID   *uuid.UUID   `json:"brand_id"`
	Status    model.Status `json:"status" validate:"omitempty,oneof=active deactive"`
}

type SupplierService interface {
	CreateSupplier(req *SupplierRequest, actor Actor) (*model.Supplier, error)
	GetAllSuppliers(search string) ([]model.Supplier, error)
	GetSupplierByID(id uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *SupplierRequest, actor Actor) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID, actor Actor) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	brandRepo    repository.BrandRepository
	sequenceRepo repository.SequenceRepository
	db           *gorm.DB
}

func NewSupplierService(supplierRepo repository.SupplierRepository, brandRepo repository.BrandRepository, sequenceRepo repository.SequenceRepository, db *gorm.DB) SupplierService {
	return &supplierService{supplierRepo: supplierRepo, brandRepo: brandRepo, sequenceRepo: sequenceRepo, db: db}
}

func (s *supplierService) resolveBrand(brandID *uuid.UUID) error {
	if brandID == nil {
		return nil
	}
	if _, err := s.brandRepo.FindByID(*brandID); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Brand not found")
	} else if err != nil {
		return err
	}
	return nil
}

func (s *supplierService) CreateSupplier(req *SupplierRequest, actor Actor) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if err := s.resolveBrand(req.BrandID); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		ContactNo: req.ContactNo,
		Email:     req.Email,
		Address:   req.Address,
		BrandID:   req.BrandID,
		Status:    model.StatusActive,
	}
	if req.Status != "" {
		supplier.Status = req.Status
	}
	supplier.CreatedBy = actor.Name
	supplier.UpdatedBy = actor.Name

	err := s.db.Transaction(func(tx *gorm.DB) error {
		supid, err := s.sequenceRepo.Next(tx, repository.SeqSupplier)
		if err != nil {
			return err
		}
		supplier.SUPID = supid
		return s.supplierRepo.Create(tx, supplier)
	})
	if err != nil {
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) GetAllSuppliers(search string) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(search)
}

func (s *supplierService) GetSupplierByID(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Supplier not found")
	}
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) UpdateSupplier(id uuid.UUID, req *SupplierRequest, actor Actor) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if err := s.resolveBrand(req.BrandID); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Supplier not found")
	}
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Age = req.Age
	supplier.Gender = req.Gender
	supplier.ContactNo = req.ContactNo
	supplier.Email = req.Email
	supplier.Address = req.Address
	supplier.BrandID = req.BrandID
	if req.Status != "" {
		supplier.Status = req.Status
	}
	supplier.UpdatedBy = actor.Name

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(id uuid.UUID, actor Actor) error {
	if _, err := s.supplierRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Supplier not found")
	} else if err != nil {
		return err
	}
	return s.supplierRepo.Delete(id, actor.Name)
}
