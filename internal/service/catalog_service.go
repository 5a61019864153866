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

// CatalogRequest covers the four lookup tables; Shelve ignores Description.
type CatalogRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Status      model.Status `json:"status" validate:"omitempty,oneof=active deactive"`
}

// CatalogService bundles the lookup-table CRUD behind one interface so the
// handlers stay thin.
type CatalogService interface {
	CreateBrand(req *CatalogRequest, actor Actor) (*model.Brand, error)
	GetAllBrands() ([]model.Brand, error)
	UpdateBrand(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Brand, error)
	DeleteBrand(id uuid.UUID) error

	CreateCategory(req *CatalogRequest, actor Actor) (*model.Category, error)
	GetAllCategories() ([]model.Category, error)
	UpdateCategory(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error

	CreateGeneric(req *CatalogRequest, actor Actor) (*model.Generic, error)
	GetAllGenerics() ([]model.Generic, error)
	UpdateGeneric(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Generic, error)
	DeleteGeneric(id uuid.UUID) error

	CreateShelve(req *CatalogRequest, actor Actor) (*model.Shelve, error)
	GetAllShelves() ([]model.Shelve, error)
	UpdateShelve(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Shelve, error)
	DeleteShelve(id uuid.UUID) error
}

type catalogService struct {
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	genericRepo  repository.GenericRepository
	shelveRepo   repository.ShelveRepository
}

func NewCatalogService(
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	genericRepo repository.GenericRepository,
	shelveRepo repository.ShelveRepository,
) CatalogService {
	return &catalogService{
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		genericRepo:  genericRepo,
		shelveRepo:   shelveRepo,
	}
}

func validateCatalog(req *CatalogRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	return nil
}

func statusOrActive(status model.Status) model.Status {
	if status == "" {
		return model.StatusActive
	}
	return status
}

func (s *catalogService) CreateBrand(req *CatalogRequest, actor Actor) (*model.Brand, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	brand := &model.Brand{Name: req.Name, Description: req.Description, Status: statusOrActive(req.Status)}
	brand.CreatedBy = actor.Name
	brand.UpdatedBy = actor.Name
	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) GetAllBrands() ([]model.Brand, error) {
	return s.brandRepo.FindAll()
}

func (s *catalogService) UpdateBrand(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Brand, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	brand, err := s.brandRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Brand not found")
	}
	if err != nil {
		return nil, err
	}
	brand.Name = req.Name
	brand.Description = req.Description
	brand.Status = statusOrActive(req.Status)
	brand.UpdatedBy = actor.Name
	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) DeleteBrand(id uuid.UUID) error {
	if _, err := s.brandRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Brand not found")
	} else if err != nil {
		return err
	}
	return s.brandRepo.Delete(id)
}

func (s *catalogService) CreateCategory(req *CatalogRequest, actor Actor) (*model.Category, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	category := &model.Category{Name: req.Name, Description: req.Description, Status: statusOrActive(req.Status)}
	category.CreatedBy = actor.Name
	category.UpdatedBy = actor.Name
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetAllCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Category, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Category not found")
	}
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Description = req.Description
	category.Status = statusOrActive(req.Status)
	category.UpdatedBy = actor.Name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Category not found")
	} else if err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) CreateGeneric(req *CatalogRequest, actor Actor) (*model.Generic, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	generic := &model.Generic{Name: req.Name, Description: req.Description, Status: statusOrActive(req.Status)}
	generic.CreatedBy = actor.Name
	generic.UpdatedBy = actor.Name
	if err := s.genericRepo.Create(generic); err != nil {
		return nil, err
	}
	return generic, nil
}

func (s *catalogService) GetAllGenerics() ([]model.Generic, error) {
	return s.genericRepo.FindAll()
}

func (s *catalogService) UpdateGeneric(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Generic, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	generic, err := s.genericRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Generic not found")
	}
	if err != nil {
		return nil, err
	}
	generic.Name = req.Name
	generic.Description = req.Description
	generic.Status = statusOrActive(req.Status)
	generic.UpdatedBy = actor.Name
	if err := s.genericRepo.Update(generic); err != nil {
		return nil, err
	}
	return generic, nil
}

func (s *catalogService) DeleteGeneric(id uuid.UUID) error {
	if _, err := s.genericRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Generic not found")
	} else if err != nil {
		return err
	}
	return s.genericRepo.Delete(id)
}

func (s *catalogService) CreateShelve(req *CatalogRequest, actor Actor) (*model.Shelve, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	shelve := &model.Shelve{Name: req.Name, Status: statusOrActive(req.Status)}
	shelve.CreatedBy = actor.Name
	shelve.UpdatedBy = actor.Name
	if err := s.shelveRepo.Create(shelve); err != nil {
		return nil, err
	}
	return shelve, nil
}

func (s *catalogService) GetAllShelves() ([]model.Shelve, error) {
	return s.shelveRepo.FindAll()
}

func (s *catalogService) UpdateShelve(id uuid.UUID, req *CatalogRequest, actor Actor) (*model.Shelve, error) {
	if err := validateCatalog(req); err != nil {
		return nil, err
	}
	shelve, err := s.shelveRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Shelve not found")
	}
	if err != nil {
		return nil, err
	}
	shelve.Name = req.Name
	shelve.Status = statusOrActive(req.Status)
	shelve.UpdatedBy = actor.Name
	if err := s.shelveRepo.Update(shelve); err != nil {
		return nil, err
	}
	return shelve, nil
}

func (s *catalogService) DeleteShelve(id uuid.UUID) error {
	if _, err := s.shelveRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Shelve not found")
	} else if err != nil {
		return err
	}
	return s.shelveRepo.Delete(id)
}
