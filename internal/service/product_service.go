package service

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRequest struct {
	Name            string          `json:"name" validate:"required"`
	CategoryID      uuid.UUID       `json:"category_id" validate:"uuid_required"`
	Brand           string          `json:"brand"`
	GenericName     string          `json:"generic_name"`
	ShelveID        uuid.UUID       `json:"shelve_id" validate:"uuid_required"`
	Description     string          `json:"description"`
	Unit            string          `json:"unit" validate:"required"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Status          model.Status    `json:"status" validate:"omitempty,oneof=active deactive"`
}

type ProductService interface {
	CreateProduct(req *ProductRequest, actor Actor) (*model.Product, error)
	GetAllProducts(search string, status model.Status) ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *ProductRequest, actor Actor) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor Actor) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	shelveRepo   repository.ShelveRepository
	stockRepo    repository.StockRepository
	sequenceRepo repository.SequenceRepository
	db           *gorm.DB
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	shelveRepo repository.ShelveRepository,
	stockRepo repository.StockRepository,
	sequenceRepo repository.SequenceRepository,
	db *gorm.DB,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		shelveRepo:   shelveRepo,
		stockRepo:    stockRepo,
		sequenceRepo: sequenceRepo,
		db:           db,
	}
}

// validateProductFields covers the rules shared by create and update:
// discount amount/percent are mutually exclusive and the amount can not
// exceed the selling price.
func validateProductFields(req *ProductRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if req.DiscountAmount.IsPositive() && req.DiscountPercent.IsPositive() {
		return apperror.InvalidInput("Discount amount and discount percentage are not acceptable together")
	}
	if req.DiscountAmount.GreaterThan(req.Price) {
		return apperror.InvalidInput("Discount amount can not be larger than price")
	}
	if req.Price.IsNegative() || req.DiscountAmount.IsNegative() || req.DiscountPercent.IsNegative() {
		return apperror.InvalidInput("Price and discount values can not be negative")
	}
	return nil
}

func (s *productService) CreateProduct(req *ProductRequest, actor Actor) (*model.Product, error) {
	if err := validateProductFields(req); err != nil {
		return nil, err
	}

	if existing, err := s.productRepo.FindByName(req.Name); err == nil && existing != nil {
		return nil, apperror.Conflict("Product name already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Category not found")
	} else if err != nil {
		return nil, err
	}
	if _, err := s.shelveRepo.FindByID(req.ShelveID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Shelve not found")
	} else if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		Brand:           req.Brand,
		GenericName:     req.GenericName,
		ShelveID:        req.ShelveID,
		Description:     req.Description,
		Unit:            req.Unit,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		Status:          model.StatusActive,
	}
	if req.Status != "" {
		product.Status = req.Status
	}
	product.CreatedBy = actor.Name
	product.UpdatedBy = actor.Name

	err := s.db.Transaction(func(tx *gorm.DB) error {
		code, err := s.sequenceRepo.Next(tx, repository.SeqProduct)
		if err != nil {
			return err
		}
		product.Code = code
		return s.productRepo.Create(tx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) GetAllProducts(search string, status model.Status) ([]model.Product, error) {
	return s.productRepo.FindAll(search, status)
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct edits the catalog entry and keeps the denormalized name on
// the stock row in sync when the name changes.
func (s *productService) UpdateProduct(id uuid.UUID, req *ProductRequest, actor Actor) (*model.Product, error) {
	if err := validateProductFields(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}

	if req.Name != product.Name {
		if existing, err := s.productRepo.FindByName(req.Name); err == nil && existing != nil {
			return nil, apperror.Conflict("Product name already exists")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	nameChanged := req.Name != product.Name

	product.Name = req.Name
	product.CategoryID = req.CategoryID
	product.Brand = req.Brand
	product.GenericName = req.GenericName
	product.ShelveID = req.ShelveID
	product.Description = req.Description
	product.Unit = req.Unit
	product.Price = req.Price
	product.DiscountPercent = req.DiscountPercent
	product.DiscountAmount = req.DiscountAmount
	if req.Status != "" {
		product.Status = req.Status
	}
	product.UpdatedBy = actor.Name

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		if nameChanged {
			return s.stockRepo.RenameProduct(tx, product.ID, product.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(id uuid.UUID, actor Actor) error {
	if _, err := s.productRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Product not found")
	} else if err != nil {
		return err
	}
	return s.productRepo.Delete(id, actor.Name)
}
