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

type CustomerRequest struct {
	Name      string       `json:"name" validate:"required"`
	Age       int          `json:"age"`
	Gender    model.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	ContactNo string       `json:"contact_no"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Address   string       `json:"address"`
	Status    model.Status `json:"status" validate:"omitempty,oneof=active deactive"`
}

type CustomerService interface {
	CreateCustomer(req *CustomerRequest, actor Actor) (*model.Customer, error)
	GetAllCustomers(search string) ([]model.Customer, error)
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *CustomerRequest, actor Actor) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID, actor Actor) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	sequenceRepo repository.SequenceRepository
	db           *gorm.DB
}

func NewCustomerService(customerRepo repository.CustomerRepository, sequenceRepo repository.SequenceRepository, db *gorm.DB) CustomerService {
	return &customerService{customerRepo: customerRepo, sequenceRepo: sequenceRepo, db: db}
}

func (s *customerService) CreateCustomer(req *CustomerRequest, actor Actor) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	customer := &model.Customer{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		ContactNo: req.ContactNo,
		Email:     req.Email,
		Address:   req.Address,
		Status:    model.StatusActive,
	}
	if req.Status != "" {
		customer.Status = req.Status
	}
	customer.CreatedBy = actor.Name
	customer.UpdatedBy = actor.Name

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cusid, err := s.sequenceRepo.Next(tx, repository.SeqCustomer)
		if err != nil {
			return err
		}
		customer.CUSID = cusid
		return s.customerRepo.Create(tx, customer)
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *customerService) GetAllCustomers(search string) ([]model.Customer, error) {
	return s.customerRepo.FindAll(search)
}

func (s *customerService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Customer not found")
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(id uuid.UUID, req *CustomerRequest, actor Actor) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	customer, err := s.customerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Customer not found")
	}
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Age = req.Age
	customer.Gender = req.Gender
	customer.ContactNo = req.ContactNo
	customer.Email = req.Email
	customer.Address = req.Address
	if req.Status != "" {
		customer.Status = req.Status
	}
	customer.UpdatedBy = actor.Name

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID, actor Actor) error {
	if _, err := s.customerRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Customer not found")
	} else if err != nil {
		return err
	}
	return s.customerRepo.Delete(id, actor.Name)
}
