package repository

import (
	"go-pharma-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog lookups (brand, category, generic, shelve) share the same tiny CRUD
// surface, so each repo is a thin wrapper over the same query shapes.

type BrandRepository interface {
	Create(brand *model.Brand) error
	FindAll() ([]model.Brand, error)
	FindByID(id uuid.UUID) (*model.Brand, error)
	Update(brand *model.Brand) error
	Delete(id uuid.UUID) error
}

type brandRepo struct{ db *gorm.DB }

func NewBrandRepo(db *gorm.DB) BrandRepository { return &brandRepo{db} }

func (r *brandRepo) Create(brand *model.Brand) error { return r.db.Create(brand).Error }

func (r *brandRepo) FindAll() ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *brandRepo) FindByID(id uuid.UUID) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepo) Update(brand *model.Brand) error { return r.db.Save(brand).Error }

func (r *brandRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Brand{}, "id = ?", id).Error
}

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uuid.UUID) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepository { return &categoryRepo{db} }

func (r *categoryRepo) Create(category *model.Category) error { return r.db.Create(category).Error }

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error { return r.db.Save(category).Error }

func (r *categoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "id = ?", id).Error
}

type GenericRepository interface {
	Create(generic *model.Generic) error
	FindAll() ([]model.Generic, error)
	FindByID(id uuid.UUID) (*model.Generic, error)
	Update(generic *model.Generic) error
	Delete(id uuid.UUID) error
}

type genericRepo struct{ db *gorm.DB }

func NewGenericRepo(db *gorm.DB) GenericRepository { return &genericRepo{db} }

func (r *genericRepo) Create(generic *model.Generic) error { return r.db.Create(generic).Error }

func (r *genericRepo) FindAll() ([]model.Generic, error) {
	var generics []model.Generic
	err := r.db.Order("name ASC").Find(&generics).Error
	return generics, err
}

func (r *genericRepo) FindByID(id uuid.UUID) (*model.Generic, error) {
	var generic model.Generic
	if err := r.db.First(&generic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &generic, nil
}

func (r *genericRepo) Update(generic *model.Generic) error { return r.db.Save(generic).Error }

func (r *genericRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Generic{}, "id = ?", id).Error
}

type ShelveRepository interface {
	Create(shelve *model.Shelve) error
	FindAll() ([]model.Shelve, error)
	FindByID(id uuid.UUID) (*model.Shelve, error)
	Update(shelve *model.Shelve) error
	Delete(id uuid.UUID) error
}

type shelveRepo struct{ db *gorm.DB }

func NewShelveRepo(db *gorm.DB) ShelveRepository { return &shelveRepo{db} }

func (r *shelveRepo) Create(shelve *model.Shelve) error { return r.db.Create(shelve).Error }

func (r *shelveRepo) FindAll() ([]model.Shelve, error) {
	var shelves []model.Shelve
	err := r.db.Order("name ASC").Find(&shelves).Error
	return shelves, err
}

func (r *shelveRepo) FindByID(id uuid.UUID) (*model.Shelve, error) {
	var shelve model.Shelve
	if err := r.db.First(&shelve, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shelve, nil
}

func (r *shelveRepo) Update(shelve *model.Shelve) error { return r.db.Save(shelve).Error }

func (r *shelveRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Shelve{}, "id = ?", id).Error
}
