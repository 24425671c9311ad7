package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes catalog reads plus supplier and admin management rules.
type Service interface {
	ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, supplierID uuid.UUID, input CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, supplierID, productID uuid.UUID, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, supplierID, productID uuid.UUID) error

	ListDeals(ctx context.Context) ([]models.Deal, error)
	CreateDeal(ctx context.Context, supplierID uuid.UUID, input CreateDealInput) (*models.Deal, error)
	DeleteDeal(ctx context.Context, supplierID, dealID uuid.UUID) error

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	SetSupplierActive(ctx context.Context, supplierID uuid.UUID, active bool) error
}

type service struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error) {
	list, err := s.repo.ListProducts(ctx, filters, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	if list.Items == nil {
		list.Items = []models.Product{}
	}
	return list, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, supplierID uuid.UUID, input CreateProductInput) (*models.Product, error) {
	if supplierID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "supplier context missing")
	}
	if err := validatePricing(input.Price, input.DiscountPrice, input.IsOnSale); err != nil {
		return nil, err
	}

	product, err := s.repo.CreateProduct(ctx, &models.Product{
		SupplierID:    supplierID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		IsOnSale:      input.IsOnSale,
		ImageURL:      input.ImageURL,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, supplierID, productID uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, supplierID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = input.DiscountPrice
	}
	if input.IsOnSale != nil {
		product.IsOnSale = *input.IsOnSale
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}

	if err := validatePricing(product.Price, product.DiscountPrice, product.IsOnSale); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return updated, nil
}

func (s *service) DeleteProduct(ctx context.Context, supplierID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, supplierID, productID); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) ListDeals(ctx context.Context) ([]models.Deal, error) {
	deals, err := s.repo.ListDeals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list deals")
	}
	if deals == nil {
		deals = []models.Deal{}
	}
	return deals, nil
}

func (s *service) CreateDeal(ctx context.Context, supplierID uuid.UUID, input CreateDealInput) (*models.Deal, error) {
	if supplierID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "supplier context missing")
	}
	if input.DiscountPercent != nil {
		pct := *input.DiscountPercent
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 0 and 100")
		}
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "deal cannot end before it starts")
	}

	deal, err := s.repo.CreateDeal(ctx, &models.Deal{
		SupplierID:      &supplierID,
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		DiscountPercent: input.DiscountPercent,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create deal")
	}
	return deal, nil
}

func (s *service) DeleteDeal(ctx context.Context, supplierID, dealID uuid.UUID) error {
	if supplierID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeForbidden, "supplier context missing")
	}
	if dealID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "deal id required")
	}
	if _, err := s.repo.FindDealOwned(ctx, dealID, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "deal not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load deal")
	}
	if err := s.repo.DeleteDeal(ctx, dealID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete deal")
	}
	return nil
}

func (s *service) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list suppliers")
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers, nil
}

func (s *service) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier id required")
	}
	supplier, err := s.repo.FindSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load supplier")
	}
	if !supplier.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}
	return supplier, nil
}

func (s *service) SetSupplierActive(ctx context.Context, supplierID uuid.UUID, active bool) error {
	if supplierID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "supplier id required")
	}
	if err := s.repo.SetSupplierActive(ctx, supplierID, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update supplier")
	}
	return nil
}

func (s *service) ownedProduct(ctx context.Context, supplierID, productID uuid.UUID) (*models.Product, error) {
	if supplierID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "supplier context missing")
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindProductOwned(ctx, productID, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func validatePricing(price decimal.Decimal, discount *decimal.Decimal, onSale bool) error {
	if price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if discount != nil && discount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount price cannot be negative")
	}
	if onSale && discount == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "sale listings require a discount price")
	}
	return nil
}
