package service

import (
	"context"
	"math"
	"strings"

	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/models"
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, prod *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductInput is the full mutable field set. A nil Price means the field
// was absent from the request.
type ProductInput struct {
	ID         string
	ProName    string
	Price      *float64
	Discount   *float64
	CategoryID string
	BrandID    *string
}

type ProductService struct {
	Repo   ProductStore
	Events *events.Emitter
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, fromStore(err, nil)
	}
	return items, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	prod, err := buildProduct(in)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, fromStore(err, ErrInvalidReference)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "product_created", created.ID, created.ProName)
	return created, nil
}

// UpdateProduct is a full replace: omitted discount and brand are cleared.
func (s *ProductService) UpdateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, invalid("Missing required fields")
	}
	prod, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	if prod.ID, err = parseID(in.ID); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateProduct(ctx, prod)
	if err != nil {
		return nil, fromStore(err, ErrInvalidReference)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "product_updated", updated.ID, updated.ProName)
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, rawID string) error {
	if strings.TrimSpace(rawID) == "" {
		return invalid("Missing product ID")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "product_deleted", id, "")
	return nil
}

func buildProduct(in ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.ProName)
	categoryID := strings.TrimSpace(in.CategoryID)
	if name == "" || in.Price == nil || categoryID == "" {
		return nil, invalid("Missing required fields")
	}

	price := *in.Price
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, invalid("Price must be a non-negative number")
	}
	if d := in.Discount; d != nil {
		if math.IsNaN(*d) || math.IsInf(*d, 0) || *d < 0 || *d > 100 {
			return nil, invalid("Discount must be between 0 and 100")
		}
	}

	var discount *float64
	if in.Discount != nil {
		v := *in.Discount
		discount = &v
	}

	return &models.Product{
		ProName:    name,
		Price:      price,
		Discount:   discount,
		CategoryID: categoryID,
		BrandID:    optional(in.BrandID),
	}, nil
}
