package service

import (
	"context"
	"strings"

	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/models"
)

type BrandStore interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error)
	UpdateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

type BrandInput struct {
	ID   string
	Name string
	Logo *string
}

type BrandService struct {
	Repo   BrandStore
	Events *events.Emitter
}

func (s *BrandService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	items, err := s.Repo.ListBrands(ctx)
	if err != nil {
		return nil, fromStore(err, nil)
	}
	return items, nil
}

func (s *BrandService) CreateBrand(ctx context.Context, in BrandInput) (*models.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("Name is required")
	}

	brand, err := s.Repo.CreateBrand(ctx, &models.Brand{Name: name, Logo: optional(in.Logo)})
	if err != nil {
		return nil, fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "brand_created", brand.ID, brand.Name)
	return brand, nil
}

// UpdateBrand replaces name and logo; an omitted logo is cleared.
func (s *BrandService) UpdateBrand(ctx context.Context, in BrandInput) (*models.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if strings.TrimSpace(in.ID) == "" || name == "" {
		return nil, invalid("ID and name are required")
	}
	id, err := parseID(in.ID)
	if err != nil {
		return nil, err
	}

	brand, err := s.Repo.UpdateBrand(ctx, &models.Brand{ID: id, Name: name, Logo: optional(in.Logo)})
	if err != nil {
		return nil, fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "brand_updated", brand.ID, brand.Name)
	return brand, nil
}

// DeleteBrand removes the brand; products that referenced it keep existing
// with no brand.
func (s *BrandService) DeleteBrand(ctx context.Context, rawID string) error {
	if strings.TrimSpace(rawID) == "" {
		return invalid("ID is required")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteBrand(ctx, id); err != nil {
		return fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "brand_deleted", id, "")
	return nil
}
