package service

import (
	"context"
	"strings"

	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/models"
)

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryInput struct {
	ID   string
	Name string
}

type CategoryService struct {
	Repo   CategoryStore
	Events *events.Emitter
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	items, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, fromStore(err, nil)
	}
	return items, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("Name is required")
	}

	category, err := s.Repo.CreateCategory(ctx, &models.Category{Name: name})
	if err != nil {
		return nil, fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "category_created", category.ID, category.Name)
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if strings.TrimSpace(in.ID) == "" || name == "" {
		return nil, invalid("Missing id or name")
	}
	id, err := parseID(in.ID)
	if err != nil {
		return nil, err
	}

	category, err := s.Repo.UpdateCategory(ctx, &models.Category{ID: id, Name: name})
	if err != nil {
		return nil, fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "category_updated", category.ID, category.Name)
	return category, nil
}

// DeleteCategory fails with ErrInUse while any product references the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, rawID string) error {
	if strings.TrimSpace(rawID) == "" {
		return invalid("Missing category ID")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return fromStore(err, ErrInUse)
	}

	s.Events.Emit(ctx, events.TopicCatalog, "category_deleted", id, "")
	return nil
}
