package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/db"
	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	return New(gdb)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

type fakeSQLiteErr struct {
	code int
	msg  string
}

func (e fakeSQLiteErr) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("sqlite error %d", e.code)
}
func (e fakeSQLiteErr) Code() int { return e.code }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "gorm not found", err: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "gorm duplicate", err: gorm.ErrDuplicatedKey, want: ErrDuplicate},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: ErrForeignKey},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: ErrTransient},
		{name: "pg unique", err: &pgconn.PgError{Code: "23505"}, want: ErrDuplicate},
		{name: "pg foreign key", err: &pgconn.PgError{Code: "23503"}, want: ErrForeignKey},
		{name: "pg connection failure", err: &pgconn.PgError{Code: "08006"}, want: ErrTransient},
		{name: "pg admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: ErrTransient},
		{name: "sqlite unique", err: fakeSQLiteErr{code: 2067}, want: ErrDuplicate},
		{name: "sqlite foreign key", err: fakeSQLiteErr{code: 787}, want: ErrForeignKey},
		{name: "sqlite restrict", err: fakeSQLiteErr{code: 1811, msg: "constraint failed: FOREIGN KEY constraint failed (1811)"}, want: ErrForeignKey},
		{name: "sqlite busy", err: fakeSQLiteErr{code: 5}, want: ErrTransient},
		{name: "sqlite busy snapshot", err: fakeSQLiteErr{code: 517}, want: ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, classify(nil))

	plain := errors.New("boom")
	got := classify(plain)
	assert.Same(t, plain, got)
	for _, tag := range []error{ErrNotFound, ErrDuplicate, ErrForeignKey, ErrTransient} {
		assert.NotErrorIs(t, got, tag)
	}

	pgOther := &pgconn.PgError{Code: "22001"}
	assert.Same(t, pgOther, classify(pgOther))
}

func TestBrandLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateBrand(ctx, &models.Brand{Name: "Acme", Logo: strPtr("https://acme.test/logo.png")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.Before(created.CreatedAt))

	time.Sleep(2 * time.Millisecond)
	updated, err := r.UpdateBrand(ctx, &models.Brand{ID: created.ID, Name: "Acme2"})
	require.NoError(t, err)
	assert.Equal(t, "Acme2", updated.Name)
	assert.Nil(t, updated.Logo)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	items, err := r.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme2", items[0].Name)

	require.NoError(t, r.DeleteBrand(ctx, created.ID))
	assert.ErrorIs(t, r.DeleteBrand(ctx, created.ID), ErrNotFound)

	_, err = r.UpdateBrand(ctx, &models.Brand{ID: created.ID, Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.GetBrand(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBrands_NewestFirst(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := r.CreateBrand(ctx, &models.Brand{Name: name})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	items, err := r.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Name)
	assert.Equal(t, "first", items[2].Name)
}

func TestCategoryLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	items, err := r.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	created, err := r.CreateCategory(ctx, &models.Category{Name: "Shoes"})
	require.NoError(t, err)

	updated, err := r.UpdateCategory(ctx, &models.Category{ID: created.ID, Name: "Boots"})
	require.NoError(t, err)
	assert.Equal(t, "Boots", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, r.DeleteCategory(ctx, created.ID))
	assert.ErrorIs(t, r.DeleteCategory(ctx, created.ID), ErrNotFound)
}

func TestProduct_JoinedReadAndReferences(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cat, err := r.CreateCategory(ctx, &models.Category{Name: "Shoes"})
	require.NoError(t, err)
	brand, err := r.CreateBrand(ctx, &models.Brand{Name: "Acme"})
	require.NoError(t, err)

	withBrand, err := r.CreateProduct(ctx, &models.Product{
		ProName:    "Sneaker",
		Price:      49.99,
		Discount:   floatPtr(10),
		CategoryID: cat.ID,
		BrandID:    &brand.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, withBrand.Category)
	assert.Equal(t, "Shoes", withBrand.Category.Name)
	require.NotNil(t, withBrand.Brand)
	assert.Equal(t, "Acme", withBrand.Brand.Name)

	time.Sleep(2 * time.Millisecond)
	noBrand, err := r.CreateProduct(ctx, &models.Product{ProName: "Sandal", Price: 10, CategoryID: cat.ID})
	require.NoError(t, err)
	assert.Nil(t, noBrand.Brand)
	assert.Nil(t, noBrand.BrandID)

	items, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sandal", items[0].ProName)
	assert.Nil(t, items[0].Brand)
	require.NotNil(t, items[1].Category)
	assert.Equal(t, "Shoes", items[1].Category.Name)

	_, err = r.CreateProduct(ctx, &models.Product{ProName: "Ghost", Price: 1, CategoryID: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, ErrForeignKey)

	missingBrand := "00000000-0000-0000-0000-000000000001"
	_, err = r.CreateProduct(ctx, &models.Product{ProName: "Ghost", Price: 1, CategoryID: cat.ID, BrandID: &missingBrand})
	assert.ErrorIs(t, err, ErrForeignKey)

	total, err := r.CountProducts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	assert.ErrorIs(t, r.DeleteCategory(ctx, cat.ID), ErrForeignKey)

	require.NoError(t, r.DeleteBrand(ctx, brand.ID))
	reloaded, err := r.GetProduct(ctx, withBrand.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.BrandID)
	assert.Nil(t, reloaded.Brand)
}

func TestUpdateProduct_FullReplace(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cat, err := r.CreateCategory(ctx, &models.Category{Name: "Shoes"})
	require.NoError(t, err)
	brand, err := r.CreateBrand(ctx, &models.Brand{Name: "Acme"})
	require.NoError(t, err)

	p, err := r.CreateProduct(ctx, &models.Product{ProName: "Sneaker", Price: 50, Discount: floatPtr(5), CategoryID: cat.ID, BrandID: &brand.ID})
	require.NoError(t, err)

	updated, err := r.UpdateProduct(ctx, &models.Product{ID: p.ID, ProName: "Sneaker v2", Price: 60, CategoryID: cat.ID})
	require.NoError(t, err)
	assert.Equal(t, "Sneaker v2", updated.ProName)
	assert.Equal(t, 60.0, updated.Price)
	assert.Nil(t, updated.Discount)
	assert.Nil(t, updated.BrandID)

	_, err = r.UpdateProduct(ctx, &models.Product{ID: p.ID, ProName: "x", Price: 1, CategoryID: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, ErrForeignKey)

	_, err = r.UpdateProduct(ctx, &models.Product{ID: "00000000-0000-0000-0000-000000000009", ProName: "x", Price: 1, CategoryID: cat.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, r.DeleteProduct(ctx, p.ID), ErrNotFound)
}

func TestUsers_UniqueEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, &models.User{Email: "a@example.com", Password: "hash"}))
	err := r.CreateUser(ctx, &models.User{Email: "a@example.com", Password: "hash2"})
	assert.ErrorIs(t, err, ErrDuplicate)

	n, err := r.CountUsersByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	u, err := r.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", u.Password)

	_, err = r.FindUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
