package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qr-dine/models"
	"qr-dine/stores"
)

type MenuRepository struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	query := `SELECT id, name, price, description, COALESCE(image, ''), category, created_at
	          FROM menu_items ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Image, &item.Category, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) InsertMenuItem(ctx context.Context, data models.MenuItemData) (models.MenuItem, error) {
	query := `INSERT INTO menu_items (name, price, description, image, category)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, name, price, description, COALESCE(image, ''), category, created_at`

	var item models.MenuItem
	err := r.db.QueryRow(ctx, query,
		strOrEmpty(data.Name), floatOrZero(data.Price), strOrEmpty(data.Description),
		strOrEmpty(data.Image), strOrEmpty(data.Category),
	).Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Image, &item.Category, &item.CreatedAt)
	return item, err
}

// UpdateMenuItem reads the current row and overlays only the supplied fields,
// leaving the rest unchanged server-side.
func (r *MenuRepository) UpdateMenuItem(ctx context.Context, id string, data models.MenuItemData) (models.MenuItem, error) {
	var existing models.MenuItem
	err := r.db.QueryRow(ctx,
		`SELECT name, price, description, COALESCE(image, ''), category FROM menu_items WHERE id=$1`,
		id).Scan(&existing.Name, &existing.Price, &existing.Description, &existing.Image, &existing.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, stores.ErrNotFound
		}
		return models.MenuItem{}, err
	}

	if data.Name != nil {
		existing.Name = *data.Name
	}
	if data.Price != nil {
		existing.Price = *data.Price
	}
	if data.Description != nil {
		existing.Description = *data.Description
	}
	if data.Image != nil {
		existing.Image = *data.Image
	}
	if data.Category != nil {
		existing.Category = *data.Category
	}

	query := `UPDATE menu_items SET name=$1, price=$2, description=$3, image=$4, category=$5
	          WHERE id=$6
	          RETURNING id, name, price, description, COALESCE(image, ''), category, created_at`

	var item models.MenuItem
	err = r.db.QueryRow(ctx, query,
		existing.Name, existing.Price, existing.Description, existing.Image, existing.Category, id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Image, &item.Category, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.MenuItem{}, stores.ErrNotFound
	}
	return item, err
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return stores.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *MenuRepository) InsertCategory(ctx context.Context, name string) (models.Category, error) {
	var category models.Category
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`,
		name).Scan(&category.ID, &category.Name)
	return category, err
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, id, name string) (models.Category, error) {
	var category models.Category
	err := r.db.QueryRow(ctx,
		`UPDATE categories SET name=$1 WHERE id=$2 RETURNING id, name`,
		name, id).Scan(&category.ID, &category.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Category{}, stores.ErrNotFound
	}
	return category, err
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return stores.ErrNotFound
	}
	return nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
