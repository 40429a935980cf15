package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pantry-planner/internal/category"
)

// Repository is the persistence boundary for pantry items.
type Repository interface {
	Create(ctx context.Context, item Item) (Item, error)
	FindByID(ctx context.Context, id string) (Item, error)
	FindAll(ctx context.Context) ([]Item, error)
	UpdateRemaining(ctx context.Context, id string, remaining float64) error
	Delete(ctx context.Context, id string) error
}

// SQLiteRepository stores pantry items in SQLite. The categorizer fills in
// the item's category and, when no expiry is given, predicts one from the
// category's default shelf life.
type SQLiteRepository struct {
	database    *sql.DB
	categorizer *category.Categorizer
	now         func() time.Time
}

func NewRepository(database *sql.DB, categorizer *category.Categorizer) *SQLiteRepository {
	return &SQLiteRepository{
		database:    database,
		categorizer: categorizer,
		now:         time.Now,
	}
}

func (r *SQLiteRepository) Create(ctx context.Context, item Item) (Item, error) {
	if item.Name == "" {
		return Item{}, fmt.Errorf("creating pantry item: name is required")
	}
	if item.Remaining < 0 {
		return Item{}, fmt.Errorf("creating pantry item: remaining quantity must be >= 0")
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Category == "" {
		item.Category, _ = r.categorizer.Categorize(item.Name)
	}
	if item.Expiry == nil {
		if days := r.categorizer.PredictExpiryDays(item.Category, item.Name); days > 0 {
			predicted := r.now().AddDate(0, 0, days)
			item.Expiry = &predicted
		}
	}

	now := r.now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.database.ExecContext(ctx,
		`INSERT INTO pantry_items (id, name, unit, remaining, expiry, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, nullString(item.Unit), item.Remaining,
		nullTime(item.Expiry), nullString(item.Category), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return Item{}, fmt.Errorf("creating pantry item: %w", err)
	}
	return item, nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (Item, error) {
	row := r.database.QueryRowContext(ctx,
		`SELECT id, name, unit, remaining, expiry, category, created_at, updated_at
		FROM pantry_items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err != nil {
		return Item{}, fmt.Errorf("finding pantry item by id: %w", err)
	}
	return item, nil
}

// FindAll returns the current pantry snapshot ordered by name.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]Item, error) {
	rows, err := r.database.QueryContext(ctx,
		`SELECT id, name, unit, remaining, expiry, category, created_at, updated_at
		FROM pantry_items ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pantry items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pantry item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateRemaining records an actual consumption (after cooking) or a manual
// correction. The engine itself never calls this.
func (r *SQLiteRepository) UpdateRemaining(ctx context.Context, id string, remaining float64) error {
	if remaining < 0 {
		remaining = 0
	}
	result, err := r.database.ExecContext(ctx,
		`UPDATE pantry_items SET remaining = ?, updated_at = ? WHERE id = ?`,
		remaining, r.now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating pantry item quantity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating pantry item quantity: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.database.ExecContext(ctx, `DELETE FROM pantry_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pantry item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting pantry item: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (Item, error) {
	var item Item
	var unit, cat sql.NullString
	var expiry sql.NullTime
	if err := s.Scan(
		&item.ID, &item.Name, &unit, &item.Remaining,
		&expiry, &cat, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return Item{}, err
	}
	item.Unit = unit.String
	item.Category = cat.String
	if expiry.Valid {
		t := expiry.Time
		item.Expiry = &t
	}
	return item, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
