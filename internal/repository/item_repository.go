package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shopping-service/internal/domain"
)

// ItemRepository handles persistence for shopping catalog items.
type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	Search(ctx context.Context, query string) ([]domain.Item, error)
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	Create(ctx context.Context, item domain.NewItem) (*domain.Item, error)
	Delete(ctx context.Context, id int32) error
}

type itemRepository struct {
	db DBTX
}

// NewItemRepository instantiates the repository.
func NewItemRepository(db DBTX) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, description, image_url, default_unit_type`

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	return r.query(ctx, `SELECT `+itemColumns+` FROM shopping_item ORDER BY id DESC`)
}

func (r *itemRepository) Search(ctx context.Context, query string) ([]domain.Item, error) {
	const sql = `SELECT ` + itemColumns + ` FROM shopping_item WHERE name ILIKE $1 ORDER BY id DESC`
	return r.query(ctx, sql, "%"+query+"%")
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM shopping_item WHERE id=$1`

	var item domain.Item
	if err := scanItem(r.db.QueryRow(ctx, query, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, in domain.NewItem) (*domain.Item, error) {
	const query = `
        INSERT INTO shopping_item (name, description, image_url, default_unit_type)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + itemColumns

	var item domain.Item
	if err := scanItem(r.db.QueryRow(ctx, query,
		in.Name,
		in.Description,
		in.ImageURL,
		string(in.DefaultUnitType),
	), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM shopping_item WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row, item *domain.Item) error {
	var unit string
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.ImageURL,
		&unit,
	); err != nil {
		return err
	}
	item.DefaultUnitType = domain.UnitType(unit)
	return nil
}
