package readstore

import (
	"context"

	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"
	"sneakdrop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const productSelect = `
	SELECT p.id, p.name, p.brand, p.goal_likes, p.image_url, p.created_at,
	       COUNT(v.id) AS votes
	FROM products p
	LEFT JOIN votes v ON v.product_id = p.id`

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := s.db.QueryRow(ctx, productSelect+`
		WHERE p.id = $1
		GROUP BY p.id`, id)

	view, err := scanProduct(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return view, nil
}

func (s *ProductReadStore) List(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := s.db.Query(ctx, productSelect+`
		GROUP BY p.id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		view, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return views, nil
}

func scanProduct(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(&v.ID, &v.Name, &v.Brand, &v.GoalLikes, &v.ImageURL, &v.CreatedAt, &v.Votes)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
