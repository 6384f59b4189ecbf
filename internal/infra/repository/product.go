package repository

import (
	"context"

	"sneakdrop/internal/domain/product"
	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO products (id, name, brand, goal_likes, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		p.ID(), p.Name(), p.Brand(), p.GoalLikes(), p.ImageURL(), p.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, name, brand string, goalLikes int, imageURL string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET name = $2, brand = $3, goal_likes = $4, image_url = $5
		WHERE id = $1`,
		id, name, brand, goalLikes, imageURL,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
