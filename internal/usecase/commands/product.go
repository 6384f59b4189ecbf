package commands

import (
	"context"

	"sneakdrop/internal/domain/product"
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/pkg/errs"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProductNotFoundWrite = errs.New("product not found")

type CreateProductRequest struct {
	Name      string
	Brand     string
	GoalLikes int
	ImageURL  string
}

type UpdateProductRequest struct {
	Name      string
	Brand     string
	GoalLikes int
	ImageURL  string
}

type CreateProductResult struct {
	ProductID uuid.UUID
}

type ProductCommands interface {
	Create(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error)
	Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) error
}

type productUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProductUseCase(uow shared.UnitOfWork, clk clock.Clock) ProductCommands {
	return &productUseCaseImpl{uow: uow, clock: clk}
}

func (uc *productUseCaseImpl) Create(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error) {
	p, err := product.NewProduct(req.Name, req.Brand, req.GoalLikes, req.ImageURL, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Products().Create(ctx, tx.DB(), p)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateProductResult{ProductID: createdID}, nil
}

func (uc *productUseCaseImpl) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) error {
	// Validates through the constructor, persists the requested identity.
	if _, err := product.NewProduct(req.Name, req.Brand, req.GoalLikes, req.ImageURL, uc.clock.Now()); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ProductByID(ctx, productID); derr != nil {
			return errs.Mark(derr, ErrProductNotFoundWrite)
		}
		return tx.Products().Update(ctx, tx.DB(), productID, req.Name, req.Brand, req.GoalLikes, req.ImageURL)
	})
}
