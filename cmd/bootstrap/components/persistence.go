package components

import (
	"sneakdrop/internal/infra/db"
	"sneakdrop/internal/infra/readstore"
	"sneakdrop/internal/infra/uow"
	"sneakdrop/internal/usecase"
	"sneakdrop/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewVoteReadStore,
			fx.As(new(queries.VoteReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewSubmissionReadStore,
			fx.As(new(queries.SubmissionReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
