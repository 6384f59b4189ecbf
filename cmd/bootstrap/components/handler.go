package components

import (
	"sneakdrop/internal/handler"
	"sneakdrop/internal/handler/api"
	"sneakdrop/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVoteHandler,
		api.NewProductHandler,
		api.NewSubmissionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	vote *api.VoteHandler,
	product *api.ProductHandler,
	submission *api.SubmissionHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Vote:       vote,
		Product:    product,
		Submission: submission,
	}
}
