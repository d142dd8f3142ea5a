package components

import (
	"voting-platform/internal/handler"
	"voting-platform/internal/handler/api"
	"voting-platform/internal/handler/middleware"
	"voting-platform/internal/pkg/config"
	"voting-platform/internal/pkg/jwt"
	"voting-platform/internal/usecase/commands"
	"voting-platform/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewCandidateHandler,
		api.NewVoteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(cmds, userQueries, cfg.Cookie, jwtService.TokenDuration())
}
