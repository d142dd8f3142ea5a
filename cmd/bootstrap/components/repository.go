package components

import (
	repo_impl "voting-platform/internal/infra/repository"
	"voting-platform/internal/usecase/commands"
	"voting-platform/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.VoterFlagRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCandidateRepository,
			fx.As(new(commands.CandidateRepository)),
			fx.As(new(commands.CandidateCatalog)),
			fx.As(new(queries.CandidateReadStore)),
		),
		fx.Annotate(
			repo_impl.NewVoteRepository,
			fx.As(new(commands.VoteLedger)),
			fx.As(new(queries.VoteReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
