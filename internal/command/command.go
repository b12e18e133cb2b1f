package command

import (
	"context"

	"mediadex/internal/service"

	"github.com/google/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCommand, NewSeedHandler)

type Command struct {
	seedHandler *SeedHandler
}

// NewCommand .
func NewCommand(
	seedHandler *SeedHandler,
) *Command {
	return &Command{
		seedHandler: seedHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "seed the superuser lease without starting the server",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.seedHandler.Seed(cmd, args)
			},
		},
	)
}

// SeedHandler backs the one-shot maintenance subcommand.
type SeedHandler struct {
	logger       *zap.Logger
	leaseService *service.LeaseService
}

func NewSeedHandler(logger *zap.Logger, leaseService *service.LeaseService) *SeedHandler {
	return &SeedHandler{
		logger:       logger,
		leaseService: leaseService,
	}
}

func (handler *SeedHandler) Seed(cmd *cobra.Command, args []string) {
	if err := handler.leaseService.EnsureSuperuser(context.Background()); err != nil {
		handler.logger.Error("superuser seed failed", zap.Error(err))
		return
	}
	cmd.Println("superuser lease seeded")
}
