package cron

import (
	"context"

	"mediadex/config"
	"mediadex/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger       *zap.Logger
	conf         *config.Configuration
	leaseService *service.LeaseService
	server       *cron.Cron
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, leaseService *service.LeaseService) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:       logger,
		conf:         conf,
		leaseService: leaseService,
		server:       server,
	}
}

func (c *Cron) Run() error {
	// Expiry is also enforced lazily on every lease check; the sweep keeps the
	// registry honest for tenants nobody touches.
	if spec := c.conf.Catalog.SweepSpec; spec != "" {
		if _, err := c.server.AddFunc(spec, c.sweepExpiredLeases); err != nil {
			return err
		}
	}

	c.server.Start()
	return nil
}

func (c *Cron) sweepExpiredLeases() {
	deactivated, err := c.leaseService.SweepExpired(context.Background())
	if err != nil {
		c.logger.Warn("lease sweep failed", zap.Error(err))
		return
	}
	if deactivated > 0 {
		c.logger.Info("lease sweep deactivated tenants", zap.Int64("count", deactivated))
	}
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}
