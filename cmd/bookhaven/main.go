package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookhaven/server/internal/analytics"
	"github.com/bookhaven/server/internal/config"
	"github.com/bookhaven/server/internal/logger"
	"github.com/bookhaven/server/internal/payments"
	"github.com/bookhaven/server/internal/server"
	"github.com/bookhaven/server/internal/storage"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		<-c

		log.Debug().Msg("ctx cancel; catch os signal")
		cancel()
	}()

	var stor server.Storage
	var mem *storage.MemStorage

	if err = storage.Migrations(cfg.DBDsn, cfg.MigratePath); err != nil {
		log.Error().Err(err).Msg("migrations failed")
	}
	dbs, err := storage.NewDB(context.TODO(), cfg.DBDsn)
	if err != nil {
		log.Error().Err(err).Msg("connecting to data base failed")
		mem = storage.New()
		mem.Seed()
		if err := mem.LoadSnapshot(cfg.SnapshotPath); err != nil {
			log.Error().Err(err).Msg("loading snapshot failed")
		}
		stor = mem
	} else if cfg.RedisAddr != "" {
		cached, err := storage.NewCachedCatalog(dbs, cfg.RedisAddr)
		if err != nil {
			log.Error().Err(err).Msg("connecting to redis failed, catalog cache disabled")
			stor = dbs
		} else {
			stor = cached
		}
	} else {
		stor = dbs
	}

	gateways := make(map[string]payments.Gateway)
	if stripeGw, err := payments.NewStripe(cfg.StripeKey); err != nil {
		log.Warn().Err(err).Msg("stripe gateway disabled")
	} else {
		gateways[payments.GatewayStripe] = stripeGw
	}
	if paypalGw, err := payments.NewPayPal(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalSandbox); err != nil {
		log.Warn().Err(err).Msg("paypal gateway disabled")
	} else {
		gateways[payments.GatewayPayPal] = paypalGw
	}

	tracker := analytics.New(prometheus.DefaultRegisterer)
	serv := server.New(*cfg, stor, gateways, tracker)

	rollups := cron.New()
	if _, err := rollups.AddFunc("@daily", func() {
		if err := stor.RollupDaily(time.Now().AddDate(0, 0, -1)); err != nil {
			log.Error().Err(err).Msg("daily rollup failed")
		}
	}); err != nil {
		log.Error().Err(err).Msg("failed to schedule daily rollup")
	}
	rollups.Start()
	defer rollups.Stop()

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(gCtx)
	})
	group.Go(func() error {
		log.Debug().Msg("error chan listener started")
		defer log.Debug().Msg("error chan listener - end")
		return <-serv.ErrChan
	})
	group.Go(func() error {
		<-gCtx.Done()
		return serv.ShutdownServer()
	})

	if err = group.Wait(); err != nil {
		log.Info().Str("stoping reason", err.Error()).Msg("Server stoped")
	} else {
		log.Info().Msg("server stoped")
	}

	if mem != nil {
		if err := mem.SaveSnapshot(cfg.SnapshotPath); err != nil {
			log.Error().Err(err).Msg("saving snapshot failed")
		}
	}
}
