package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/launchbase/backend/modules/api"
	"github.com/launchbase/backend/pkg/config"
	"github.com/launchbase/backend/pkg/cookie"
	"github.com/launchbase/backend/pkg/httpserver"
	"github.com/launchbase/backend/pkg/logger"
	mongopkg "github.com/launchbase/backend/pkg/mongo"
	"github.com/launchbase/backend/pkg/session"
	"github.com/launchbase/backend/svc/account"
	"github.com/launchbase/backend/svc/billing"
	"github.com/launchbase/backend/svc/oauth"
)

type appConfig struct {
	Logger  logger.Config
	HTTP    httpserver.Config
	Mongo   mongopkg.Config
	Session session.Config
	Stripe  billing.Config
	OAuth   oauth.Config
	Account account.Config

	// CookieSecrets sign session and state cookies; comma-separated, the
	// first entry signs and older entries keep verifying during rotation.
	CookieSecrets []string `env:"COOKIE_SECRETS,required"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithAttr(slog.String("app", "backend")))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	client, db, err := mongopkg.ConnectDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}

	accountStore := account.NewMongoStore(db, "")
	sessionStore := session.NewMongoStore(db, "")
	if err := accountStore.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := sessionStore.EnsureIndexes(ctx); err != nil {
		return err
	}

	cookies, err := cookie.New(cfg.CookieSecrets)
	if err != nil {
		return err
	}
	sessions := session.NewManager(sessionStore, cookies, cfg.Session)

	accounts := account.NewService(
		accountStore,
		billing.NewStripeProvider(cfg.Stripe),
		cfg.Account,
		log,
	)

	mod := api.New(
		accounts,
		sessions,
		cookies,
		[]oauth.ProviderAdapter{
			oauth.NewGoogleAdapter(cfg.OAuth),
			oauth.NewFacebookAdapter(cfg.OAuth),
		},
		[]func(context.Context) error{mongopkg.Healthcheck(client)},
		api.Config{
			StripePublishableKey: cfg.Stripe.PublishableKey,
			SecureCookies:        cfg.Session.SecureCookies,
		},
		log,
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(l *slog.Logger) {
			if err := client.Disconnect(context.Background()); err != nil {
				l.Error("failed to disconnect mongo", logger.Error(err))
			}
		}),
	)
	return srv.Run(ctx, mod.Router())
}
