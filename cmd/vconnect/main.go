package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
	"github.com/Naveenmanral1/Vconnect-backend/internal/health"
	"github.com/Naveenmanral1/Vconnect-backend/internal/logging/sentry"
	"github.com/Naveenmanral1/Vconnect-backend/internal/media"
	"github.com/Naveenmanral1/Vconnect-backend/internal/server"
	"github.com/Naveenmanral1/Vconnect-backend/internal/service/impl"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	JWTAccessSecret  string        `long:"jwt.access_secret" env:"JWT_ACCESS_SECRET" required:"true" description:"secret for signing access tokens"`
	JWTRefreshSecret string        `long:"jwt.refresh_secret" env:"JWT_REFRESH_SECRET" required:"true" description:"secret for signing refresh tokens"`
	JWTAccessTTL     time.Duration `long:"jwt.access_ttl" env:"JWT_ACCESS_TTL" default:"1h" description:"access token lifetime"`
	JWTRefreshTTL    time.Duration `long:"jwt.refresh_ttl" env:"JWT_REFRESH_TTL" default:"240h" description:"refresh token lifetime"`

	MediaDir     string `long:"media.dir" env:"MEDIA_DIR" default:"media" description:"directory for uploaded assets"`
	MediaBaseURL string `long:"media.base_url" env:"MEDIA_BASE_URL" default:"/media" description:"base url uploaded assets are served under"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Vconnect"
	parser.LongDescription = "Vconnect social-networking backend"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentrygo.ClientOptions{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "vconnect",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()

	s := postgres.New(db)
	t := auth.New(opts.JWTAccessSecret, opts.JWTRefreshSecret, opts.JWTAccessTTL, opts.JWTRefreshTTL)

	m, err := media.NewFileStore(opts.MediaDir, opts.MediaBaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create media store")
	}

	r := chi.NewMux()
	server.SetupRouter(impl.New(s, t), t, m, r, opts.RequestTimeout)
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", db.PingContext),
	))
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(m.Dir()))))

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-ctx.Done():
			return ctx.Err()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		cancel()

		return errTerminated
	})

	logrus.Info("listening on " + srv.Addr)

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
