package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuiguess/internal/generator"
	"github.com/verte-zerg/tuiguess/internal/httpapi"
	"github.com/verte-zerg/tuiguess/internal/model"
	"github.com/verte-zerg/tuiguess/internal/session"
	"github.com/verte-zerg/tuiguess/internal/store"
)

const (
	defaultAddr       = ":5175"
	defaultSessionTTL = 30 * time.Minute
	secretSize        = 32
)

var (
	serveAddr       string
	serveSessionTTL time.Duration
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game to a browser over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listen address")
	cmd.Flags().DurationVar(&serveSessionTTL, "session-ttl", defaultSessionTTL, "evict sessions idle for longer than this")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
	setupLogging()

	cfg, fileCfg, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}
	serveCfg, err := loadServeConfig(cmd, fileCfg.Server.Addr, fileCfg.Server.SessionTTL, fileCfg.Server.ClientOrigin)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New(session.NewFactory(cfg, generator.New()))
	go st.RunSweeper(ctx, sweepInterval(serveCfg.SessionTTL), serveCfg.SessionTTL)

	srv := httpapi.New(st, cfg.Levels, serveCfg)
	log.Info().
		Str("addr", serveCfg.Addr).
		Dur("session_ttl", serveCfg.SessionTTL).
		Ints("levels", cfg.Levels).
		Msg("starting tuiguess server")
	return srv.ListenAndServe(ctx, serveCfg.Addr)
}

// loadServeConfig resolves server settings: flags, then environment, then config file.
func loadServeConfig(cmd *cobra.Command, addr, ttl, origin *string) (model.ServeConfig, error) {
	applyStringConfig(cmd, "addr", &serveAddr, addr)
	if port := os.Getenv("PORT"); port != "" && !flagChanged(cmd, "addr") {
		serveAddr = ":" + port
	}
	if err := applyDurationConfig(cmd, "session-ttl", &serveSessionTTL, ttl); err != nil {
		return model.ServeConfig{}, err
	}
	if serveSessionTTL <= 0 {
		return model.ServeConfig{}, fmt.Errorf("--session-ttl must be > 0")
	}

	clientOrigin := ""
	if origin != nil {
		clientOrigin = *origin
	}
	if v := os.Getenv("CLIENT_ORIGIN"); v != "" {
		clientOrigin = v
	}

	secret := []byte(os.Getenv("SESSION_SECRET"))
	if len(secret) == 0 {
		secret = make([]byte, secretSize)
		if _, err := rand.Read(secret); err != nil {
			return model.ServeConfig{}, fmt.Errorf("failed to generate session secret: %w", err)
		}
		log.Warn().Msg("SESSION_SECRET not set; using a random secret, sessions will not survive a restart")
	}

	return model.ServeConfig{
		Addr:         serveAddr,
		SessionTTL:   serveSessionTTL,
		ClientOrigin: clientOrigin,
		Secret:       secret,
	}, nil
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		return time.Second
	}
	return interval
}
