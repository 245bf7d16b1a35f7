// Command smoke runs a post-deploy check against a live trackflow server:
// health, register, login and profile, in that order. It exits non-zero on
// the first failing step.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/trackflow/trackflow-server/internal/adapter"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/models"
)

const smokePassword = "smoke-Pa55word"

var errSmokeFailed = errors.New("smoke check failed")

func main() {
	log := logger.NewLogger("trackflow-smoke")
	cfg, err := config.GetSmokeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	email := fmt.Sprintf("smoke-%s@trackflow.test", uuid.NewString())
	if err = run(context.Background(), serverAdapter, email, log); err != nil {
		log.Error().Err(err).Str("server", cfg.Adapter.HTTPAddress).Msg("smoke check failed")
		os.Exit(1)
	}

	log.Info().Str("server", cfg.Adapter.HTTPAddress).Msg("smoke check passed")
}

func run(ctx context.Context, a adapter.ServerAdapter, email string, log *logger.Logger) error {
	health, err := a.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if health.Status != "OK" {
		return fmt.Errorf("%w: health status is %q", errSmokeFailed, health.Status)
	}
	log.Info().Str("service", health.Service).Msg("health ok")

	credentials := models.Credentials{Email: email, Password: smokePassword}
	user, err := a.Register(ctx, credentials)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	log.Info().Int64("user_id", user.ID).Msg("register ok")

	result, err := a.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: login rejected: %s", errSmokeFailed, result.Message)
	}
	log.Info().Msg("login ok")

	profile, err := a.Profile(ctx)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if profile.UserInfo.ID != user.ID || profile.UserInfo.Email != user.Email {
		return fmt.Errorf("%w: profile belongs to user %d, registered %d", errSmokeFailed, profile.UserInfo.ID, user.ID)
	}
	log.Info().Msg("profile ok")

	return nil
}
