// Command csu creates a staff superuser account.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/internal/config"
	"github.com/sangkips/tradenet-api/internal/infrastructure/database"
	"github.com/sangkips/tradenet-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	csuEmail    string
	csuPassword string
	csuEnvFile  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csu",
		Short: "Create a superuser",
		Long: "Create an active staff superuser. Flags fall back to SUPERUSER_EMAIL and\n" +
			"SUPERUSER_PASSWORD from the environment or the env file.",
		SilenceUsage: true,
		RunE:         runCreateSuperuser,
	}
	cmd.Flags().StringVar(&csuEmail, "email", "", "superuser email")
	cmd.Flags().StringVar(&csuPassword, "password", "", "superuser password")
	cmd.Flags().StringVar(&csuEnvFile, "env-file", ".env", "env file to read configuration from")
	return cmd
}

func runCreateSuperuser(cmd *cobra.Command, args []string) error {
	cfg := config.LoadFile(csuEnvFile)
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	email := csuEmail
	if email == "" {
		email = cfg.Superuser.Email
	}
	password := csuPassword
	if password == "" {
		password = cfg.Superuser.Password
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	user, err := database.CreateSuperuser(context.Background(), db, email, password)
	if err != nil {
		return fmt.Errorf("create superuser: %w", err)
	}

	log.Info().Str("email", user.Email).Msg("superuser created")
	fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created\n", user.Email)
	return nil
}
