package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/config"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/service"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/database"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	username string
	password string
)

var rootCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset a back-office user's password",
	Long: `Hashes the given password with bcrypt and stores it for the user
with the given username. Database settings come from the same .env,
config.yaml and environment variables the API server reads.`,
	RunE: resetPassword,
}

func init() {
	rootCmd.Flags().StringVar(&username, "username", "", "Username of the account to reset")
	rootCmd.Flags().StringVar(&password, "password", "", "New password (at least 6 characters)")
	_ = rootCmd.MarkFlagRequired("username")
	_ = rootCmd.MarkFlagRequired("password")
}

func resetPassword(cmd *cobra.Command, args []string) error {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	zlog, err := logger.New(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db, err := database.Open(cfg.Database, zlog)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 3. Hash and store
	if err := service.ResetPassword(context.Background(), repository.NewStore(db), username, password); err != nil {
		return err
	}

	fmt.Printf("Password for %s has been reset\n", username)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
