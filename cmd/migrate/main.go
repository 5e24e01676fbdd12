package main

import (
	"context"
	"fmt"
	"os"

	"faepa_workflow/internal/adapter/persistence/repository"
	"faepa_workflow/internal/infrastructure/config"
	"faepa_workflow/internal/infrastructure/database"
	"faepa_workflow/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Provision the storage used by the payment workflow service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log)
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}

	rootCmd.AddCommand(dynamoCmd())
	rootCmd.AddCommand(postgresCmd())
	rootCmd.AddCommand(allCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

func dynamoCmd() *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "dynamodb",
		Short: "Create the request ledger table and its batch_id index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			if table != "" {
				cfg.Ledger.RequestsTable = table
			}
			return migrateDynamo(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table name (defaults to REQUESTS_TABLE)")
	return cmd
}

func postgresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postgres",
		Short: "Auto-migrate the submissions table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migratePostgres(configFrom(cmd.Context()))
		},
	}
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			if cfg.Ledger.Backend == config.LedgerBackendDynamoDB {
				if err := migrateDynamo(cmd.Context(), cfg); err != nil {
					return err
				}
			}
			return migratePostgres(cfg)
		},
	}
}

func migrateDynamo(ctx context.Context, cfg *config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	created, err := repository.EnsureRequestsTable(ctx, ddb, cfg.Ledger.RequestsTable)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("created table %s\n", cfg.Ledger.RequestsTable)
	} else {
		fmt.Printf("table %s already exists\n", cfg.Ledger.RequestsTable)
	}
	return nil
}

func migratePostgres(cfg *config.Config) error {
	db, err := database.ConnectPostgres(cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := repository.MigrateSubmissions(db); err != nil {
		return fmt.Errorf("migrate submissions: %w", err)
	}
	fmt.Println("submissions table migrated")
	return nil
}
