package main

import (
	"database/sql"
	"fmt"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/drivers/database"
	"medbook-service/internal/app/drivers/logger"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const dialect = "postgres"

func main() {
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env)

	rootCmd := &cobra.Command{
		Use:   "migration",
		Short: "Manage the medbook postgres schema",
	}
	rootCmd.PersistentFlags().String("dir", "migrations", "Path to the migrations directory")

	rootCmd.AddCommand(upCmd(log), downCmd(log), statusCmd(log))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("migration failed")
		os.Exit(1)
	}
}

func openSource(cmd *cobra.Command) (*sql.DB, *migrate.FileMigrationSource, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, nil, err
	}
	db := database.NewPostgresDB(config.NewDriverConfig())
	return db, &migrate.FileMigrationSource{Dir: dir}, nil
}

func upCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, source, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := migrate.Exec(db, dialect, source, migrate.Up)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			log.WithField("applied", n).Info("migrations applied")
			return nil
		},
	}
}

func downCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := cmd.Flags().GetInt("steps")
			if err != nil {
				return err
			}
			if steps <= 0 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}

			db, source, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := migrate.ExecMax(db, dialect, source, migrate.Down, steps)
			if err != nil {
				return fmt.Errorf("roll back migrations: %w", err)
			}
			log.WithField("rolled_back", n).Info("migrations rolled back")
			return nil
		},
	}
	cmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	return cmd
}

func statusCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which migrations are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, source, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			migrations, err := source.FindMigrations()
			if err != nil {
				return err
			}
			records, err := migrate.GetMigrationRecords(db, dialect)
			if err != nil {
				return err
			}

			applied := make(map[string]bool, len(records))
			for _, record := range records {
				applied[record.Id] = true
			}
			for _, migration := range migrations {
				log.WithFields(logrus.Fields{
					"migration": migration.Id,
					"applied":   applied[migration.Id],
				}).Info("migration status")
			}
			return nil
		},
	}
}
