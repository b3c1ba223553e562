// Command portfolioctl обслуживает базу галереи: миграции, наполнение, список процедур.
package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

var (
	verbose bool
	cfg     *config.Config
	log     *logrus.Entry
)

var rootCmd = &cobra.Command{
	Use:           "portfolioctl",
	Short:         "Служебные команды бэкенда портфолио",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger.Init(level, true)
		log = logger.Entry()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "подробный лог")
	rootCmd.AddCommand(migrateCmd, seedCmd, proceduresCmd)
}

// connect открывает базу с таймаутом команды.
func connect(cmd *cobra.Command) (*sqlx.DB, error) {
	conn, err := db.NewPostgres(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("подключение к базе: %w", err)
	}
	return conn, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolioctl:", err)
		os.Exit(1)
	}
}
