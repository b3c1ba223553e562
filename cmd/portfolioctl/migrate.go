package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/db"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить SQL миграции",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connect(cmd)
		if err != nil {
			return err
		}
		defer conn.Close()

		dir := cfg.MigrationsPath
		if migrationsDir != "" {
			dir = migrationsDir
		}

		applied, err := db.RunMigrations(cmd.Context(), conn, dir)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "новых миграций нет")
			return nil
		}
		for _, name := range applied {
			fmt.Fprintln(cmd.OutOrStdout(), "применена", name)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "", "каталог миграций (по умолчанию MIGRATIONS_PATH)")
}
