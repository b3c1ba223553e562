package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

var (
	seedFile    string
	seedMigrate bool
	seedDryRun  bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Наполнить базу данными из YAML фикстуры",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.SeedFile
		if seedFile != "" {
			path = seedFile
		}

		fixture, err := service.LoadSeedFile(path)
		if err != nil {
			return err
		}
		if seedDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "фикстура %s корректна: работ %d, трекеров %d, журналов %d, тем %d, пространств %d\n",
				path, len(fixture.Artifacts), len(fixture.Trackers), len(fixture.ChangeLogs), len(fixture.Themes), len(fixture.Spaces))
			return nil
		}

		conn, err := connect(cmd)
		if err != nil {
			return err
		}
		defer conn.Close()

		if seedMigrate {
			if _, err := db.RunMigrations(cmd.Context(), conn, cfg.MigrationsPath); err != nil {
				return err
			}
		}

		userRepo := repository.NewUserRepository(conn)
		spaceRepo := repository.NewSpaceRepository(conn)
		themeRepo := repository.NewThemeRepository(conn)
		seeder := service.NewSeedService(
			userRepo,
			spaceRepo,
			themeRepo,
			service.NewArtifactService(repository.NewArtifactRepository(conn)),
			service.NewProgressService(repository.NewProgressRepository(conn)),
			service.NewChangeLogService(repository.NewChangeLogRepository(conn)),
		)

		result, err := seeder.Seed(cmd.Context(), fixture)
		if err != nil {
			return err
		}
		if result.Skipped {
			fmt.Fprintln(cmd.OutOrStdout(), "профиль уже существует, наполнение пропущено")
			return nil
		}

		log.WithField("file", path).Info("seed: готово")
		fmt.Fprintf(cmd.OutOrStdout(), "создано: работ %d, трекеров %d, журналов %d, тем %d, пространств %d\n",
			result.ArtifactsCreated, result.TrackersCreated, result.ChangeLogsCreated, result.ThemesCreated, result.SpacesCreated)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "путь к фикстуре (по умолчанию SEED_FILE)")
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "применить миграции перед наполнением")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "только проверить фикстуру")
}
