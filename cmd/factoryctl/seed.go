package main

import (
	"fmt"

	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/seed"
	"aircraft-factory-backend/internal/service"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load teams, users and parts from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := seed.Load(seedFile)
		if err != nil {
			return err
		}

		db, err := openDatabase(cfg.AutoMigrate)
		if err != nil {
			return err
		}

		store := repository.NewStore(db)
		v := service.NewValidator()
		seeder := seed.NewSeeder(
			service.NewTeamService(store.Teams(), v),
			service.NewUserService(store.Users(), store.Teams(), v),
			service.NewPartService(store, service.SystemClock{}, v),
			store.Teams(),
			store.Users(),
		)

		summary, err := seeder.Apply(cmd.Context(), file)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "teams: %d created, %d existing\nusers: %d created, %d existing\nparts: %d created\n",
			summary.TeamsCreated, summary.TeamsExisting, summary.UsersCreated, summary.UsersExisting, summary.PartsCreated)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "scripts/data/factory.yaml", "seed YAML file")
}
