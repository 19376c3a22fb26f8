package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	clientsRepo "github.com/ezdiharweb/agency-api/clients/repository"
	coreconfig "github.com/ezdiharweb/agency-api/core/config"
	coreDB "github.com/ezdiharweb/agency-api/core/database"
	socialRepo "github.com/ezdiharweb/agency-api/social/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations and exit",
	Run:   runMigrations,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations(_ *cobra.Command, _ []string) {
	cfg := coreconfig.Global

	db, err := coreDB.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to the database: %v", err)
	}

	ctx := context.Background()
	migrators := map[string]interface {
		InitSchema(ctx context.Context) error
	}{
		"clients":  clientsRepo.NewClientGormRepository(db),
		"profiles": socialRepo.NewProfileGormRepository(db),
		"plans":    socialRepo.NewPlanGormRepository(db),
		"posts":    socialRepo.NewPostGormRepository(db),
	}

	for name, migrator := range migrators {
		logrus.Infof("[MIGRATION] Migrating %s schema...", name)
		if err := migrator.InitSchema(ctx); err != nil {
			logrus.Fatalf("Failed to migrate %s schema: %v", name, err)
		}
	}

	logrus.Info("[MIGRATION] All schemas migrated")
}
