package commands

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/headz-api/internal/config"
	dbpkg "github.com/BruksfildServices01/headz-api/internal/db"
)

var (
	databaseURL string
	db          *gorm.DB
)

func Execute() error {
	root := &cobra.Command{
		Use:          "headzctl",
		Short:        "Manage the Headz gallery catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if databaseURL != "" {
				cfg.DBUrl = databaseURL
			}

			conn, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			db = conn
			return nil
		},
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL (default $DATABASE_URL)")

	root.AddCommand(seedCmd(), clearCmd(), statusCmd())
	return root.Execute()
}
