package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/instituto-alma/server/internal/config"
	"github.com/instituto-alma/server/internal/domain/admins"
	"github.com/instituto-alma/server/internal/storage/postgres"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Register an admin identity from the command line",
	Long: `Register an admin identity without going through the HTTP API.

Useful for provisioning the first account on a new deployment:

  server create-admin --name "Ana" --email ana@instituto.org --password segredo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		pool, err := newPool(cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo, err := postgres.NewRepository(pool)
		if err != nil {
			return err
		}

		logger := config.NewLogger(cfg.Logging)
		service := admins.NewService(repo.Admins(), logger)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		id, err := service.Register(ctx, admins.RegisterInput{
			Nome:  adminName,
			Email: adminEmail,
			Senha: adminPassword,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "admin created with id %d\n", id)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "admin display name")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email (login identifier)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
