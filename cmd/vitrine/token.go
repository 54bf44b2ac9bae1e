package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/vitrine/config"
	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/service"
)

func newTokenCmd(configPath *string) *cobra.Command {
	var (
		userID int64
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if userID <= 0 {
				return fmt.Errorf("--user must be positive")
			}

			r := domain.Role(strings.ToUpper(role))
			if r != domain.RoleAdmin && r != domain.RoleUser {
				return fmt.Errorf("unknown role %q", role)
			}

			token, err := service.NewAuthService(cfg.JWTSecret).Issue(domain.Requester{ID: userID, Role: r}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&userID, "user", "u", 1, "user id carried by the token")
	cmd.Flags().StringVarP(&role, "role", "r", string(domain.RoleUser), "USER or ADMIN")
	cmd.Flags().DurationVar(&ttl, "ttl", service.DefaultTokenTTL, "token lifetime")
	return cmd
}
