package main

import (
	"errors"
	"fmt"
	"time"

	"aircraft-factory-backend/internal/auth"
	"aircraft-factory-backend/internal/repository"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var tokenCmd = &cobra.Command{
	Use:   "token <username>",
	Short: "Mint a bearer token for an existing user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(false)
		if err != nil {
			return err
		}

		user, err := repository.NewStore(db).Users().GetByUsername(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %q not found", args[0])
			}
			return err
		}

		authService, err := auth.NewAuthServiceFromConfig(cfg)
		if err != nil {
			return err
		}
		token, expiresAt, err := authService.GenerateToken(user.ID, user.Username)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
		return nil
	},
}
