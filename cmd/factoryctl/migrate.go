package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := openDatabase(true); err != nil {
			return err
		}
		logrus.Info("Schema is up to date")
		return nil
	},
}
