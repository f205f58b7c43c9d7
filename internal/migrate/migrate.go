package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

// Opener returns a database handle and a function releasing it.
type Opener func(ctx context.Context) (*sql.DB, func(), error)

const dirFlag = "dir"

// newMigrateFlags returns a flag set owned by a single subcommand.
func newMigrateFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		dirFlag: &cobraflags.StringFlag{
			Name:  dirFlag,
			Value: "migrations",
			Usage: "Directory containing goose SQL migrations",
		},
	}
}

// NewCommand builds the migrator command tree: up, down and status.
func NewCommand(open Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migrator",
		Short:         "Manage the employees database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGooseCommand(open, "up", "Apply all pending migrations", goose.Up),
		newGooseCommand(open, "down", "Roll back the most recent migration", goose.Down),
		newGooseCommand(open, "status", "Print the status of all migrations", goose.Status),
	)

	return rootCmd
}

func newGooseCommand(open Opener, use, short string, action func(*sql.DB, string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dtb, release, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer release()

			if err = goose.SetDialect("postgres"); err != nil {
				return fmt.Errorf("failed to set dialect: %w", err)
			}

			dir, err := cmd.Flags().GetString(dirFlag)
			if err != nil {
				return fmt.Errorf("failed to read --%s: %w", dirFlag, err)
			}

			if err = action(dtb, dir); err != nil {
				return fmt.Errorf("migration %s failed: %w", use, err)
			}

			return nil
		},
	}

	cobraflags.RegisterMap(cmd, newMigrateFlags())

	return cmd
}
