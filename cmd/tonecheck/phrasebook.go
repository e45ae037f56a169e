package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tone-backend/internal/phrasebook"
	"tone-backend/internal/shared/storage/db"
)

var phrasebookCmd = &cobra.Command{
	Use:   "phrasebook",
	Short: "Manage rewrite tables",
}

var phrasebookSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in rewrite tables into Postgres",
	Long: `Write the built-in rewrite tables, merged with PHRASEBOOK_PATH when set,
into the database named by DATABASE_URL. Migrations run first.

Examples:
  tonecheck phrasebook seed
  PHRASEBOOK_PATH=house-style.yaml tonecheck phrasebook seed`,
	Args: cobra.NoArgs,
	RunE: runPhrasebookSeed,
}

func init() {
	rootCmd.AddCommand(phrasebookCmd)
	phrasebookCmd.AddCommand(phrasebookSeedCmd)
}

func runPhrasebookSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	tables := phrasebook.Builtin()
	if cfg.PhrasebookPath != "" {
		fileTables, err := phrasebook.LoadFile(cfg.PhrasebookPath)
		if err != nil {
			return fmt.Errorf("load phrasebook %s: %w", cfg.PhrasebookPath, err)
		}
		tables = tables.Merge(fileTables)
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	repo := &phrasebook.PGRepo{DB: sqlDB}
	if err := repo.Save(ctx, tables); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "seeded %d emotions\n", len(tables.Replacements))
	return nil
}
