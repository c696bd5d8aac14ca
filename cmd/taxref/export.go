package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/taxref/internal/cli"
	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/config"
	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset to a SQLite database",
		Long: `Write every income category, occupation category, fee category and
detailed income item to a SQLite database. An existing export at the same
path is replaced.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("db", "", "database path (default: export.path from config)")
	cmd.Flags().BoolP("quiet", "q", false, "do not show a progress bar")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if strings.TrimSpace(dbPath) == "" {
		dbPath = viper.GetString(config.KeyExportPath)
	}
	dbPath = config.ExpandPath(dbPath)
	quiet, _ := cmd.Flags().GetBool("quiet")

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "close database", common.Fields{"path": dbPath})
		}
	}()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := handler.HandleInterrupts(cmd.Context(), "Export", "The database was left unchanged.")
	defer stop()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("%w: failed to run migrations: %w", common.ErrExportFailed, err)
	}

	snap := storage.Snapshot{
		Income:      dataset.Income(),
		Occupations: dataset.Occupations(),
		Fees:        dataset.FeeCategories(),
		Items:       dataset.DetailedItems(),
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = cli.NewProgressBar(cmd.ErrOrStderr(), snap.Rows(), "Exporting dataset...")
	}

	stats, err := store.Export(ctx, snap, cli.ProgressUpdater(bar))
	if err != nil {
		if handler.WasInterrupted() || ctx.Err() != nil {
			return common.NewUserError("export canceled", err)
		}
		return fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	summary := fmt.Sprintf("  • %s: %d\n", "所得類別", stats.Income) +
		fmt.Sprintf("  • %s: %d\n", "適用範例", stats.Examples) +
		fmt.Sprintf("  • %s: %d\n", "職務類別", stats.Occupations) +
		fmt.Sprintf("  • %s: %d\n", "費用別", stats.Fees) +
		fmt.Sprintf("  • %s: %d\n", "所得細項", stats.Items) +
		fmt.Sprintf("  • Database: %s", dbPath)

	out := cmd.OutOrStdout()
	if quiet {
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Exported %d rows to %s", stats.Total(), dbPath)))
		return nil
	}
	fmt.Fprintln(out, cli.RenderBox(cli.FolderIcon+" Export Complete", summary))
	return nil
}
