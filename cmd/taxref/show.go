package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/taxref/internal/cli"
	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/selection"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <income|occupation> <code>",
		Short: "Show the full details of one entry",
		Example: `  taxref show income 9B
  taxref show occupation 30`,
		Args: cobra.ExactArgs(2),
		RunE: runShow,
	}
	cmd.Flags().Bool("json", false, "print the entry as JSON")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	entry, err := lookupEntry(kind, args[1])
	if err != nil {
		return err
	}

	var sel selection.State
	sel.Select(&entry)
	current, _ := sel.Current()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if current.Kind == model.KindIncome {
			return cli.WriteJSON(cmd.OutOrStdout(), current.Income)
		}
		return cli.WriteJSON(cmd.OutOrStdout(), current.Occupation)
	}

	view := viewmodel.BuildDetail(current, dataset.FeeCategories(), dataset.DetailedItems())
	return cli.RenderDetail(cmd.OutOrStdout(), view)
}

// lookupEntry finds an entry the way the browser does: search for the code,
// then pick the match whose code is exactly that code.
func lookupEntry(kind model.Kind, code string) (model.Entry, error) {
	code = strings.TrimSpace(code)
	results := newEngine().Search(code)

	for _, entry := range results.Entries(kind) {
		if strings.EqualFold(entry.Code(), code) {
			return entry, nil
		}
	}

	return model.Entry{}, common.NewUserError(
		fmt.Sprintf("no %s with code %q", kind.Label(), code),
		fmt.Errorf("%s %s: %w", kind, code, common.ErrNotFound),
	)
}
