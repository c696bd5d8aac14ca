package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/taxref/internal/cli"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/query"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

// Cells longer than this are truncated in tables.
const maxCellWidth = 40

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search income and occupation categories",
		Long: `Search both collections. Income categories match on name, code,
description, examples and notes; occupation categories on name, code,
description and category. Matching is case-insensitive substring matching.
Without a query every entry is listed.`,
		RunE: runSearch,
	}

	cmd.Flags().String("kind", "all", "collection to search (income, occupation, all)")
	cmd.Flags().Bool("json", false, "print results as JSON")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kinds, err := parseKinds(kindFlag)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	q := joinQuery(args)
	engine := newEngine()
	results := engine.Search(q)

	if len(kinds) == 1 {
		switch kinds[0] {
		case model.KindIncome:
			results.Occupations = []model.OccupationCategory{}
		case model.KindOccupation:
			results.Income = []model.IncomeCategory{}
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return cli.WriteJSON(out, cli.SearchOutput{
			Query:       q,
			Income:      results.Income,
			Occupations: results.Occupations,
		})
	}

	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeResults(out, kind, q, results, engine.Total(kind)); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(w io.Writer, kind model.Kind, q string, results query.Results, total int) error {
	fmt.Fprintln(w, cli.TitleStyle.Render(themes.KindIcon(kind)+" "+kind.Label()))
	fmt.Fprintln(w, cli.SubtitleStyle.Render(viewmodel.ListHeader(kind, q, results.Count(kind), total)))

	if results.Count(kind) == 0 {
		empty := viewmodel.EmptyState(kind)
		fmt.Fprintln(w, empty.Title)
		fmt.Fprintln(w, cli.SubtleStyle.Render(empty.Hint))
		return nil
	}

	var table *cli.Table
	switch kind {
	case model.KindOccupation:
		table = cli.NewTable(viewmodel.LabelCode, "名稱", viewmodel.LabelCategory, viewmodel.LabelResident, viewmodel.LabelNonResident)
		for _, c := range results.Occupations {
			table.Append(c.Code, c.Name, c.Category, c.TaxRate.Resident, c.TaxRate.NonResident)
		}
	default:
		table = cli.NewTable(viewmodel.LabelCode, "名稱", viewmodel.LabelResident, viewmodel.LabelNonResident)
		for _, c := range results.Income {
			table.Append(c.Code, c.Name, c.TaxRate.Resident, c.TaxRate.NonResident)
		}
	}
	return table.SetMaxWidth(maxCellWidth).Render(w)
}
