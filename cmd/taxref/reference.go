package main

import (
	"fmt"

	"github.com/Veraticus/taxref/internal/cli"
	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/query"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func feesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "List supplementary fee categories (費用別)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fees := dataset.FeeCategories()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return cli.WriteJSON(cmd.OutOrStdout(), fees)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(viewmodel.LabelFeeCategory))
			table := cli.NewTable(viewmodel.LabelCode, viewmodel.LabelDescription)
			for _, f := range fees {
				table.Append(f.Code, f.Description)
			}
			return table.Render(out)
		},
	}
	cmd.Flags().Bool("json", false, "print as JSON")
	return cmd
}

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items [query]",
		Short: "List detailed income items and their codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := query.FilterItems(joinQuery(args), dataset.DetailedItems())
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return cli.WriteJSON(cmd.OutOrStdout(), items)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("所得細項"))
			if len(items) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("沒有符合的項目"))
				return nil
			}

			table := cli.NewTable("編號", "項目", "所得類別", viewmodel.LabelFormatCode, "費用代碼", "扣補充保費", viewmodel.LabelNotes)
			for _, item := range items {
				health := ""
				if item.HealthInsurance {
					health = "是"
				}
				table.Append(fmt.Sprint(item.ID), item.Name, item.Code, item.FormatCode, item.FeeCode, health, item.Notes)
			}
			return table.SetMaxWidth(maxCellWidth).Render(out)
		},
	}
	cmd.Flags().Bool("json", false, "print as JSON")
	return cmd
}
