package cmd

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"docnav/internal/router"
)

// categoriesCmd prints the routing table.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the topic categories and their routing keywords",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Keywords", "Tags"})
		table.SetRowLine(true)
		table.SetColWidth(60)

		for _, rule := range router.Rules() {
			table.Append([]string{
				string(rule.Category),
				strings.Join(rule.Keywords, ", "),
				strings.Join(rule.Tags, ", "),
			})
		}
		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
