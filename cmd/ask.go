package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docnav/internal/guard"
	"docnav/internal/responder"
	"docnav/internal/router"
)

var (
	askResults      int
	askCodeExamples bool
)

// askCmd answers a single question from the terminal.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a documentation question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		query := guard.Sanitize(strings.Join(args, " "), appInstance.Config.Query.MaxLength)
		if err := guard.ValidateQuery(query, appInstance.Config.Query.MaxLength); err != nil {
			return err
		}

		if ok, rejection := appInstance.Guardrails.CheckInput(query); !ok {
			fmt.Println(rejection)
			return nil
		}

		classification := router.Classify(query)
		resp := appInstance.Responder.Respond(cmd.Context(), responder.Request{
			Query:               query,
			Classification:      classification,
			IncludeCodeExamples: askCodeExamples,
			MaxResults:          askResults,
		})
		resp.Answer = appInstance.Guardrails.CheckOutput(resp.Answer)

		heading := color.New(color.FgCyan, color.Bold)
		faint := color.New(color.Faint)

		heading.Printf("Category: ")
		fmt.Printf("%s (confidence %.2f)\n", resp.Category, resp.Confidence)
		if len(resp.MatchedKeywords) > 0 {
			faint.Printf("matched: %s\n", strings.Join(resp.MatchedKeywords, ", "))
		}
		fmt.Println()
		fmt.Println(resp.Answer)

		if len(resp.CodeExamples) > 0 {
			fmt.Println()
			heading.Println("Code examples:")
			for _, ex := range resp.CodeExamples {
				fmt.Printf("  - %s (%s)\n    %s\n", ex.Name, ex.Repo, ex.URL)
			}
		}
		faint.Printf("\nanswered by %s/%s\n", resp.Generation.Provider, resp.Generation.Model)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().IntVarP(&askResults, "results", "n", 0, "Maximum number of sources to cite")
	askCmd.Flags().BoolVar(&askCodeExamples, "code", true, "Include code example links")
}
