package main

import (
	"context"
	"strings"

	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/knowledge"

	"github.com/spf13/cobra"
)

var (
	searchCrafts       []string
	searchDifficulties []string
	searchCategories   []string
	searchLimit        int
	searchMinScore     float64
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Rank knowledge articles against a question",
	Long: `Rank knowledge articles against free text and optional filters.

With no text every article scores 0; pass --min-score 0 to list everything
passing the filters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchCrafts, "craft", nil, "Craft type filter (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchDifficulties, "difficulty", nil, "Difficulty filter (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchCategories, "category", nil, "Category filter (repeatable)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", knowledge.DefaultSearchLimit, "Maximum results")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", knowledge.DefaultMinScore, "Minimum relevance score in [0,1]")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ranker, _, err := loadRanker()
	if err != nil {
		return err
	}

	q := knowledge.NewSearchQuery(strings.Join(args, " "))
	q.Limit = searchLimit
	q.MinScore = searchMinScore
	q.Filters.CraftTypes = craft.NormalizeSet(searchCrafts)
	for _, d := range searchDifficulties {
		q.Filters.Difficulties = append(q.Filters.Difficulties, knowledge.Difficulty(strings.ToLower(d)))
	}
	for _, c := range searchCategories {
		q.Filters.Categories = append(q.Filters.Categories, knowledge.Category(strings.ToLower(c)))
	}

	results, err := ranker.Search(context.Background(), q)
	if err != nil {
		return err
	}
	if jsonFlag {
		return printJSON(cmd.OutOrStdout(), results)
	}
	printResults(cmd.OutOrStdout(), results)
	return nil
}
