package main

import (
	"fmt"

	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/tools"

	"github.com/spf13/cobra"
)

var (
	toolsLevel string
	toolsOwned []string
)

var toolsCmd = &cobra.Command{
	Use:   "tools <craft>",
	Short: "Recommend tools for a craft and skill level",
	Args:  cobra.ExactArgs(1),
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().StringVar(&toolsLevel, "level", "novice", "Skill level: novice, apprentice, journeyman, craftsman, master")
	toolsCmd.Flags().StringSliceVar(&toolsOwned, "owned", nil, "Owned tools (repeatable)")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	level, ok := craft.ParseSkillLevel(toolsLevel)
	if !ok {
		return fmt.Errorf("unknown skill level %q", toolsLevel)
	}

	recs := []tools.Recommendation{}
	if craftType, ok := craft.ParseCraftType(args[0]); ok {
		recs = tools.NewRecommender(tools.DefaultCatalog()).Recommend(craftType, level, toolsOwned)
	}

	if jsonFlag {
		return printJSON(cmd.OutOrStdout(), recs)
	}
	printRecommendations(cmd.OutOrStdout(), recs)
	return nil
}
