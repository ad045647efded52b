package main

import (
	"fmt"

	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/rag/search"

	"github.com/spf13/cobra"
)

var (
	corpusFlag string
	jsonFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "guidectl",
	Short: "Query a craft knowledge corpus from the terminal",
	Long: `guidectl loads a YAML knowledge corpus and runs the same ranking,
guidance and tool recommendation logic the REST service uses.

Examples:
  guidectl search "sharpening chisels" --craft woodworking
  guidectl guide "why does my pot crack in the kiln" --craft pottery --level novice
  guidectl tools pottery --level apprentice --owned "wire clay cutter"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&corpusFlag, "corpus", "data/knowledge.yaml", "Path to the YAML knowledge corpus")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print raw JSON instead of formatted output")
}

func loadRanker() (*search.Ranker, *knowledge.MemoryStore, error) {
	articles, err := knowledge.LoadCorpusFile(corpusFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("loading corpus: %w", err)
	}
	store, err := knowledge.NewMemoryStore(articles)
	if err != nil {
		return nil, nil, err
	}
	return search.NewRanker(store, nil), store, nil
}
