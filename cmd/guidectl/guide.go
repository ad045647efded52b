package main

import (
	"context"
	"strings"

	"craftguide-be/internal/config"
	"craftguide-be/internal/pkg/logger"
	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/llm"
	"craftguide-be/pkg/llm/factory"
	"craftguide-be/pkg/rag/response"
	"craftguide-be/pkg/tools"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	guideCrafts []string
	guideLevel  string
	guideOwned  []string
	guideTools  bool
	guideLLM    bool
)

var guideCmd = &cobra.Command{
	Use:   "guide <question>",
	Short: "Compose contextual guidance for a question",
	Long: `Compose a guidance response: cited articles, confidence, suggestions and
follow-up questions. Narrative content is generated only with --llm, using the
LLM_PROVIDER settings from the environment.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGuide,
}

func init() {
	guideCmd.Flags().StringSliceVar(&guideCrafts, "craft", nil, "Craft specialization (repeatable, first is primary)")
	guideCmd.Flags().StringVar(&guideLevel, "level", "", "Skill level: novice, apprentice, journeyman, craftsman, master")
	guideCmd.Flags().StringSliceVar(&guideOwned, "owned", nil, "Owned tools (repeatable)")
	guideCmd.Flags().BoolVar(&guideTools, "tools", false, "Include tool recommendations")
	guideCmd.Flags().BoolVar(&guideLLM, "llm", false, "Generate narrative content with the configured LLM")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	ranker, _, err := loadRanker()
	if err != nil {
		return err
	}

	level, ok := craft.ParseSkillLevel(guideLevel)
	if guideLevel != "" && !ok {
		color.Yellow("Unknown skill level %q, treating as unknown", guideLevel)
	}

	var generator response.ContentGenerator
	cfg := response.DefaultConfig()
	if guideLLM {
		appCfg := config.Load()
		provider, err := factory.NewLLMProvider(appCfg.Ai.LLMProvider, appCfg.Ai.LLMModel, baseURL(appCfg.Ai), appCfg.Ai.OpenAIAPIKey)
		if err != nil {
			return err
		}
		generator = response.NewLLMGenerator(llm.NewRetryingProvider(provider, appCfg.Ai.Retries, 0), nil)
		cfg.GenerationTimeout = appCfg.Guidance.GenerationTimeout
	}

	composer := response.NewComposer(ranker, generator, tools.NewRecommender(tools.DefaultCatalog()), cfg, logger.NewNopLogger())
	resp := composer.Compose(context.Background(), response.Request{
		Text: strings.Join(args, " "),
		User: craft.UserContext{
			CraftSpecializations: guideCrafts,
			SkillLevel:           level,
			OwnedTools:           guideOwned,
		},
		IncludeTools: guideTools,
	})

	if jsonFlag {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printGuidance(cmd.OutOrStdout(), resp)
	return nil
}

func baseURL(ai config.AIConfig) string {
	if ai.LLMProvider == "ollama" {
		return ai.OllamaBaseURL
	}
	return ai.OpenAIBaseURL
}
