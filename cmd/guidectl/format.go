package main

import (
	"encoding/json"
	"fmt"
	"io"

	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/rag/response"
	"craftguide-be/pkg/tools"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	muted   = color.New(color.FgHiBlack)
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func tierColor(tier knowledge.RelevanceTier) *color.Color {
	switch tier {
	case knowledge.TierHigh:
		return color.New(color.FgGreen)
	case knowledge.TierMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printResults(w io.Writer, results []knowledge.SearchResult) {
	if len(results) == 0 {
		muted.Fprintln(w, "No matching articles.")
		return
	}
	for i, r := range results {
		heading.Fprintf(w, "%d. %s", i+1, r.Article.Title)
		tierColor(r.RelevanceTier).Fprintf(w, "  %.2f %s\n", r.Score, r.RelevanceTier)
		muted.Fprintf(w, "   %s | %s | %v\n", r.Article.ID, r.Article.Difficulty, r.Article.CraftTypes)
	}
}

func printGuidance(w io.Writer, resp *response.GuidanceResponse) {
	heading.Fprintln(w, "Guidance")
	if resp.ContentAvailable {
		fmt.Fprintln(w, resp.Content)
	} else {
		muted.Fprintln(w, "(no generated content)")
	}

	confidence := color.New(color.FgGreen)
	if resp.Degraded {
		confidence = color.New(color.FgYellow)
	}
	confidence.Fprintf(w, "\nConfidence: %d%%\n", resp.Confidence)

	heading.Fprintln(w, "\nCited knowledge")
	printResults(w, resp.CitedKnowledge)

	if len(resp.Suggestions) > 0 {
		heading.Fprintln(w, "\nSuggestions")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	heading.Fprintln(w, "\nFollow-up questions")
	for _, q := range resp.FollowUpQuestions {
		fmt.Fprintf(w, "  ? %s\n", q)
	}

	if len(resp.ToolRecommendations) > 0 {
		heading.Fprintln(w, "\nTool recommendations")
		printRecommendations(w, resp.ToolRecommendations)
	}
	muted.Fprintf(w, "\n%s in %dms\n", resp.QueryID, resp.ProcessingTimeMs)
}

func printRecommendations(w io.Writer, recs []tools.Recommendation) {
	if len(recs) == 0 {
		muted.Fprintln(w, "No recommendations.")
		return
	}
	for _, r := range recs {
		fmt.Fprintf(w, "  [%s] %s (%s)", r.Priority, r.ToolName, r.Category)
		if r.EstimatedCost != nil {
			fmt.Fprintf(w, " ~$%.0f", *r.EstimatedCost)
		}
		fmt.Fprintln(w)
		muted.Fprintf(w, "      %s\n", r.Reason)
	}
}
