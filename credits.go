package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dgnsrekt/elevenify/elevenlabs"
	"github.com/dgnsrekt/elevenify/script"
)

// printCredits shows account-level character usage.
func printCredits(ctx context.Context, client *elevenlabs.Client) error {
	sub, err := client.Subscription(ctx)
	if err != nil {
		return fmt.Errorf("error fetching credits: %w", err)
	}

	fmt.Printf("Credits used: %s characters\n", humanize.Comma(int64(sub.CharacterCount)))
	fmt.Printf("Credits limit: %s characters\n", humanize.Comma(int64(sub.CharacterLimit)))
	fmt.Printf("Credits remaining: %s characters\n", humanize.Comma(int64(sub.Remaining())))
	return nil
}

// printVoices lists the remote voice catalog.
func printVoices(ctx context.Context, client *elevenlabs.Client) error {
	voices, err := client.Voices(ctx)
	if err != nil {
		return err
	}

	fmt.Println(keyword("Available ElevenLabs voices:"))
	for _, v := range voices {
		fmt.Printf(" - %s (ID: %s)\n", v.Name, v.ID)
	}
	return nil
}

// runEstimate reports how many in-range lines the remaining credits cover.
func runEstimate(ctx context.Context, client *elevenlabs.Client, text string, start, last int) error {
	sub, err := client.Subscription(ctx)
	if err != nil {
		return fmt.Errorf("error estimating credits: %w", err)
	}

	lines, err := script.Classify(text, start, last)
	if err != nil {
		return err
	}
	cost := script.ModelCreditCost(modelID)
	est := script.EstimateCredits(lines, cost, sub.Remaining())

	fmt.Printf("Remaining credits: %s\n", humanize.Comma(int64(est.CreditsRemaining)))
	fmt.Printf("Model: %s (%v credits per character)\n", modelID, est.CostPerChar)
	fmt.Printf("Lines that can be converted with current credits: %d\n", est.Lines)
	fmt.Printf("Characters for convertible lines: %s\n", humanize.Comma(int64(est.Chars)))
	fmt.Printf("Credits required for convertible lines: %s\n", humanize.Commaf(est.Credits))

	label := "Full file estimate"
	if start > 1 || lastLineSet {
		label += fmt.Sprintf(" (from line %d", start)
		if lastLineSet {
			label += fmt.Sprintf(" to line %d", last)
		}
		label += ")"
	}
	fmt.Printf("%s:\n", label)
	fmt.Printf("  Total lines: %d\n", est.RangeLines)
	fmt.Printf("  Total characters: %s\n", humanize.Comma(int64(est.RangeChars)))
	fmt.Printf("  Total credits required: %s\n", humanize.Commaf(est.RangeCredits))
	return nil
}

// printGenerated announces a finished output file.
func printGenerated(filename string) {
	fmt.Printf("Generated audio file: %s\n", keyword(filename))
}
