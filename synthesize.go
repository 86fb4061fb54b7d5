package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dgnsrekt/elevenify/audio"
	"github.com/dgnsrekt/elevenify/elevenlabs"
	"github.com/dgnsrekt/elevenify/outfile"
	"github.com/dgnsrekt/elevenify/script"
)

// builder picks output filenames in the working directory.
var builder = &outfile.Builder{}

// runSynthesis drives the whole text-to-audio pipeline for one invocation.
func runSynthesis(ctx context.Context, client *elevenlabs.Client, directText string) error {
	voice, err := client.ResolveVoice(ctx, voiceName)
	if err != nil {
		return err
	}

	if inputFile == "" {
		return synthesizeToFile(ctx, client, voice, directText, outfile.Request{
			Voice:  voice.Name,
			Format: outputFormat,
		})
	}

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("unable to read input file: %w", err)
	}
	text := string(raw)

	lineCount := script.LineCount(text)
	if startLine > lineCount {
		return fmt.Errorf("--start-line %d exceeds file line count (%d)", startLine, lineCount)
	}
	if lastLineSet && lastLine > lineCount {
		return fmt.Errorf("--last-line %d exceeds file line count (%d)", lastLine, lineCount)
	}
	last := lastLine
	if !lastLineSet {
		last = lineCount
	}
	prefix := outfile.FilePrefix(inputFile)

	if estimateCredits {
		return runEstimate(ctx, client, text, startLine, last)
	}

	if splitOutput {
		return synthesizeSplit(ctx, client, voice, text, startLine, last, prefix)
	}
	return synthesizeCombined(ctx, client, voice, text, startLine, last, prefix)
}

// synthesizeSplit writes one file per segment. A failed segment is logged and
// the rest are still attempted.
func synthesizeSplit(ctx context.Context, client *elevenlabs.Client, voice elevenlabs.Voice, text string, start, last int, prefix string) error {
	segments, err := script.Segments(text, start, last)
	if err != nil {
		return err
	}
	for _, seg := range segments {
		req := outfile.Request{
			Voice:       voice.Name,
			Format:      outputFormat,
			Prefix:      prefix,
			FirstSample: seg.Sample,
		}
		if err := synthesizeToFile(ctx, client, voice, seg.Text, req); err != nil {
			log.Error("Error generating audio", "sample", seg.Sample, "err", err)
		}
	}
	return nil
}

// synthesizeCombined joins the in-range content lines into one request, or
// hands off to the pause merge when a pause was asked for.
func synthesizeCombined(ctx context.Context, client *elevenlabs.Client, voice elevenlabs.Voice, text string, start, last int, prefix string) error {
	lines, err := script.Classify(text, start, last)
	if err != nil {
		return err
	}

	var content []string
	firstSample, lastSample := 0, 0
	for _, l := range lines {
		if !l.InRange || l.Content == "" {
			continue
		}
		if firstSample == 0 {
			firstSample = l.Sample
		}
		lastSample = l.Sample
		content = append(content, l.Content)
	}
	if len(content) == 0 {
		fmt.Println("No non-comment lines to process in the specified line range.")
		return nil
	}

	req := outfile.Request{
		Voice:       voice.Name,
		Format:      outputFormat,
		Prefix:      prefix,
		FirstSample: firstSample,
		LastSample:  lastSample,
	}
	if pauseSet && len(content) > 1 {
		return synthesizeMerged(ctx, client, voice, content, req)
	}
	return synthesizeToFile(ctx, client, voice, strings.Join(content, " "), req)
}

// synthesizeToFile makes one synthesis call and streams the response into a
// freshly named output file.
func synthesizeToFile(ctx context.Context, client *elevenlabs.Client, voice elevenlabs.Voice, text string, req outfile.Request) error {
	filename, err := builder.Build(req)
	if err != nil {
		return err
	}

	stream, err := client.Synthesize(ctx, voice.ID, elevenlabs.SynthesisRequest{
		Text:         text,
		ModelID:      modelID,
		OutputFormat: outputFormat.ID,
	})
	if err != nil {
		return fmt.Errorf("error generating audio: %w", err)
	}
	defer stream.Close() //nolint:errcheck

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if _, err := io.Copy(f, stream); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("unable to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close output file: %w", err)
	}

	printGenerated(filename)
	return nil
}

// synthesizeMerged makes one synthesis call per line, then merges the clips
// with silence in between into a single WAV file. Any failed call abandons
// the whole request.
func synthesizeMerged(ctx context.Context, client *elevenlabs.Client, voice elevenlabs.Voice, lines []string, req outfile.Request) error {
	// The merge re-encodes; the container is WAV no matter the input type.
	req.Format.Extension = "wav"
	filename, err := builder.Build(req)
	if err != nil {
		return err
	}

	clips := make([][]byte, 0, len(lines))
	for i, line := range lines {
		stream, err := client.Synthesize(ctx, voice.ID, elevenlabs.SynthesisRequest{
			Text:         line,
			ModelID:      modelID,
			OutputFormat: outputFormat.ID,
		})
		if err != nil {
			return fmt.Errorf("error generating audio for line %d: %w", i+1, err)
		}
		data, readErr := io.ReadAll(stream)
		stream.Close() //nolint:errcheck,gosec
		if readErr != nil {
			return fmt.Errorf("error reading audio for line %d: %w", i+1, readErr)
		}
		clips = append(clips, data)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	pause := time.Duration(pauseSeconds * float64(time.Second))
	if err := audio.MergeWithSilence(clips, pause, f); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("error merging audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close output file: %w", err)
	}

	printGenerated(filename)
	return nil
}
