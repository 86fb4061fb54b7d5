// Package main provides the entry point for the elevenify CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgnsrekt/elevenify/elevenlabs"
	"github.com/dgnsrekt/elevenify/format"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile      string
	inputFile       string
	splitOutput     bool
	startLine       int
	lastLine        int
	estimateCredits bool
	pauseSeconds    float64
	pauseSet        bool
	lastLineSet     bool
	voiceName       string
	modelID         string
	audioType       string
	audioRate       int
	apiKeyFlag      string
	listVoices      bool
	showCredits     bool

	// outputFormat is resolved from --type/--rate during validation.
	outputFormat format.Descriptor

	knownModels = []string{
		"eleven_monolingual_v1",
		"eleven_multilingual_v1",
		"eleven_multilingual_v2",
		"eleven_turbo_v2",
	}

	rootCmd = &cobra.Command{
		Use:   "elevenify [text]",
		Short: "Convert text to speech with the ElevenLabs API",
		Long: paragraph(
			fmt.Sprintf("\nConvert text to audio files, %s.", keyword("one line at a time")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	voiceName = viper.GetString("voice")
	modelID = viper.GetString("model")
	audioType = viper.GetString("type")
	audioRate = viper.GetInt("rate")

	pauseSet = cmd.Flags().Changed("pause")
	lastLineSet = cmd.Flags().Changed("last-line")

	if !containsString(knownModels, modelID) {
		return fmt.Errorf("invalid model %q: valid models are %s", modelID, strings.Join(knownModels, ", "))
	}

	var err error
	outputFormat, err = format.Resolve(audioType, audioRate)
	if err != nil {
		return err
	}

	if startLine < 1 {
		return errors.New("--start-line must be a positive integer")
	}
	if startLine > 1 && inputFile == "" {
		return errors.New("--start-line requires --file")
	}
	if lastLineSet {
		if inputFile == "" {
			return errors.New("--last-line requires --file")
		}
		if lastLine < 1 {
			return errors.New("--last-line must be a positive integer")
		}
		if lastLine < startLine {
			return errors.New("--last-line must not be less than --start-line")
		}
	}
	if estimateCredits && inputFile == "" {
		return errors.New("--estimate-credits requires --file")
	}
	if pauseSet {
		if inputFile == "" {
			return errors.New("--pause requires --file")
		}
		if splitOutput {
			return errors.New("--pause cannot be used with --split")
		}
		if pauseSeconds < 0.0 || pauseSeconds > 30.0 {
			return errors.New("--pause must be between 0.0 and 30.0 seconds")
		}
		// Merged output is decoded clip by clip; beep cannot decode these.
		if audioType == "ulaw" || audioType == "alaw" || audioType == "opus" {
			return fmt.Errorf("--pause is not supported for type %s (use mp3 or pcm)", audioType)
		}
	}

	return nil
}

func execute(cmd *cobra.Command, args []string) error {
	cfg, err := elevenlabs.ConfigFromEnv()
	if err != nil {
		return err
	}
	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	client := elevenlabs.NewClient(cfg)
	ctx := cmd.Context()

	if showCredits {
		return printCredits(ctx, client)
	}
	if listVoices {
		return printVoices(ctx, client)
	}

	var directText string
	if len(args) > 0 {
		directText = args[0]
	}
	if directText == "" && inputFile == "" {
		return errors.New("either text or --file must be provided")
	}

	return runSynthesis(ctx, client, directText)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input text file")
	rootCmd.Flags().BoolVarP(&splitOutput, "split", "s", false, "split the input file into one output file per line")
	rootCmd.Flags().IntVar(&startLine, "start-line", 1, "line number to start processing from (requires --file)")
	rootCmd.Flags().IntVar(&lastLine, "last-line", 0, "last line number to process (requires --file, default end of file)")
	rootCmd.Flags().BoolVar(&estimateCredits, "estimate-credits", false, "estimate lines convertible with remaining credits (requires --file)")
	rootCmd.Flags().Float64Var(&pauseSeconds, "pause", 0, "pause in seconds between lines, merged into one WAV file (requires --file, not --split, 0.0 to 30.0)")
	rootCmd.Flags().StringVarP(&voiceName, "voice", "w", "Adam", "voice name or ID")
	rootCmd.Flags().StringVarP(&modelID, "model", "m", "eleven_multilingual_v2", fmt.Sprintf("model to use (%s)", strings.Join(knownModels, ", ")))
	rootCmd.Flags().StringVarP(&audioType, "type", "t", "mp3", fmt.Sprintf("audio output type (%s)", strings.Join(format.Types(), ", ")))
	rootCmd.Flags().IntVarP(&audioRate, "rate", "r", 128, "bitrate for mp3/opus or sample rate for pcm/ulaw/alaw")
	rootCmd.Flags().StringVarP(&apiKeyFlag, "key", "k", "", "ElevenLabs API key (overrides LABSKEY)")
	rootCmd.Flags().BoolVarP(&listVoices, "list", "l", false, "list available voices")
	rootCmd.Flags().BoolVarP(&showCredits, "credits", "c", false, "show remaining character credits")

	// Config bindings
	_ = viper.BindPFlag("voice", rootCmd.Flags().Lookup("voice"))
	_ = viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("type", rootCmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("rate", rootCmd.Flags().Lookup("rate"))

	viper.SetDefault("voice", "Adam")
	viper.SetDefault("model", "eleven_multilingual_v2")
	viper.SetDefault("type", "mp3")
	viper.SetDefault("rate", 128)

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "elevenify")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "elevenify")}, dirs...)
	}

	if c := os.Getenv("ELEVENIFY_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("elevenify")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("elevenify")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "elevenify.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
