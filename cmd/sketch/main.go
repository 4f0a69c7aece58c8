package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voicesketch/config"
	"voicesketch/internal/ai"
	aiutils "voicesketch/internal/ai/utils"
	"voicesketch/internal/logger"
	"voicesketch/internal/mockup"
	"voicesketch/internal/speech"
)

func main() {
	var (
		configPath string
		prompt     string
		mode       string
		apiKey     string
		outDir     string
		outName    string
		audioPath  string
	)

	rootCmd := &cobra.Command{
		Use:   "sketch",
		Short: "Turn a spoken or typed description into an HTML mockup",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mockup and write it to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zlog, err := setup(configPath)
			if err != nil {
				return err
			}
			if audioPath != "" {
				text, err := transcribeFile(cmd.Context(), cfg, zlog, audioPath)
				if err != nil {
					return err
				}
				fmt.Printf("Heard: %s\n", text)
				prompt = text
			}
			return runGenerate(cmd.Context(), cfg, zlog, mode, prompt, resolveKey(apiKey, cfg), outDir, outName)
		},
	}
	generateCmd.Flags().StringVar(&prompt, "prompt", "", "Description of the component")
	generateCmd.Flags().StringVar(&mode, "mode", "", "Generation mode: local or remote (defaults to DEFAULT_MODE)")
	generateCmd.Flags().StringVar(&outDir, "out", "mockups", "Output directory")
	generateCmd.Flags().StringVar(&outName, "name", "", "Output file name (defaults to a generated ID)")
	generateCmd.Flags().StringVar(&audioPath, "audio", "", "Audio file to transcribe and use as the prompt")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List the models visible to the API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zlog, err := setup(configPath)
			if err != nil {
				return err
			}
			gen := ai.NewGenerator(cfg.GeminiBaseURL, ai.WithLogger(zlog))
			models, err := gen.AvailableModels(cmd.Context(), resolveKey(apiKey, cfg))
			if err != nil {
				return err
			}
			if len(models) == 0 {
				fmt.Println("No models found. The API key might be invalid.")
				return nil
			}
			for _, m := range models {
				fmt.Println(m)
			}
			return nil
		},
	}

	transcribeCmd := &cobra.Command{
		Use:   "transcribe",
		Short: "Transcribe an audio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zlog, err := setup(configPath)
			if err != nil {
				return err
			}
			text, err := transcribeFile(cmd.Context(), cfg, zlog, audioPath)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	transcribeCmd.Flags().StringVar(&audioPath, "file", "", "Audio file to transcribe")
	_ = transcribeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(generateCmd, modelsCmd, transcribeCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func setup(configPath string) (config.Config, *zap.Logger, error) {
	_ = godotenv.Load()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger.New(cfg.LogLevel, cfg.LogFormat), nil
}

func resolveKey(flagKey string, cfg config.Config) string {
	if flagKey != "" {
		return flagKey
	}
	return cfg.GeminiAPIKey
}

func runGenerate(ctx context.Context, cfg config.Config, zlog *zap.Logger, mode, prompt, apiKey, outDir, outName string) error {
	if mode == "" {
		mode = cfg.DefaultMode
	}

	var gen mockup.Generator
	switch mode {
	case config.ModeLocal:
		gen = mockup.NewLocalGenerator(zlog)
	case config.ModeRemote:
		gen = ai.NewGenerator(cfg.GeminiBaseURL, ai.WithModels(cfg.ModelCandidates), ai.WithLogger(zlog))
	default:
		return fmt.Errorf("unknown mode %q: use %q or %q", mode, config.ModeLocal, config.ModeRemote)
	}

	doc, label := gen.Generate(ctx, prompt, apiKey)

	if outName == "" {
		outName = "mockup-" + uuid.New().String()
	}
	path, err := aiutils.SaveDocument(outDir, outName, doc)
	if err != nil {
		return err
	}
	fmt.Printf("%s -> %s\n", label, path)
	if label == mockup.ErrorLabel {
		return fmt.Errorf("generation failed, see %s", path)
	}
	return nil
}

func transcribeFile(ctx context.Context, cfg config.Config, zlog *zap.Logger, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", speech.ErrDeviceUnavailable, err)
	}
	defer f.Close()

	t := speech.NewWhisperTranscriber(cfg.SpeechAPIKey, cfg.SpeechBaseURL, cfg.SpeechModel, zlog)
	text, err := t.Transcribe(ctx, filepath.Base(path), f)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
