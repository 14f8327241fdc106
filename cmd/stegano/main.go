package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jamal135/image-steganography/internal/settings"
	"github.com/Jamal135/image-steganography/pkg"
	"github.com/Jamal135/image-steganography/pkg/logging"
	"github.com/Jamal135/image-steganography/pkg/steg"
)

const version = "1.0.0"

var (
	imagePath    string
	keyText      string
	payloadText  string
	methodName   string
	channelList  string
	bitList      string
	noiseFlag    bool
	settingsPath string
	logLevel     string
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "stegano",
		Short: "Hide and recover text in raster images",
		Long: `Hide text in the least significant bits of an image's pixels,
recoverable only with the same secret key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	insertCmd := &cobra.Command{
		Use:   "insert",
		Short: "Embed text into an image",
		RunE:  runInsert,
	}
	insertCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to source image (PNG or BMP, required)")
	insertCmd.Flags().StringVarP(&keyText, "key", "k", "", "Secret key (required)")
	insertCmd.Flags().StringVarP(&payloadText, "text", "t", "", "Text to embed (required)")
	insertCmd.Flags().StringVar(&methodName, "method", "", "Slot method: random or all (default random)")
	insertCmd.Flags().StringVar(&channelList, "channels", "", "Comma-separated channels, e.g. red,blue (default all)")
	insertCmd.Flags().StringVar(&bitList, "bits", "", "Comma-separated bit positions 0-7, 0 = MSB (default 6,7)")
	insertCmd.Flags().BoolVar(&noiseFlag, "noise", false, "Fill unused slots with random noise")
	insertCmd.Flags().StringVar(&settingsPath, "settings", "", "YAML file with embedding defaults")
	mustRequire(insertCmd, "image", "key", "text")

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Recover embedded text from an image",
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to embedded image (required)")
	extractCmd.Flags().StringVarP(&keyText, "key", "k", "", "Secret key (required)")
	mustRequire(extractCmd, "image", "key")

	rootCmd.AddCommand(insertCmd, extractCmd)
}

func mustRequire(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(err)
		}
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("stegano %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func effectiveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return logging.GetLogLevel()
}

// buildConfig layers CLI flags over the optional settings file.
func buildConfig() (steg.Config, error) {
	defaults := &settings.Settings{}
	if settingsPath != "" {
		loaded, err := settings.Load(settingsPath)
		if err != nil {
			return steg.Config{}, err
		}
		defaults = loaded
	}

	if methodName == "" {
		methodName = defaults.Method
	}
	method, err := steg.ParseMethod(methodName)
	if err != nil {
		return steg.Config{}, err
	}

	names := defaults.Channels
	if channelList != "" {
		names = strings.Split(channelList, ",")
	}
	channels, err := settings.ParseChannels(names)
	if err != nil {
		return steg.Config{}, err
	}

	positions := defaults.Bits
	if bitList != "" {
		positions = nil
		for _, part := range strings.Split(bitList, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return steg.Config{}, fmt.Errorf("invalid bit position %q", part)
			}
			positions = append(positions, p)
		}
	}

	noise := noiseFlag || defaults.Noise
	return steg.NewConfig(method, channels, positions, noise)
}

func runInsert(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("stegano", effectiveLogLevel(), nil)

	cfg, err := buildConfig()
	if err != nil {
		logger.Error("❌ invalid configuration", "error", err)
		return err
	}

	outPath, err := pkg.InsertFile(pkg.InsertOptions{
		ImagePath: imagePath,
		Key:       keyText,
		Text:      payloadText,
		Config:    cfg,
		Logger:    logger.Named("insert"),
	})
	if err != nil {
		logger.Error("❌ insert failed", "error", err)
		return err
	}
	fmt.Printf("Embedded %d bytes → %s\n", len(payloadText), outPath)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("stegano", effectiveLogLevel(), nil)

	text, err := pkg.ExtractFile(imagePath, keyText, logger.Named("extract"))
	if err != nil {
		logger.Error("❌ extract failed", "error", err)
		return err
	}
	fmt.Println(text)
	return nil
}
