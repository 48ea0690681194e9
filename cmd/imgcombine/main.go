package main

import (
	"fmt"
	"os"

	"github.com/nvr-ai/go-combiner/combine"
	"github.com/nvr-ai/go-combiner/config"
	"github.com/nvr-ai/go-combiner/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgcombine <image1> <image2> <output>",
		Short: "Combine two images by alternating their pixels",
		Long: `Loads two images of the same format, resizes them to a common size and
writes an image whose pixels alternate between the first and the second.
The output is encoded in the format of the first image.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCombine,
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.String("config", "", "YAML configuration file")
	flags.String("filter", def.Filter, "Resampling filter (nearest, triangle, catmullrom, mitchell, lanczos2, lanczos3)")
	flags.Int("jpeg-quality", def.JPEGQuality, "JPEG quality (1-100)")
	flags.String("png-compression", def.PNGCompression, "PNG compression (default, none, fast, best)")
	flags.Bool("webp-lossless", def.WebPLossless, "Encode WebP losslessly")
	flags.Float32("webp-quality", def.WebPQuality, "Lossy WebP quality (0-100)")
	flags.String("log-level", def.Log.Level, "Log level (debug, info, warn, error)")
	flags.String("log-format", def.Log.Format, "Log format (console, json)")

	return cmd
}

// positional pads args to the three paths, using "" for any that are missing.
func positional(args []string) (image1, image2, output string) {
	padded := make([]string, 3)
	copy(padded, args)
	return padded[0], padded[1], padded[2]
}

// loadConfig reads the --config file, if any, and applies the flags the
// user set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("filter") {
		cfg.Filter, _ = flags.GetString("filter")
	}
	if flags.Changed("jpeg-quality") {
		cfg.JPEGQuality, _ = flags.GetInt("jpeg-quality")
	}
	if flags.Changed("png-compression") {
		cfg.PNGCompression, _ = flags.GetString("png-compression")
	}
	if flags.Changed("webp-lossless") {
		cfg.WebPLossless, _ = flags.GetBool("webp-lossless")
	}
	if flags.Changed("webp-quality") {
		cfg.WebPQuality, _ = flags.GetFloat32("webp-quality")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

func runCombine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts, err := cfg.CombineOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	image1, image2, output := positional(args)
	result, err := combine.NewCombiner(opts).Run(image1, image2, output)
	if err != nil {
		logger.Error("failed to combine images", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s %s, from %s and %s)\n",
		result.Output, result.Format, result.Dimensions, result.Image1, result.Image2)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
