package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nemuizzz/sha2sum/pkg/batch"
	customhttp "github.com/nemuizzz/sha2sum/pkg/http"
	"github.com/nemuizzz/sha2sum/pkg/input"
	"github.com/nemuizzz/sha2sum/pkg/sha2"
	"github.com/nemuizzz/sha2sum/pkg/utils"
	"github.com/nemuizzz/sha2sum/pkg/version"
)

// Error definitions
var (
	ErrIncorrectInput = errors.New("Incorrect Input")
	ErrUnreadable     = errors.New("one or more sources could not be read")
	ErrDigestMismatch = errors.New("digest does not match expected value")
)

var (
	// Used for flags
	cfgFile string
	expect  string

	// rootCmd represents the base command
	rootCmd = &cobra.Command{
		Use:   "sha2sum <224|256> <file|url|-> [more...]",
		Short: "Compute SHA-224 and SHA-256 digests",
		Long: `sha2sum computes the SHA-224 or SHA-256 digest of each source given.
A source is a file path, an http(s) URL, or "-" for standard input.

Example:
  sha2sum 256 release.tar.gz
  sha2sum 224 https://example.com/index.html --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDigest,
	}
)

// Execute executes the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		configureLogger()
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sha2sum.yaml)")
	rootCmd.PersistentFlags().BoolP(keyVerbose, "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String(keyLogLevel, "warn", "log level (trace, debug, info, warn, error)")

	rootCmd.Flags().StringP(keyFormat, "f", formatText, "Output format (text/json)")
	rootCmd.Flags().IntP(keyWorkers, "w", batch.DefaultWorkers, "Number of sources hashed in parallel")
	rootCmd.Flags().DurationP(keyTimeout, "t", customhttp.DefaultClientOptions().Timeout, "Timeout for fetching URL sources")
	rootCmd.Flags().StringVarP(&expect, "expect", "e", "", "Expected digest; fail if the single source does not match")

	for _, name := range []string{keyVerbose, keyLogLevel} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	for _, name := range []string{keyFormat, keyWorkers, keyTimeout} {
		viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(selftestCmd)
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := getUserHomeDir()
		if err != nil {
			log.WithError(err).Debug("no home directory, skipping config file")
			return
		}

		// Search config in home directory with name ".sha2sum" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sha2sum")
	}

	viper.SetEnvPrefix("sha2sum")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func runDigest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) < 2 {
		return ErrIncorrectInput
	}

	variant, err := sha2.ParseVariant(args[0])
	if err != nil {
		return fmt.Errorf("Unknown SHA method '%s'", args[0])
	}
	sources := args[1:]

	format := outputFormat()
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid format '%s' (expected text or json)", format)
	}

	if expect != "" {
		if len(sources) != 1 {
			return errors.New("--expect needs exactly one source")
		}
		if !utils.IsHexDigest(utils.NormalizeDigest(expect), variant.Size()) {
			return fmt.Errorf("expected digest must be %d hex characters for %s", variant.Size(), variant)
		}
	}

	opts := customhttp.DefaultClientOptions()
	opts.Timeout = fetchTimeout()
	opts.UserAgent = version.UserAgent()
	reader := input.NewReader(opts)
	reader.Stdin = cmd.InOrStdin()

	runner, err := batch.NewRunner(reader, &batch.Config{
		Variant: variant,
		Workers: viper.GetInt(keyWorkers),
	})
	if err != nil {
		return err
	}
	defer runner.Release()

	log.WithFields(logrus.Fields{
		"variant": variant.String(),
		"sources": len(sources),
		"workers": viper.GetInt(keyWorkers),
	}).Debug("hashing")

	results := runner.Run(cmd.Context(), sources)
	for _, res := range results {
		if res.Err != nil {
			log.WithError(res.Err).WithField("source", res.Source).Debug("source failed")
		} else {
			log.WithFields(logrus.Fields{
				"source":  res.Source,
				"bytes":   res.Size,
				"blocks":  res.Blocks,
				"elapsed": res.Elapsed,
			}).Debug("digest computed")
		}

		if err := printResult(out, format, res); err != nil {
			return err
		}
	}

	if batch.Failed(results) > 0 {
		return ErrUnreadable
	}

	if expect != "" && !utils.DigestEqual(expect, results[0].Digest) {
		fmt.Fprintf(out, "Expected %s but got %s\n", utils.NormalizeDigest(expect), results[0].Digest)
		return ErrDigestMismatch
	}

	return nil
}

// printResult writes one result in the requested format
func printResult(w io.Writer, format string, res batch.Result) error {
	if format == formatJSON {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if res.Err != nil {
		_, err := fmt.Fprintf(w, "Couldn't open file %s\n", res.Source)
		return err
	}
	_, err := fmt.Fprintf(w, "%s of '%s' -> %s\n", res.Variant, res.Source, res.Digest)
	return err
}
