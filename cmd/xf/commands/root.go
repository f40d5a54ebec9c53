package commands

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-transducers/internal/config"
	"github.com/hasbyte1/go-transducers/internal/logging"
)

var (
	cfgFile  string
	envFile  string
	logLevel string

	globalConfig *config.Config
	log          = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xf",
	Short: "Composable transducer pipelines",
	Long: `xf applies a pipeline of transducers (map, filter, take, partition, ...)
to YAML or JSON data, either eagerly into a collection or lazily as a stream.

Stages come from the pipeline section of the config file and from repeated
--stage flags, in that order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file (default .env when present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides logging.level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command) error {
	var opts []config.LoaderOption
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return err
		}
	}
	globalConfig = cfg
	log = logging.New(cfg.Logging, logWriter(cmd, cfg.Logging.Output))
	return nil
}

func logWriter(cmd *cobra.Command, output string) io.Writer {
	if strings.EqualFold(output, "stdout") {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}
