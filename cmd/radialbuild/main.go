// Command radialbuild plots radial builds and exports toroidal transport models.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/svalinn/radialbuild/config"
)

var log = config.NamedLogger("radialbuild")

func newRootCmd(conf *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "radialbuild",
		Short: "Radial build plots and toroidal transport models",
		Long: `radialbuild turns a radial build, an ordered list of layers around the
plasma with thickness, material composition and description, into

  - a strip chart of the layers (plot, parastell),
  - nested toroidal OpenMC geometry with mixed materials (model, run),
  - an HTTP API serving both (serve).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Setup(conf)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&conf.LoggingLevel, "log-level", conf.LoggingLevel,
		"logging level, one of panic, fatal, error, warn, info, debug")
	flags.StringVarP(&conf.OutputDir, "output-dir", "o", conf.OutputDir, "directory generated files are written to")

	rootCmd.AddCommand(
		newPlotCmd(conf),
		newModelCmd(conf),
		newParastellCmd(conf),
		newRunCmd(conf),
		newServeCmd(conf),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := config.FromEnv(config.Default())
	if err := newRootCmd(conf).ExecuteContext(ctx); err != nil {
		log.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
