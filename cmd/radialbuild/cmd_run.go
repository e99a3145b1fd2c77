package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/openmc"
	"github.com/svalinn/radialbuild/process"
)

const (
	stdoutFileName = "openmc.stdout"
	stderrFileName = "openmc.stderr"
)

func newRunCmd(conf *config.Config) *cobra.Command {
	opts := modelOptions{}
	var threads int

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Export toroidal model and run OpenMC on it",
		Long: `Exports the model like the model command into a temporary working
directory, runs OpenMC there and copies the produced files together with the
engine output into <output-dir>/results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, settings, err := loadModel(args[0], opts)
			if err != nil {
				return err
			}
			files, _, err := m.Export(settings, false)
			if err != nil {
				return err
			}

			runner := process.NewRunner(1, conf.RunTimeout)
			result := runner.Run(cmd.Context(), process.OpenMC{Path: conf.OpenMCPath, Threads: threads}, files)

			output := map[string]string{
				stdoutFileName: result.StdOut,
				stderrFileName: result.StdErr,
			}
			for name, content := range result.Files {
				output[name] = content
			}
			resultsDir := filepath.Join(conf.OutputDir, "results")
			if err := openmc.WriteFiles(resultsDir, output); err != nil {
				return err
			}
			return result.Err()
		},
	}

	flags := cmd.Flags()
	addModelFlags(flags, &opts)
	flags.StringVar(&conf.OpenMCPath, "openmc", conf.OpenMCPath, "openmc executable")
	flags.DurationVar(&conf.RunTimeout, "timeout", conf.RunTimeout, "maximum run duration")
	flags.IntVar(&threads, "threads", 0, "openmc threads, 0 leaves the choice to openmc")
	return cmd
}
