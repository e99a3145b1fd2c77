package main

import (
	"github.com/spf13/cobra"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/plot"
	"github.com/svalinn/radialbuild/watch"
)

type plotOptions struct {
	format   string
	out      string
	watch    bool
	writeYML bool
}

func newPlotCmd(conf *config.Config) *cobra.Command {
	opts := plotOptions{}
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot radial build defined in a YAML file",
		Long: `Reads a YAML document with the build and optional title, colors,
max_characters, max_thickness, size and unit, and renders the radial build
plot. The file name defaults to the title without spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := plot.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			path := args[0]
			render := func() error {
				p, err := plot.Load(path)
				if err != nil {
					return err
				}
				return savePlot(conf, p, opts.out, format, opts.writeYML)
			}

			if err := render(); err != nil && !opts.watch {
				return err
			} else if err != nil {
				log.Error(err.Error())
			}
			if !opts.watch {
				return nil
			}
			return watch.File(cmd.Context(), path, watch.DefaultDebounce, render)
		},
	}

	flags := cmd.Flags()
	addPlotFlags(cmd, &opts)
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-render whenever the file changes")
	return cmd
}

func addPlotFlags(cmd *cobra.Command, opts *plotOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", string(plot.PNG), "image format, svg or png")
	flags.StringVar(&opts.out, "out", "", "image file name without extension, defaults to the title without spaces")
	flags.BoolVar(&opts.writeYML, "write-yml", false, "also write the plot document to <title>.yml")
}

func savePlot(conf *config.Config, p *plot.Plot, name string, format plot.Format, writeYML bool) error {
	path, err := p.Save(conf.OutputDir, name, format)
	if err != nil {
		return err
	}
	log.Infof("plot written to %s", path)
	if !writeYML {
		return nil
	}
	_, err = p.SaveYAML(conf.OutputDir)
	return err
}
