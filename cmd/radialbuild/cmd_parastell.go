package main

import (
	"github.com/spf13/cobra"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/parastell"
	"github.com/svalinn/radialbuild/plot"
)

func newParastellCmd(conf *config.Config) *cobra.Command {
	opts := plotOptions{}
	var phi, theta float64
	var title string

	cmd := &cobra.Command{
		Use:   "parastell FILE",
		Short: "Plot stellarator radial build at a toroidal and poloidal angle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := plot.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			b, err := parastell.Load(args[0])
			if err != nil {
				return err
			}
			slice, err := b.Slice(phi, theta)
			if err != nil {
				return err
			}
			p := plot.New(slice)
			p.Title = title
			return savePlot(conf, p, opts.out, format, opts.writeYML)
		},
	}

	addPlotFlags(cmd, &opts)
	flags := cmd.Flags()
	flags.Float64Var(&phi, "phi", 0, "toroidal angle in degrees, must be in phi_list")
	flags.Float64Var(&theta, "theta", 0, "poloidal angle in degrees, must be in theta_list")
	flags.StringVar(&title, "title", plot.CLITitle, "plot title")
	_ = cmd.MarkFlagRequired("phi")
	_ = cmd.MarkFlagRequired("theta")
	return cmd
}
