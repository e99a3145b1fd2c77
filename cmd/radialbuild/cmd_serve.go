package main

import (
	"github.com/spf13/cobra"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/web"
)

func newServeCmd(conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plots and model exports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetupServe(conf); err != nil {
				return err
			}
			return web.ListenAndServe(cmd.Context(), conf)
		},
	}
	cmd.Flags().StringVar(&conf.Address, "address", conf.Address, "host:port to listen on")
	return cmd
}
