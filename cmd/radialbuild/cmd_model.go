package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/openmc"
	"github.com/svalinn/radialbuild/plot"
	"github.com/svalinn/radialbuild/toroidal"
)

type modelOptions struct {
	materials  string
	singleFile bool
	plot       bool
	writeYML   bool
	print      string
	particles  int64
	batches    int64
}

func addModelFlags(flags *pflag.FlagSet, opts *modelOptions) {
	flags.StringVarP(&opts.materials, "materials", "m", "", "materials.xml library, overrides materials_path of the document")
	flags.Int64Var(&opts.particles, "particles", 0, "particles per batch, overrides document settings")
	flags.Int64Var(&opts.batches, "batches", 0, "number of batches, overrides document settings")
}

// loadModel reads model document and settings, applying command line overrides.
func loadModel(path string, opts modelOptions) (*toroidal.Model, openmc.Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, openmc.Settings{}, err
	}
	defer file.Close()

	doc, err := toroidal.DecodeDocument(file)
	if err != nil {
		return nil, openmc.Settings{}, errors.Wrapf(err, "load %s", path)
	}
	if opts.materials != "" {
		materialsPath, err := filepath.Abs(opts.materials)
		if err != nil {
			return nil, openmc.Settings{}, err
		}
		doc.MaterialsPath = materialsPath
		doc.Materials = nil
	}
	m, err := doc.Model(filepath.Dir(path))
	if err != nil {
		return nil, openmc.Settings{}, errors.Wrapf(err, "load %s", path)
	}

	settings := doc.TransportSettings()
	if opts.particles > 0 {
		settings.Particles = opts.particles
	}
	if opts.batches > 0 {
		settings.Batches = opts.batches
	}
	return m, settings, nil
}

func newModelCmd(conf *config.Config) *cobra.Command {
	opts := modelOptions{}
	cmd := &cobra.Command{
		Use:   "model FILE",
		Short: "Export toroidal OpenMC model of a radial build",
		Long: `Reads a toroidal model document (build, major_rad, minor_rad_z,
minor_rad_xy, materials_path and optional settings) and writes OpenMC
materials.xml, geometry.xml and settings.xml, or a single model.xml, plus
cells.json mapping layer names to cells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, settings, err := loadModel(args[0], opts)
			if err != nil {
				return err
			}
			files, _, err := m.Export(settings, opts.singleFile)
			if err != nil {
				return err
			}
			if opts.print != "" {
				return openmc.WriteTo(cmd.OutOrStdout(), files, opts.print)
			}
			if err := openmc.WriteFiles(conf.OutputDir, files); err != nil {
				return err
			}

			if opts.writeYML {
				if _, err := m.Save(filepath.Join(conf.OutputDir, toroidal.DefaultFileName)); err != nil {
					return err
				}
			}
			if opts.plot {
				p := m.RadialBuildPlot(func(p *plot.Plot) { p.Title = "toroidal_model" })
				if _, err := p.Save(conf.OutputDir, "", plot.PNG); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addModelFlags(flags, &opts)
	flags.StringVar(&conf.OutputDir, "out", conf.OutputDir, "directory the model is written to, same as --output-dir")
	flags.BoolVar(&opts.singleFile, "single-file", false, "write a single model.xml")
	flags.StringVar(&opts.print, "print", "", "print a single generated file, e.g. geometry.xml, instead of writing files")
	flags.BoolVar(&opts.plot, "plot", false, "also plot the radial build")
	flags.BoolVar(&opts.writeYML, "write-yml", false, "also write the model document to "+toroidal.DefaultFileName)
	return cmd
}
