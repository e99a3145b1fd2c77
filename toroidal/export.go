package toroidal

import (
	"github.com/svalinn/radialbuild/openmc"
	"github.com/svalinn/radialbuild/plot"
)

// Export builds the model and serializes it for the transport engine,
// together with cells.json. The source, unless placed in settings, sits on
// the major radius.
func (m *Model) Export(settings openmc.Settings, singleFile bool) (map[string]string, openmc.CellMap, error) {
	built, err := m.OpenMCModel()
	if err != nil {
		return nil, nil, err
	}

	input := openmc.Input{
		Geometry:  built.Geometry,
		Materials: built.Materials,
		Settings:  settings.WithSourcePosition(m.MajorRadius, 0, 0),
	}
	var files map[string]string
	if singleFile {
		files, err = input.ModelFile()
	} else {
		files, err = input.Files()
	}
	if err != nil {
		return nil, nil, err
	}

	cells := openmc.NewCellMap(built.Cells)
	cellsFile, err := cells.File()
	if err != nil {
		return nil, nil, err
	}
	for name, content := range cellsFile {
		files[name] = content
	}
	return files, cells, nil
}

// RadialBuildPlot returns plot of the model build with every option applied in order.
func (m *Model) RadialBuildPlot(options ...func(*plot.Plot)) *plot.Plot {
	p := plot.New(m.Build)
	for _, option := range options {
		option(p)
	}
	return p
}
