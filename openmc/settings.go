package openmc

import (
	"encoding/xml"

	"gopkg.in/yaml.v3"

	"github.com/svalinn/radialbuild/format"
)

// Run modes.
const (
	FixedSource = "fixed source"
	Eigenvalue  = "eigenvalue"
)

// DefaultSourceEnergy is D-T fusion neutron energy, eV.
const DefaultSourceEnergy = 14.1e6

// Source is an isotropic monoenergetic neutron point source.
type Source struct {
	// Energy in eV.
	Energy float64 `yaml:"energy"`
	// Position defaults to a point on the plasma major radius.
	Position *[3]float64 `yaml:"position,omitempty"`
}

// Settings of a transport run.
type Settings struct {
	RunMode   string  `yaml:"run_mode"`
	Particles int64   `yaml:"particles"`
	Batches   int64   `yaml:"batches"`
	Inactive  int64   `yaml:"inactive,omitempty"`
	Source    *Source `yaml:"source,omitempty"`
}

// DefaultSettings returns fixed source settings with a 14.1 MeV source.
func DefaultSettings() Settings {
	return Settings{
		RunMode:   FixedSource,
		Particles: 1000,
		Batches:   10,
		Source:    &Source{Energy: DefaultSourceEnergy},
	}
}

// UnmarshalYAML decodes settings onto DefaultSettings, so a document
// giving only some fields keeps the defaults of the rest.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	type plain Settings
	decoded := plain(DefaultSettings())
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*s = Settings(decoded)
	return nil
}

// WithSourcePosition returns copy of settings with source placed at
// position, unless the position was already given.
func (s Settings) WithSourcePosition(x, y, z float64) Settings {
	if s.Source == nil || s.Source.Position != nil {
		return s
	}
	source := *s.Source
	source.Position = &[3]float64{x, y, z}
	s.Source = &source
	return s
}

// Validate ...
func (s Settings) Validate() error {
	switch s.RunMode {
	case FixedSource, Eigenvalue:
	default:
		return GeneralSettingsError("unknown run mode %q", s.RunMode)
	}
	if s.Particles <= 0 {
		return GeneralSettingsError("particles must be > 0, got %d", s.Particles)
	}
	if s.Batches <= 0 {
		return GeneralSettingsError("batches must be > 0, got %d", s.Batches)
	}
	if s.Inactive < 0 || s.Inactive >= s.Batches {
		return GeneralSettingsError("inactive batches must be in [0, %d), got %d", s.Batches, s.Inactive)
	}
	if s.RunMode == FixedSource && s.Inactive != 0 {
		return GeneralSettingsError("inactive batches are used only in %s mode", Eigenvalue)
	}
	if s.Source != nil {
		if s.Source.Energy <= 0 {
			return GeneralSettingsError("source energy must be > 0, got %v", s.Source.Energy)
		}
		if s.Source.Position == nil {
			return GeneralSettingsError("source position is not set")
		}
	}
	return nil
}

type settingsXML struct {
	XMLName   xml.Name   `xml:"settings"`
	RunMode   string     `xml:"run_mode"`
	Particles int64      `xml:"particles"`
	Batches   int64      `xml:"batches"`
	Inactive  int64      `xml:"inactive,omitempty"`
	Source    *sourceXML `xml:"source,omitempty"`
}

type distributionXML struct {
	Type       string `xml:"type,attr"`
	Parameters string `xml:"parameters,attr,omitempty"`
}

type sourceXML struct {
	Particle string          `xml:"particle,attr"`
	Strength string          `xml:"strength,attr"`
	Space    distributionXML `xml:"space"`
	Angle    distributionXML `xml:"angle"`
	Energy   distributionXML `xml:"energy"`
}

func convertSettings(s Settings) settingsXML {
	result := settingsXML{
		RunMode:   s.RunMode,
		Particles: s.Particles,
		Batches:   s.Batches,
		Inactive:  s.Inactive,
	}
	if s.Source != nil && s.Source.Position != nil {
		result.Source = &sourceXML{
			Particle: "neutron",
			Strength: format.Float(1),
			Space:    distributionXML{Type: "point", Parameters: format.Join(s.Source.Position[:])},
			Angle:    distributionXML{Type: "isotropic"},
			Energy:   distributionXML{Type: "discrete", Parameters: format.Join([]float64{s.Source.Energy, 1})},
		}
	}
	return result
}
