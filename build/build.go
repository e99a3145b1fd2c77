package build

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/svalinn/radialbuild/validate"
)

// Build is the ordered radial build, innermost layer first.
type Build []Layer

// Names returns layer names in order.
func (b Build) Names() []string {
	names := make([]string, 0, len(b))
	for _, layer := range b {
		names = append(names, layer.Name)
	}
	return names
}

// Active returns layers which take part in geometry, thickness given and not zero.
func (b Build) Active() Build {
	active := Build{}
	for _, layer := range b {
		if layer.HasThickness() && !layer.IsZeroThickness() {
			active = append(active, layer)
		}
	}
	return active
}

// Validate checks every layer and returns all problems found at once.
func (b Build) Validate() error {
	var result *multierror.Error

	seen := map[string]bool{}
	for _, layer := range b {
		if strings.TrimSpace(layer.Name) == "" {
			result = multierror.Append(result, fmt.Errorf("layer name cannot be empty"))
		}
		if seen[layer.Name] {
			result = multierror.Append(result, newLayerError(layer.Name, "duplicated layer name"))
		}
		seen[layer.Name] = true

		if layer.HasThickness() && !validate.NonNegative(*layer.Thickness) {
			result = multierror.Append(result,
				newLayerError(layer.Name, "thickness must be a finite number >= 0, got %v", *layer.Thickness))
		}

		if layer.HasComposition() {
			result = multierror.Append(result, validateComposition(layer)...)
		}
	}

	return result.ErrorOrNil()
}

func validateComposition(layer Layer) []error {
	errs := []error{}
	if len(layer.Composition) == 0 {
		errs = append(errs, newLayerError(layer.Name, "composition cannot be empty, omit it for a void layer"))
	}
	seen := map[string]bool{}
	for _, constituent := range layer.Composition {
		if seen[constituent.Material] {
			errs = append(errs, newLayerError(layer.Name, "material %q listed twice", constituent.Material))
		}
		seen[constituent.Material] = true
		if !validate.Fraction(constituent.Fraction) {
			errs = append(errs, newLayerError(layer.Name,
				"volume fraction of %q must be in (0, 1], got %v", constituent.Material, constituent.Fraction))
		}
	}
	return errs
}

// RequireThickness returns error naming every layer without thickness.
// Geometry cannot be built from such layers.
func (b Build) RequireThickness() error {
	missing := []string{}
	for _, layer := range b {
		if !layer.HasThickness() {
			missing = append(missing, layer.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("[build] thickness is required to build geometry, missing in layers: %s",
			strings.Join(missing, ", "))
	}
	return nil
}

func newLayerError(name string, message string, formatedValues ...interface{}) error {
	header := fmt.Sprintf("[build] Layer{Name: %s}: ", name)
	return fmt.Errorf(header+message, formatedValues...)
}
