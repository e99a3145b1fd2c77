package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

type namedColor struct {
	name string
	hex  string
}

// palette is the head of the xkcd color survey list, in its original order.
var palette = []namedColor{
	{"cloudy blue", "#acc2d9"},
	{"dark pastel green", "#56ae57"},
	{"dust", "#b2996e"},
	{"electric lime", "#a8ff04"},
	{"fresh green", "#69d84f"},
	{"light eggplant", "#894585"},
	{"nasty green", "#70b23f"},
	{"really light blue", "#d4ffff"},
	{"tea", "#65ab7c"},
	{"warm purple", "#952e8f"},
	{"yellowish tan", "#fcfc81"},
	{"cement", "#a5a391"},
	{"dark grass green", "#388004"},
	{"dusty teal", "#4c9085"},
	{"grey teal", "#5e9b8a"},
	{"macaroni and cheese", "#efb435"},
	{"pinkish tan", "#d99b82"},
	{"spruce", "#0a5f38"},
	{"strong blue", "#0c06f7"},
	{"toxic green", "#61de2a"},
	{"windows blue", "#3778bf"},
	{"blue blue", "#2242c7"},
	{"blue with a hint of purple", "#533cc6"},
	{"booger", "#9bb53c"},
	{"bright sea green", "#05ffa6"},
	{"dark green blue", "#1f6357"},
	{"deep turquoise", "#017374"},
	{"green teal", "#0cb577"},
	{"strong pink", "#ff0789"},
	{"bland", "#afa88b"},
}

const xkcdPrefix = "xkcd:"

// DefaultColors returns n palette colors, repeating the palette when n is
// larger than it.
func DefaultColors(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, palette[i%len(palette)].hex)
	}
	return colors
}

// ParseColor accepts "#rrggbb", "#rgb", "xkcd:<name>" for palette colors
// and SVG color keyword names.
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)

	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower)
	case strings.HasPrefix(lower, xkcdPrefix):
		name := strings.TrimPrefix(lower, xkcdPrefix)
		for _, c := range palette {
			if c.name == name {
				return parseHex(c.hex)
			}
		}
		return color.RGBA{}, fmt.Errorf("unknown xkcd color %q", value)
	}

	if c, found := colornames.Map[strings.ReplaceAll(lower, " ", "")]; found {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", value)
}

func parseHex(value string) (color.RGBA, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}, nil
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
