package simplertf

import (
	"fmt"
	"sort"
	"strings"
)

// Layout describes the page geometry of a document: paper dimensions and
// the four margins, all in twips.
type Layout struct {
	PageWidth    Twips
	PageHeight   Twips
	MarginTop    Twips
	MarginBottom Twips
	MarginLeft   Twips
	MarginRight  Twips
}

// Named layout presets accepted by SetLayout and WithLayout.
const (
	LayoutA4     = "A4"
	LayoutA5     = "A5"
	LayoutB5     = "B5"
	LayoutLetter = "Letter"
	LayoutLegal  = "Legal"
	LayoutRoyal  = "Royal"
	LayoutDigest = "Digest"
)

// layoutPresets maps preset names to page geometry. Dimensions are in
// twips; margins are part of the preset.
var layoutPresets = map[string]Layout{
	LayoutA4:     {PageWidth: 11906, PageHeight: 16838, MarginTop: 1134, MarginBottom: 1134, MarginLeft: 1134, MarginRight: 1134},
	LayoutA5:     {PageWidth: 8391, PageHeight: 11906, MarginTop: 1151, MarginBottom: 720, MarginLeft: 567, MarginRight: 862},
	LayoutB5:     {PageWidth: 9978, PageHeight: 14173, MarginTop: 1701, MarginBottom: 1417, MarginLeft: 1134, MarginRight: 1134},
	LayoutLetter: {PageWidth: 12240, PageHeight: 15840, MarginTop: 1440, MarginBottom: 1440, MarginLeft: 1440, MarginRight: 1440},
	LayoutLegal:  {PageWidth: 12240, PageHeight: 20160, MarginTop: 1440, MarginBottom: 1440, MarginLeft: 1440, MarginRight: 1440},
	LayoutRoyal:  {PageWidth: 8827, PageHeight: 13262, MarginTop: 1152, MarginBottom: 720, MarginLeft: 864, MarginRight: 864},
	LayoutDigest: {PageWidth: 7920, PageHeight: 12240, MarginTop: 1151, MarginBottom: 720, MarginLeft: 567, MarginRight: 862},
}

// ResolvePreset returns the page geometry registered under the given preset
// name. Names are matched case-insensitively. It fails with
// ErrUnknownPreset if the name is not registered.
func ResolvePreset(name string) (Layout, error) {
	if l, ok := layoutPresets[name]; ok {
		return l, nil
	}
	for preset, l := range layoutPresets {
		if strings.EqualFold(preset, name) {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// PresetNames returns the names of all registered layout presets.
func PresetNames() []string {
	names := make([]string, 0, len(layoutPresets))
	for name := range layoutPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
