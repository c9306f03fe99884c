package pipeweld

import "sort"

// outsideDiameters maps nominal pipe size designations to outside diameters
// in inches per ASME B36.10/B36.19. From NPS 14 up, OD equals the nominal
// size. Kept as data so the table can grow without touching the arithmetic.
var outsideDiameters = map[string]float64{
	"0.5":  0.840,
	"0.75": 1.050,
	"1":    1.315,
	"1.25": 1.660,
	"1.5":  1.900,
	"2":    2.375,
	"2.5":  2.875,
	"3":    3.500,
	"3.5":  4.000,
	"4":    4.500,
	"5":    5.563,
	"6":    6.625,
	"8":    8.625,
	"10":   10.750,
	"12":   12.750,
	"14":   14.000,
	"16":   16.000,
	"18":   18.000,
	"20":   20.000,
	"22":   22.000,
	"24":   24.000,
	"26":   26.000,
	"28":   28.000,
	"30":   30.000,
	"32":   32.000,
	"34":   34.000,
	"36":   36.000,
}

// LookupOD resolves a nominal pipe size to its standard outside diameter.
// The second return reports whether the size is in the table.
func LookupOD(nps string) (float64, bool) {
	od, ok := outsideDiameters[nps]
	return od, ok
}

// Sizes returns the supported nominal sizes ordered by outside diameter, for
// hosts that populate a size picker.
func Sizes() []string {
	out := make([]string, 0, len(outsideDiameters))
	for k := range outsideDiameters {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return outsideDiameters[out[i]] < outsideDiameters[out[j]]
	})
	return out
}
