package asciiprint

import (
	"fmt"
	"math"
)

// Ramp is an ordered run of printable characters. Index 0 leaves the paper
// blank and the last index puts down the most ink.
type Ramp struct {
	Name  string
	Chars string
}

// Ramps is the fixed registry of character ramps, numbered as the printer
// wrapper scripts expect. Blank and "-over" slots are the single-strike and
// overstrike companions of the ramp before them.
var Ramps = []Ramp{
	// Olivetti maps, from a histogram of the daisy wheel's character weights.
	{Name: "olivetti-a", Chars: ` .")O&8M`},
	{Name: "olivetti-a-blank", Chars: `         `},
	{Name: "olivetti-b", Chars: ` ."_O&8M`},
	{Name: "olivetti-b-blank", Chars: `         `},
	{Name: "olivetti-c", Chars: ` .,:=*#%$`},
	{Name: "olivetti-c-blank", Chars: `         `},
	{Name: "olivetti-full", Chars: ` ."',>\!<L-:;IZ1CT+/UVY=J]()_*GRW2[ESX?D7FH^#49K56P&3ABOQ0%8@`},
	{Name: "olivetti-full-blank", Chars: `                                                              `},
	{Name: "olivetti-stepped", Chars: `  ..,,::==**##%%$$`},
	{Name: "olivetti-stepped-blank", Chars: `                  `},
	// Double-strike pairs: the first ramp is struck, then the second over it.
	{Name: "double-strike-a", Chars: `  ,'  (%&8##$`},
	{Name: "double-strike-a-over", Chars: ` '..H#7-QN6&9`},
	{Name: "double-strike-b", Chars: `  ' (&#$`},
	{Name: "double-strike-b-over", Chars: `  .H7Q69`},
	// Older maps.
	{Name: "legacy-short", Chars: ` .'T>[+2!)"3#0$@`},
	{Name: "legacy-short-blank", Chars: `                 `},
	{Name: "legacy-long", Chars: ` ."-',T=:<>U^;SX[+/HOM279CQ?DJRWY!GNP)1](ABFZ5\348I%6LV&EK_#*0$@`},
	{Name: "legacy-long-blank", Chars: `                                                                 `},
	{Name: "legacy-medium", Chars: ` ."-',T=:;<>!U^SX[]+/HNP)(1F5\3I%LV&EK_#*0$@`},
	{Name: "legacy-medium-blank", Chars: `                                             `},
	// Hammersley, plus variants for wheels with broken petals.
	{Name: "hammersley", Chars: `  --TTTTTTTT`},
	{Name: "hammersley-over", Chars: `      --==HH`},
	{Name: "hammersley-i", Chars: `  --IIIIIIII`},
	{Name: "hammersley-i-over", Chars: `      --==HH`},
	{Name: "hammersley-elite", Chars: ` --11111111`},
	{Name: "hammersley-elite-over", Chars: `     --==MM`},
	// Peter Fletcher.
	{Name: "fletcher", Chars: ` .;/=IS$`},
	{Name: "fletcher-blank", Chars: `        `},
	// Paul Bourke, http://paulbourke.net/dataformats/asciiart/
	{Name: "bourke", Chars: ` .:-=+*#%@`},
	{Name: "bourke-blank", Chars: `          `},
	{Name: "bourke-long", Chars: " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"},
	{Name: "bourke-long-blank", Chars: `                                                                       `},
	// Extended Hammersley.
	{Name: "hammersley-extended", Chars: `  --==IIHHIIIIHHII`},
	{Name: "hammersley-extended-over", Chars: `          --====HH`},
	// ASR-33 (PJW).
	{Name: "asr33", Chars: ` ...PPJPJWPJW`},
	{Name: "asr33-over", Chars: `  -* //\\***`},
}

// DefaultRamp is the slot used when a requested index does not exist.
const DefaultRamp = 0

// HasRamp reports whether index names a slot in Ramps.
func HasRamp(index int) bool {
	return index >= 0 && index < len(Ramps)
}

// SelectRamp returns the ramp at index, or the DefaultRamp if index is out of
// range.
func SelectRamp(index int) (Ramp, error) {
	if !HasRamp(index) {
		index = DefaultRamp
	}
	r := Ramps[index]
	if err := r.validate(); err != nil {
		return Ramp{}, err
	}
	return r, nil
}

// RampByName looks a ramp up by name and returns it with its slot number.
func RampByName(name string) (Ramp, int, error) {
	for i, r := range Ramps {
		if r.Name == name {
			if err := r.validate(); err != nil {
				return Ramp{}, 0, err
			}
			return r, i, nil
		}
	}
	return Ramp{}, 0, &ConfigError{Field: "ramp name", Reason: fmt.Sprintf("no ramp named %q", name)}
}

func (r Ramp) validate() error {
	if len(r.Chars) == 0 {
		return &ConfigError{Field: "ramp", Reason: fmt.Sprintf("%q has no characters", r.Name)}
	}
	for i := 0; i < len(r.Chars); i++ {
		if c := r.Chars[i]; c < ' ' || c > '~' {
			return &ConfigError{Field: "ramp", Reason: fmt.Sprintf("%q holds unprintable byte %#x", r.Name, c)}
		}
	}
	return nil
}

// Index maps an 8-bit luminance to a position in the ramp. Light pixels land
// near 0 and dark pixels near the end.
func (r Ramp) Index(v uint8) int {
	n := len(r.Chars)
	i := int(math.Abs(1-float64(v)/256) * float64(n-1))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Char returns the character printed for luminance v.
func (r Ramp) Char(v uint8) byte {
	return r.Chars[r.Index(v)]
}
