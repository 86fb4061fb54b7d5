// Package format maps audio container types and rates to the output formats
// understood by the ElevenLabs API.
package format

import (
	"fmt"
	"sort"
)

// Descriptor describes one resolved output format.
type Descriptor struct {
	// ID is the remote output_format identifier, e.g. "mp3_44100_128".
	ID string
	// KHz is the sample rate in kilohertz, as shown in filenames.
	KHz float64
	// Rate is the bitrate in kbps for mp3/opus, or the sample rate in Hz
	// for pcm/ulaw/alaw.
	Rate int
	// Extension is the file extension for the container, without the dot.
	Extension string
}

// table is the full set of formats the remote API accepts. Any (type, rate)
// pair absent from it is invalid; there is no interpolation.
var table = map[string]map[int]Descriptor{
	"mp3": {
		32:  {ID: "mp3_22050_32", KHz: 22.05, Rate: 32, Extension: "mp3"},
		64:  {ID: "mp3_44100_64", KHz: 44.1, Rate: 64, Extension: "mp3"},
		96:  {ID: "mp3_44100_96", KHz: 44.1, Rate: 96, Extension: "mp3"},
		128: {ID: "mp3_44100_128", KHz: 44.1, Rate: 128, Extension: "mp3"},
		192: {ID: "mp3_44100_192", KHz: 44.1, Rate: 192, Extension: "mp3"},
	},
	"pcm": {
		8000:  {ID: "pcm_8000", KHz: 8.0, Rate: 8000, Extension: "wav"},
		16000: {ID: "pcm_16000", KHz: 16.0, Rate: 16000, Extension: "wav"},
		22050: {ID: "pcm_22050", KHz: 22.05, Rate: 22050, Extension: "wav"},
		24000: {ID: "pcm_24000", KHz: 24.0, Rate: 24000, Extension: "wav"},
		44100: {ID: "pcm_44100", KHz: 44.1, Rate: 44100, Extension: "wav"},
	},
	"ulaw": {
		8000: {ID: "ulaw_8000", KHz: 8.0, Rate: 8000, Extension: "ulaw"},
	},
	"alaw": {
		8000: {ID: "alaw_8000", KHz: 8.0, Rate: 8000, Extension: "alaw"},
	},
	"opus": {
		32:  {ID: "opus_48000_32", KHz: 48.0, Rate: 32, Extension: "oga"},
		64:  {ID: "opus_48000_64", KHz: 48.0, Rate: 64, Extension: "oga"},
		96:  {ID: "opus_48000_96", KHz: 48.0, Rate: 96, Extension: "oga"},
		128: {ID: "opus_48000_128", KHz: 48.0, Rate: 128, Extension: "oga"},
		192: {ID: "opus_48000_192", KHz: 48.0, Rate: 192, Extension: "oga"},
	},
}

// Types returns the supported container types, sorted.
func Types() []string {
	types := make([]string, 0, len(table))
	for t := range table {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ValidRates returns the valid rates for a container type, sorted ascending.
// It returns nil for an unknown type.
func ValidRates(containerType string) []int {
	rates, ok := table[containerType]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(rates))
	for r := range rates {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

// Resolve looks up the output format for a container type and rate.
func Resolve(containerType string, rate int) (Descriptor, error) {
	rates, ok := table[containerType]
	if !ok {
		return Descriptor{}, fmt.Errorf("invalid audio type %q: valid types are %v", containerType, Types())
	}
	desc, ok := rates[rate]
	if !ok {
		return Descriptor{}, fmt.Errorf("invalid %s rate %d: valid rates are %v", containerType, rate, ValidRates(containerType))
	}
	return desc, nil
}
