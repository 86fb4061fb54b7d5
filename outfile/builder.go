package outfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgnsrekt/elevenify/format"
)

// maxAttempts bounds the collision-retry loop.
const maxAttempts = 1000

// ErrExhausted is returned when no unique filename could be found within the
// attempt bound.
var ErrExhausted = errors.New("could not generate unique filename")

// Request describes the parts a filename is built from. FirstSample and
// LastSample are 1-based sample numbers; zero means unset. Set FirstSample
// alone for one clip of a split run, both for a combined range, neither for
// direct text input.
type Request struct {
	Voice       string
	Format      format.Descriptor
	Prefix      string
	FirstSample int
	LastSample  int
}

// Builder picks output filenames that do not exist in Dir at the time of the
// call. Two racing processes can still pick the same name; single-process use
// is assumed.
type Builder struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string
}

// Build returns a unique filename (relative to b.Dir, without the directory)
// for the request, retrying with a zero-padded index on collisions.
func (b *Builder) Build(req Request) (string, error) {
	voice := SanitizeVoice(req.Voice)
	for index := 0; index < maxAttempts; index++ {
		var base string
		switch {
		case req.FirstSample > 0 && req.LastSample > 0:
			base = fmt.Sprintf("%05d-%05d-%s-%.2f-%d", req.FirstSample, req.LastSample, voice, req.Format.KHz, req.Format.Rate)
			if index > 0 {
				base += fmt.Sprintf("-%05d", index)
			}
		case req.FirstSample > 0:
			base = fmt.Sprintf("%05d-%s-%.2f-%d", req.FirstSample, voice, req.Format.KHz, req.Format.Rate)
			if index > 0 {
				base += fmt.Sprintf("-%05d", index)
			}
		default:
			base = fmt.Sprintf("%s-%.2f-%d-%05d", voice, req.Format.KHz, req.Format.Rate, index)
		}
		if req.Prefix != "" {
			base = req.Prefix + "-" + base
		}
		filename := Slugify(base + "." + req.Format.Extension)
		if _, err := os.Stat(filepath.Join(b.Dir, filename)); os.IsNotExist(err) {
			return filename, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, maxAttempts)
}
