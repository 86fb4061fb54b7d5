// Package audio merges synthesized audio clips into a single file with
// silence inserted between them.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

// ErrNoClips is returned when there is nothing to merge.
var ErrNoClips = errors.New("no audio clips to merge")

// resampleQuality trades speed for accuracy when clip sample rates differ.
const resampleQuality = 4

// MergeWithSilence decodes each clip, joins them with pause worth of silence
// between adjacent clips, and encodes the result as a single WAV stream to w.
// The first clip's format sets the output sample rate; later clips are
// resampled to it when they differ. Clips may be MP3 or WAV.
func MergeWithSilence(clips [][]byte, pause time.Duration, w io.WriteSeeker) error {
	if len(clips) == 0 {
		return ErrNoClips
	}

	var target beep.Format
	streamers := make([]beep.Streamer, 0, len(clips)*2-1)
	for i, data := range clips {
		decoded, f, err := decodeClip(data)
		if err != nil {
			return fmt.Errorf("unable to decode clip %d: %w", i+1, err)
		}

		var s beep.Streamer = decoded
		if i == 0 {
			target = f
		} else {
			streamers = append(streamers, beep.Silence(target.SampleRate.N(pause)))
			if f.SampleRate != target.SampleRate {
				s = beep.Resample(resampleQuality, f.SampleRate, target.SampleRate, decoded)
			}
		}
		streamers = append(streamers, s)
	}

	if err := wav.Encode(w, beep.Seq(streamers...), target); err != nil {
		return fmt.Errorf("unable to encode merged audio: %w", err)
	}
	return nil
}

// decodeClip tries MP3 first, then WAV, mirroring the formats the remote
// service can return for mergeable types.
func decodeClip(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	s, f, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err == nil {
		return s, f, nil
	}

	s, f, err = wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("clip is neither MP3 nor WAV: %w", err)
	}
	return s, f, nil
}
