package outfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgnsrekt/elevenify/format"
)

func mp3Format(t *testing.T) format.Descriptor {
	t.Helper()
	desc, err := format.Resolve("mp3", 128)
	if err != nil {
		t.Fatalf("Resolve(mp3, 128): %v", err)
	}
	return desc
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildRangeMode(t *testing.T) {
	b := &Builder{Dir: t.TempDir()}
	got, err := b.Build(Request{
		Voice:       "Adam",
		Format:      mp3Format(t),
		Prefix:      "notes",
		FirstSample: 3,
		LastSample:  7,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "notes-00003-00007-adam-44.10-128.mp3"
	if got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuildSingleSampleMode(t *testing.T) {
	b := &Builder{Dir: t.TempDir()}
	got, err := b.Build(Request{Voice: "Adam", Format: mp3Format(t), FirstSample: 4})
	if err != nil {
		t.Fatal(err)
	}
	if want := "00004-adam-44.10-128.mp3"; got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuildDirectTextMode(t *testing.T) {
	dir := t.TempDir()
	b := &Builder{Dir: dir}

	got, err := b.Build(Request{Voice: "Adam", Format: mp3Format(t)})
	if err != nil {
		t.Fatal(err)
	}
	if want := "adam-44.10-128-00000.mp3"; got != want {
		t.Fatalf("Build = %q, want %q", got, want)
	}

	touch(t, dir, got)
	got, err = b.Build(Request{Voice: "Adam", Format: mp3Format(t)})
	if err != nil {
		t.Fatal(err)
	}
	if want := "adam-44.10-128-00001.mp3"; got != want {
		t.Errorf("Build after collision = %q, want %q", got, want)
	}
}

func TestBuildCollisionAppendsIndex(t *testing.T) {
	dir := t.TempDir()
	b := &Builder{Dir: dir}

	touch(t, dir, "00004-adam-44.10-128.mp3")
	got, err := b.Build(Request{Voice: "Adam", Format: mp3Format(t), FirstSample: 4})
	if err != nil {
		t.Fatal(err)
	}
	if want := "00004-adam-44.10-128-00001.mp3"; got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuildNeverReturnsExistingName(t *testing.T) {
	dir := t.TempDir()
	b := &Builder{Dir: dir}

	for i := 0; i < 5; i++ {
		name, err := b.Build(Request{Voice: "Adam", Format: mp3Format(t), FirstSample: 1})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("Build returned existing name %q", name)
		}
		touch(t, dir, name)
	}
}

func TestBuildSanitizesVoice(t *testing.T) {
	b := &Builder{Dir: t.TempDir()}
	got, err := b.Build(Request{Voice: "Grace (UK)", Format: mp3Format(t), FirstSample: 1})
	if err != nil {
		t.Fatal(err)
	}
	if want := "00001-grace-uk-44.10-128.mp3"; got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuildExhaustion(t *testing.T) {
	if testing.Short() {
		t.Skip("creates 1000 files")
	}
	dir := t.TempDir()
	b := &Builder{Dir: dir}

	for i := 0; i < maxAttempts; i++ {
		name, err := b.Build(Request{Voice: "Adam", Format: mp3Format(t)})
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		touch(t, dir, name)
	}
	if _, err := b.Build(Request{Voice: "Adam", Format: mp3Format(t)}); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}
