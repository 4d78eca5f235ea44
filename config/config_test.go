package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/repr"
)

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "toucan")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, FileName)
	want := Default("shapes")
	want.Verbose = true
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %s, want %s", repr.String(got), repr.String(want))
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("Package: demo\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package != "demo" || cfg.MaxDepth != DefaultMaxDepth || !cfg.Natives || cfg.Verbose {
		t.Fatalf("unexpected config %s", repr.String(cfg))
	}

	cfg, err = Parse([]byte("Package: demo\nNatives: false\nMaxDepth: 16\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Natives || cfg.MaxDepth != 16 {
		t.Fatalf("explicit values must win: %s", repr.String(cfg))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist", FileName)); err == nil {
		t.Fatal("expected an error")
	}
}
