package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rectpack/cubemap"
)

var bg = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

func smallConfig() config {
	cfg := defaultConfig()
	cfg.Side = 256
	cfg.Frames = 2000
	return cfg
}

func TestSimulate_CountsEveryFrame(t *testing.T) {
	res, err := simulate(smallConfig(), nil)
	if err != nil {
		t.Fatalf("simulate() = %v", err)
	}
	if res.Hits+res.Misses != 2000 {
		t.Errorf("hits %d + misses %d != frames", res.Hits, res.Misses)
	}
	if res.Misses == 0 || res.Evictions == 0 {
		t.Errorf("expected the atlas to fill up: %+v", res)
	}
	if res.Utilization <= 0 || res.Utilization > 1 {
		t.Errorf("Utilization = %v", res.Utilization)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	for _, policy := range []string{"fifo", "lru"} {
		cfg := smallConfig()
		cfg.Policy = policy
		a, err := simulate(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		b, err := simulate(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("%s: runs differ: %+v vs %+v", policy, a, b)
		}
	}
}

func TestSimulate_RetryAndRoundRobin(t *testing.T) {
	cfg := smallConfig()
	cfg.Retry = true
	cfg.Order = "round-robin"
	res, err := simulate(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Hits+res.Misses < 2000 {
		t.Errorf("hits %d + misses %d < frames", res.Hits, res.Misses)
	}
}

func TestSimulate_PreviewTracksLiveRegions(t *testing.T) {
	cfg := smallConfig()
	cfg.Faces = 2
	cfg.Frames = 300
	preview := cubemap.NewPreview(cfg.Faces, cfg.Side, bg)
	if _, err := simulate(cfg, preview); err != nil {
		t.Fatal(err)
	}

	painted := 0
	for i := range preview.Faces() {
		face := preview.Face(i)
		for y := 0; y < cfg.Side; y += 8 {
			for x := 0; x < cfg.Side; x += 8 {
				if face.RGBAAt(x, y) != bg {
					painted++
				}
			}
		}
	}
	if painted == 0 {
		t.Error("no allocation was painted")
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "faces.png")
	var stdout, stderr bytes.Buffer
	err := run([]string{"-side", "128", "-frames", "500", "-snapshot", out, "-snapshot-size", "32"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() = %v\nstderr: %s", err, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "hit: ") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "run complete") {
		t.Errorf("stderr missing run summary: %q", stderr.String())
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	path := writeFile(t, "side = 64\nframes = 10\npolicy = \"nope\"\n")
	var stdout, stderr bytes.Buffer

	if err := run([]string{"-config", path}, &stdout, &stderr); err == nil {
		t.Fatal("run() with an invalid policy in the file = nil")
	}
	stdout.Reset()
	if err := run([]string{"-config", path, "-policy", "fifo"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() with overriding flag = %v", err)
	}
	if !strings.Contains(stdout.String(), "hit: 10, miss 0") {
		t.Errorf("stdout = %q", stdout.String())
	}
}
