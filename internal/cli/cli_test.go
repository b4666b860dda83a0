package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/go-homedir"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
	"github.com/ironsheep/palette-tools-mcp/internal/version"
)

// isolate keeps the user's config file and environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// createSplitImageFile writes a PNG with the left 80% red and the rest blue.
func createSplitImageFile(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 8 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}

	path := filepath.Join(t.TempDir(), "split.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	isolate(t)
	path := createSplitImageFile(t)

	out, _, err := execute(t, "", "extract", "-n", "2", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	lines := strings.Fields(out)
	if len(lines) != 2 {
		t.Fatalf("expected 2 colors, got %q", out)
	}
	got := map[string]bool{lines[0]: true, lines[1]: true}
	if !got["#ff0000"] || !got["#0000ff"] {
		t.Errorf("unexpected palette: %q", out)
	}
}

func TestExtract_JSONAndSwatch(t *testing.T) {
	isolate(t)
	path := createSplitImageFile(t)
	swatch := filepath.Join(t.TempDir(), "swatch.png")

	out, _, err := execute(t, "", "extract", "-n", "2", "--format", "json", "--swatch", swatch, "--tile-size", "4", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var colors []colorJSON
	if err := json.Unmarshal([]byte(out), &colors); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(colors) != 2 {
		t.Errorf("got %d colors, want 2", len(colors))
	}

	f, err := os.Open(swatch)
	if err != nil {
		t.Fatalf("swatch not written: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("swatch is not a PNG: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 4 {
		t.Errorf("swatch size: got %dx%d, want 8x4", cfg.Width, cfg.Height)
	}
}

func TestExtract_Errors(t *testing.T) {
	isolate(t)
	path := createSplitImageFile(t)

	if _, _, err := execute(t, "", "extract", "--format", "yaml", path); !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("bad format error = %v, want ErrInvalidArgument", err)
	}
	if _, _, err := execute(t, "", "extract", "-n", "0", path); !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("zero colors error = %v, want ErrInvalidArgument", err)
	}
	if _, _, err := execute(t, "", "extract", "--precision", "-3", path); !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("negative precision error = %v, want ErrInvalidArgument", err)
	}
	if _, _, err := execute(t, "", "extract", filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
	if _, _, err := execute(t, "", "extract"); err == nil {
		t.Error("extract without an image should fail")
	}
}

func TestExtract_Deterministic(t *testing.T) {
	isolate(t)
	path := createSplitImageFile(t)

	first, _, err := execute(t, "", "extract", "-n", "3", "--seed", "9", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	second, _, err := execute(t, "", "extract", "-n", "3", "--seed", "9", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if first != second {
		t.Errorf("runs differ:\n%s\nvs\n%s", first, second)
	}
}

func TestDominant(t *testing.T) {
	isolate(t)
	path := createSplitImageFile(t)

	out, _, err := execute(t, "", "dominant", path)
	if err != nil {
		t.Fatalf("dominant failed: %v", err)
	}
	want := "#ff0000\t80\t80.00%\n#0000ff\t20\t20.00%\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out, _, err = execute(t, "", "dominant", "-n", "1", "--format", "json", path)
	if err != nil {
		t.Fatalf("dominant failed: %v", err)
	}
	var entries []dominantJSON
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(entries) != 1 || entries[0].Hex != "#ff0000" || entries[0].Count != 80 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestTint(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "tint", "--hue", "0", "--saturation", "1", "--lightness", "0", "#fff")
	if err != nil {
		t.Fatalf("tint failed: %v", err)
	}
	if strings.TrimSpace(out) != "#bf3f3f" {
		t.Errorf("tint: got %q, want #bf3f3f", out)
	}

	out, _, err = execute(t, "", "tint", "--hue", "0", "--saturation", "1", "--lightness", "0", "--format", "rgb", "#ffffff")
	if err != nil {
		t.Fatalf("tint failed: %v", err)
	}
	if strings.TrimSpace(out) != "rgb(191, 63, 63)" {
		t.Errorf("tint: got %q", out)
	}
}

func TestTint_Errors(t *testing.T) {
	isolate(t)

	if _, _, err := execute(t, "", "tint", "not-a-color"); !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("bad hex error = %v, want ErrInvalidArgument", err)
	}
	if _, _, err := execute(t, "", "tint", "--saturation", "2", "#123456"); !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("bad saturation error = %v, want ErrInvalidArgument", err)
	}
	if _, _, err := execute(t, "", "tint"); err == nil {
		t.Error("tint without colors should fail")
	}
}

func TestServe(t *testing.T) {
	isolate(t)

	stdin := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"
	for _, args := range [][]string{{"serve"}, {}} {
		out, _, err := execute(t, stdin, args...)
		if err != nil {
			t.Fatalf("%v: serve failed: %v", args, err)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal([]byte(out), &resp); err != nil {
			t.Fatalf("%v: response is not JSON: %v (%q)", args, err, out)
		}
		if resp["id"] != float64(1) {
			t.Errorf("%v: unexpected response %v", args, resp)
		}
	}
}

func TestServe_LogsToStderr(t *testing.T) {
	isolate(t)

	out, errOut, err := execute(t, "", "serve", "--log-level", "debug")
	if err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should carry only protocol data, got %q", out)
	}
	if !strings.Contains(errOut, "server started") {
		t.Errorf("expected startup log on stderr, got %q", errOut)
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := createSplitImageFile(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("algorithm: octree\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, _, err := execute(t, "", "--config", cfgPath, "extract", path); !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("invalid config error = %v, want ErrInvalidArgument", err)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, version.Name+" "+version.Version) {
		t.Errorf("version output: %q", out)
	}
}
