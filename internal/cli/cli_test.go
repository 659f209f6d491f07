// Package cli_test drives the palettegen command tree end to end.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmylchreest/palettegen/internal/cli"
)

// runWithEnv executes a fresh root command with a clean palettegen
// environment plus env, and returns what it wrote.
func runWithEnv(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"PALETTEGEN_FORMAT", "PALETTEGEN_KIND", "PALETTEGEN_LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runWithEnv(t, nil, args...)
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

var deepPurpleHex = []string{
	"#efe5fd", "#d5bff9", "#b894f6", "#9965f4", "#7f3ff2", "#6200ee", "#5500e8",
	"#3f00e0", "#2000db", "#0000d6", "#b874ff", "#6818ff", "#3f00ff", "#4a00ff",
}

func TestGenerateHex(t *testing.T) {
	for _, arg := range []string{"6200ee", "#6200EE", " 6200ee "} {
		t.Run(arg, func(t *testing.T) {
			out, _, err := run(t, "generate", arg, "--format", "hex")
			if err != nil {
				t.Fatalf("generate error = %v", err)
			}
			if diff := cmp.Diff(deepPurpleHex, lines(out)); diff != "" {
				t.Errorf("generate output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateTable(t *testing.T) {
	out, _, err := run(t, "generate", "6200ee")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	for _, want := range []string{
		"accent palette: deep-purple (anchor 500, difference 8.2",
		"TONE  HEX",
		"500   #6200ee",
		"A700  #4a00ff",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	var sourceRows int
	for _, line := range lines(out) {
		if strings.HasSuffix(strings.TrimRight(line, " "), "*") {
			sourceRows++
			if !strings.HasPrefix(line, "500 ") {
				t.Errorf("source marker on %q", line)
			}
		}
	}
	if sourceRows != 1 {
		t.Errorf("found %d source rows, want 1", sourceRows)
	}
}

type generateDoc struct {
	Source   string `json:"source"`
	Palettes []struct {
		Kind        string   `json:"kind"`
		Suitable    bool     `json:"suitable"`
		Placeholder []string `json:"placeholder"`
		Palette     *struct {
			Family   string `json:"family"`
			Anchor   string `json:"anchor"`
			Grey     bool   `json:"grey"`
			Count    int    `json:"count"`
			Swatches []struct {
				Label  string `json:"label"`
				Hex    string `json:"hex"`
				Source bool   `json:"source"`
			} `json:"swatches"`
		} `json:"palette"`
	} `json:"palettes"`
}

func TestGenerateJSON(t *testing.T) {
	out, _, err := run(t, "generate", "#2196F3", "--format", "json", "--kind", "all")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	var doc generateDoc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if doc.Source != "#2196f3" {
		t.Errorf("source = %q", doc.Source)
	}
	if len(doc.Palettes) != 3 {
		t.Fatalf("got %d palettes, want 3", len(doc.Palettes))
	}

	accent := doc.Palettes[0]
	if accent.Kind != "accent" || !accent.Suitable || accent.Palette == nil {
		t.Fatalf("accent entry = %+v", accent)
	}
	if accent.Palette.Family != "blue" || accent.Palette.Anchor != "500" || accent.Palette.Count != 14 {
		t.Errorf("accent palette = %s %s %d", accent.Palette.Family, accent.Palette.Anchor, accent.Palette.Count)
	}
	if s := accent.Palette.Swatches[5]; s.Hex != "#2196f3" || !s.Source || s.Label != "500" {
		t.Errorf("anchor swatch = %+v", s)
	}

	// A saturated mid blue suits neither neutral kind.
	for _, entry := range doc.Palettes[1:] {
		if entry.Suitable || entry.Palette != nil || len(entry.Placeholder) != 10 {
			t.Errorf("%s entry = %+v", entry.Kind, entry)
		}
	}
	if doc.Palettes[1].Placeholder[0] != "#fafafa" || doc.Palettes[2].Placeholder[9] != "#121212" {
		t.Errorf("placeholders = %v / %v", doc.Palettes[1].Placeholder, doc.Palettes[2].Placeholder)
	}
}

func TestGenerateCSS(t *testing.T) {
	out, _, err := run(t, "generate", "6200ee", "--format", "css")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	for _, want := range []string{
		"/* source #6200ee */",
		":root {",
		"  /* accent: deep-purple */",
		"  --accent-50: #efe5fd;",
		"  --accent-500: #6200ee;",
		"  --accent-a700: #4a00ff;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("output not closed:\n%s", out)
	}
}

func TestGenerateUnsuitableKind(t *testing.T) {
	out, errOut, err := run(t, "generate", "2196f3", "--kind", "light")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(errOut, "#2196f3 is not suitable for a light palette") {
		t.Errorf("stderr = %q", errOut)
	}
	if !strings.Contains(out, "light placeholder:") || !strings.Contains(out, "#fafafa") {
		t.Errorf("output:\n%s", out)
	}

	_, errOut, err = run(t, "generate", "2196f3", "--kind", "light", "--quiet")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if errOut != "" {
		t.Errorf("--quiet stderr = %q", errOut)
	}
}

func TestGenerateNeutralKinds(t *testing.T) {
	out, errOut, err := run(t, "generate", "9e9e9e", "--kind", "all", "--format", "hex")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	blocks := strings.Split(strings.TrimRight(out, "\n"), "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3:\n%s", len(blocks), out)
	}

	accent, light, dark := lines(blocks[0]), lines(blocks[1]), lines(blocks[2])
	if len(accent) != 10 || accent[5] != "#9e9e9e" {
		t.Errorf("accent = %v", accent)
	}
	if len(light) != 10 || light[0] != "#f9f9f9" || light[8] != "#9e9e9e" || light[9] != "#919191" {
		t.Errorf("light = %v", light)
	}
	// A mid grey is too light for a dark palette.
	if len(dark) != 10 || dark[0] != "#595959" || dark[9] != "#121212" {
		t.Errorf("dark = %v", dark)
	}
	if !strings.Contains(errOut, "not suitable for a dark palette") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestGenerateEnvironmentDefaults(t *testing.T) {
	env := map[string]string{"PALETTEGEN_FORMAT": "hex", "PALETTEGEN_KIND": "Light"}
	out, _, err := runWithEnv(t, env, "generate", "9e9e9e")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	got := lines(out)
	if len(got) != 10 || got[8] != "#9e9e9e" {
		t.Errorf("output = %v", got)
	}

	// Flags win over the environment.
	out, _, err = runWithEnv(t, env, "generate", "6200ee", "--kind", "accent")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if diff := cmp.Diff(deepPurpleHex, lines(out)); diff != "" {
		t.Errorf("generate output mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := runWithEnv(t, map[string]string{"PALETTEGEN_FORMAT": "yaml"}, "generate", "6200ee"); err == nil {
		t.Error("invalid PALETTEGEN_FORMAT should fail")
	}
}

func TestGenerateLogging(t *testing.T) {
	_, errOut, err := run(t, "generate", "6200ee", "--format", "hex", "--verbose")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(errOut, "source colour") || !strings.Contains(errOut, "hex=6200ee") {
		t.Errorf("--verbose stderr = %q", errOut)
	}

	_, errOut, err = runWithEnv(t, map[string]string{"PALETTEGEN_LOG_LEVEL": "trace"}, "generate", "6200ee", "--format", "hex")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(errOut, "palettegen.generator") || !strings.Contains(errOut, "family=deep-purple") {
		t.Errorf("trace stderr = %q", errOut)
	}

	_, errOut, err = run(t, "generate", "6200ee", "--format", "hex")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if errOut != "" {
		t.Errorf("default stderr = %q, want nothing", errOut)
	}
}

func TestGenerateOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.txt")
	out, errOut, err := run(t, "generate", "6200ee", "--format", "hex", "--output", path)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing", out)
	}
	if !strings.Contains(errOut, "Palette written to "+path) {
		t.Errorf("stderr = %q", errOut)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(deepPurpleHex, lines(string(data))); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blue.png")
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out, _, err := run(t, "generate", "--image", path, "--format", "hex")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	got := lines(out)
	if len(got) != 14 || got[5] != "#2196f3" || got[0] != "#e3f2fd" {
		t.Errorf("output = %v", got)
	}

	notImage := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(notImage, []byte("plain text"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "generate", "--image", notImage); err == nil || !strings.Contains(err.Error(), "failed to load image") {
		t.Errorf("generate --image on text file error = %v", err)
	}
}

func TestGenerateSnapHue(t *testing.T) {
	out, _, err := run(t, "generate", "6200ee", "--snap-hue", "--format", "hex")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(out, "#6300ee\n") {
		t.Errorf("snapped source missing:\n%s", out)
	}
	if strings.Contains(out, "#6200ee\n") {
		t.Errorf("unsnapped source present:\n%s", out)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no source", args: []string{"generate"}, wantErr: "source colour is required"},
		{name: "both sources", args: []string{"generate", "6200ee", "--image", "x.png"}, wantErr: "not both"},
		{name: "bad hex", args: []string{"generate", "zz"}, wantErr: "invalid colour"},
		{name: "five digits", args: []string{"generate", "12345"}, wantErr: "invalid colour"},
		{name: "bad kind", args: []string{"generate", "6200ee", "--kind", "pastel"}, wantErr: "unknown palette kind"},
		{name: "bad format", args: []string{"generate", "6200ee", "--format", "yaml"}, wantErr: "unknown output format"},
		{name: "output dir missing", args: []string{"generate", "6200ee", "--output", filepath.Join("no", "such", "dir", "p.css")}, wantErr: "output directory does not exist"},
		{name: "too many args", args: []string{"generate", "6200ee", "2196f3"}, wantErr: "accepts at most 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"convert", "6200ee", "--to", "hex"}, want: []string{"#6200ee\n"}},
		{args: []string{"convert", "#ff0000", "--to", "HSB"}, want: []string{"hsb(0, 100%"}},
		{args: []string{"convert", "2196f3", "--to", "lch"}, want: []string{"lch("}},
		{args: []string{"convert", "2196f3"}, want: []string{"SPACE", "hex    #2196f3", "rgb", "hsb", "hsl", "xyz", "lab", "lch"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("convert error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}

	if _, _, err := run(t, "convert", "6200ee", "--to", "cmyk"); err == nil {
		t.Error("convert --to cmyk should fail")
	}
	if _, _, err := run(t, "convert"); err == nil {
		t.Error("convert without a colour should fail")
	}
}

func TestMatch(t *testing.T) {
	out, _, err := run(t, "match", "6200ee")
	if err != nil {
		t.Fatalf("match error = %v", err)
	}
	got := lines(out)
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(got), out)
	}
	fields := strings.Fields(got[2])
	if len(fields) != 5 || fields[0] != "accent" || fields[1] != "deep-purple" || fields[2] != "500" || !strings.HasPrefix(fields[4], "8.2") {
		t.Errorf("match row = %q", got[2])
	}

	out, _, err = run(t, "match", "#9e9e9e", "--kind", "all")
	if err != nil {
		t.Fatalf("match error = %v", err)
	}
	got = lines(out)
	if len(got) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(got), out)
	}
	if fields := strings.Fields(got[2]); fields[1] != "grey" || fields[3] != "#9e9e9e" || fields[4] != "0.0000" {
		t.Errorf("accent row = %q", got[2])
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"diff", "6200ee", "#6200EE"}, want: "0.0000\n"},
		{args: []string{"diff", "ffffff", "000000", "--contrast"}, want: "difference: 100.0000\ncontrast:   21.00:1\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("diff error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	if _, _, err := run(t, "diff", "ffffff"); err == nil {
		t.Error("diff with one colour should fail")
	}
	if _, _, err := run(t, "diff", "ffffff", "nothex"); err == nil {
		t.Error("diff with an invalid colour should fail")
	}
}

func TestCatalog(t *testing.T) {
	out, _, err := run(t, "catalog")
	if err != nil {
		t.Fatalf("catalog error = %v", err)
	}
	for _, want := range []string{"accent catalog (material, 19 palettes):", "FAMILY", "deep-purple", "#2196f3", "#6200ea"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := len(lines(out)); got != 22 {
		t.Errorf("got %d lines, want 22 (title, header, separator, 19 rows)", got)
	}

	out, _, err = run(t, "catalog", "--kind", "dark", "--preview")
	if err != nil {
		t.Fatalf("catalog error = %v", err)
	}
	if !strings.Contains(out, "#595959") || strings.Contains(out, "\x1b[") {
		t.Errorf("dark catalog (not a terminal) = %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "palettegen version ") {
		t.Errorf("version output = %q", out)
	}

	out, _, err = run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"version", "commit", "date", "go_version", "platform"} {
		if _, ok := info[key]; !ok {
			t.Errorf("version JSON missing %q", key)
		}
	}
}
