package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/scene"
)

const rowTree = `{
  "width": 300, "height": 100,
  "children": [
    {"id": "a", "grow": 1, "metadata": {"label": "Alpha"}},
    {"id": "b", "grow": 2}
  ]
}`

// setupEnv points the config and cache directories at fresh temp dirs and
// returns the cache dir.
func setupEnv(t *testing.T) string {
	t.Helper()
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return filepath.Join(cacheHome, appName)
}

// runCLI executes the root command with args and returns what cobra wrote
// to its output stream.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)

	if _, err := runCLI(t, "layout", input); err != nil {
		t.Fatalf("layout: %v", err)
	}

	l, err := scene.ReadLayoutFile(filepath.Join(dir, "row.layout.json"))
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	boxes := l.Boxes()
	if boxes["a"].Size.Width != 100 || boxes["b"].Size.Width != 200 {
		t.Errorf("boxes = %+v", boxes)
	}
}

func TestLayoutCommandSizeSources(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)
	config := writeFile(t, dir, "config.toml", "width = 600\n")
	out := filepath.Join(dir, "out.layout.json")

	tests := []struct {
		name      string
		args      []string
		wantWidth float64
	}{
		{"document", []string{"layout", input, "-o", out, "--no-cache"}, 300},
		{"config", []string{"--config", config, "layout", input, "-o", out, "--no-cache"}, 600},
		{"flag beats config", []string{"--config", config, "layout", input, "-o", out, "--no-cache", "--width", "900"}, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err != nil {
				t.Fatalf("layout: %v", err)
			}
			l, err := scene.ReadLayoutFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if l.Width != tt.wantWidth {
				t.Errorf("Width = %g, want %g", l.Width, tt.wantWidth)
			}
		})
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{"missing file", filepath.Join(dir, "absent.json"), errors.ErrCodeFileNotFound},
		{"unknown extension", writeFile(t, dir, "tree.yaml", "width: 1"), errors.ErrCodeInvalidFormat},
		{"no root size", writeFile(t, dir, "nosize.json", `{"children":[{"id":"a"}]}`), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "layout", tt.input, "--no-cache")
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestOutputPathValidation(t *testing.T) {
	setupEnv(t)
	input := writeFile(t, t.TempDir(), "row.json", rowTree)

	for _, cmd := range []string{"layout", "render"} {
		t.Run(cmd, func(t *testing.T) {
			_, err := runCLI(t, cmd, input, "-o", "bad\x01name", "--no-cache")
			if !errors.Is(err, errors.ErrCodeInvalidPath) {
				t.Errorf("error = %v, want INVALID_PATH", err)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.toml", `
width = 300
height = 100

[[children]]
id = "a"
grow = 1
`)

	if _, err := runCLI(t, "render", input, "-f", "svg,png,dot,json", "--labels", "--scale", "1"); err != nil {
		t.Fatalf("render: %v", err)
	}

	prefixes := map[string]string{
		"row.svg":         "<svg",
		"row.png":         "\x89PNG",
		"row.dot":         "digraph",
		"row.layout.json": "{",
	}
	for name, prefix := range prefixes {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if !bytes.HasPrefix(data, []byte(prefix)) {
			t.Errorf("%s starts with %.10q, want %q", name, data, prefix)
		}
	}
}

func TestRenderCommandFromLayoutDocument(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)
	if _, err := runCLI(t, "layout", input, "--no-cache"); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "picture.svg")
	if _, err := runCLI(t, "render", filepath.Join(dir, "row.layout.json"), "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `id="node-a"`) {
		t.Errorf("svg missing node a:\n%s", data)
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	setupEnv(t)
	input := writeFile(t, t.TempDir(), "row.json", rowTree)

	_, err := runCLI(t, "render", input, "-f", "svg,pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestInspectCommand(t *testing.T) {
	setupEnv(t)
	input := writeFile(t, t.TempDir(), "row.json", rowTree)
	if _, err := runCLI(t, "inspect", input); err != nil {
		t.Errorf("inspect: %v", err)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := setupEnv(t)
	input := writeFile(t, t.TempDir(), "row.json", rowTree)

	if _, err := runCLI(t, "layout", input); err != nil {
		t.Fatal(err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) == 0 {
		t.Fatalf("layout did not populate %s", dir)
	}

	if _, err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("cache not cleared: %d entries left", len(entries))
	}

	if _, err := runCLI(t, "--cache", "none", "cache", "path"); err != nil {
		t.Errorf("cache path: %v", err)
	}
	if _, err := runCLI(t, "--cache", "ftp://example.com", "cache", "path"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	setupEnv(t)
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runCLI(t, "completion", shell)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, appName) {
				t.Errorf("%s completion does not mention %s", shell, appName)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"SVG, png ,dot", []string{"svg", "png", "dot"}},
		{"svg,,json", []string{"svg", "json"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{"default base", "", []string{"svg", "graph"}, map[string]string{"svg": "in/tree.svg", "graph": "in/tree.graph.svg"}},
		{"explicit base", "out/pic", []string{"svg", "png"}, map[string]string{"svg": "out/pic.svg", "png": "out/pic.png"}},
		{"single file", "out/pic.image", []string{"png"}, map[string]string{"png": "out/pic.image"}},
		{"extension with many formats", "out/pic.v2", []string{"svg", "dot"}, map[string]string{"svg": "out/pic.v2.svg", "dot": "out/pic.v2.dot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPaths("in/tree.hcl", tt.output, tt.formats)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("artifactPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}
