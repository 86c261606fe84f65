package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ainkit/ainviz/pkg/graphio"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommand(t *testing.T) {
	root := testCLI().RootCommand()

	want := map[string]bool{
		"graph":      false,
		"timeline":   false,
		"render":     false,
		"inspect":    false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"json", []string{"json"}},
		{"svg,dot,json", []string{"svg", "dot", "json"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}

func TestParseVizTypes(t *testing.T) {
	if got := parseVizTypes(""); len(got) != 1 || got[0] != "graph" {
		t.Errorf("parseVizTypes(\"\") = %v", got)
	}
	if got := parseVizTypes("graph,timeline"); len(got) != 2 {
		t.Errorf("parseVizTypes = %v", got)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		want   string
	}{
		{"", "ains.json", "ains"},
		{"out.svg", "ains.json", "out"},
		{"result", "ains.json", "result"},
		{"dir/out.png", "ains.json", "dir/out"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestCacheDirConfigOverride(t *testing.T) {
	c := testCLI()
	c.Config.CacheDir = "/tmp/custom-cache"

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != "/tmp/custom-cache" {
		t.Errorf("cacheDir = %q, want config override", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")

	dir, err := testCLI().cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "ainviz") {
		t.Errorf("cacheDir = %q", dir)
	}
}

// writeTestCollection writes a three-interval collection with an overlap
// chain and returns its path.
func writeTestCollection(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ains.json")
	data := []byte(`{
  "items": [
    {"lower": 0, "upper": 2},
    {"lower": 1, "upper": 5},
    {"lower": 3, "upper": 4}
  ],
  "degrees": [
    [0, 0.5, 0],
    [0.5, 0, 0.5],
    [1, 0.5, 0]
  ]
}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write collection: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := testCLI().RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestGraphCommand(t *testing.T) {
	input := writeTestCollection(t)
	output := filepath.Join(t.TempDir(), "graph.json")

	if err := runCommand(t, "graph", input, "-f", "json", "-o", output); err != nil {
		t.Fatalf("graph command: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc, err := graphio.UnmarshalGraphDoc(data)
	if err != nil {
		t.Fatalf("UnmarshalGraphDoc: %v", err)
	}
	if len(doc.Nodes) != 3 || len(doc.Edges) != 2 {
		t.Errorf("graph output: %d nodes, %d edges, want 3/2", len(doc.Nodes), len(doc.Edges))
	}
}

func TestGraphCommandDOT(t *testing.T) {
	input := writeTestCollection(t)
	output := filepath.Join(t.TempDir(), "graph.dot")

	if err := runCommand(t, "graph", input, "-f", "dot", "-o", output); err != nil {
		t.Fatalf("graph command: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty DOT output")
	}
}

func TestTimelineCommand(t *testing.T) {
	input := writeTestCollection(t)
	output := filepath.Join(t.TempDir(), "levels.json")

	if err := runCommand(t, "timeline", input, "-f", "json", "-o", output); err != nil {
		t.Fatalf("timeline command: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc, err := graphio.UnmarshalTimelineDoc(data)
	if err != nil {
		t.Fatalf("UnmarshalTimelineDoc: %v", err)
	}
	if len(doc.Levels) != 2 {
		t.Errorf("levels = %v, want 2 rows", doc.Levels)
	}
}

func TestGraphCommandMissingFile(t *testing.T) {
	if err := runCommand(t, "graph", "/does/not/exist.json", "-f", "json"); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestGraphCommandInvalidFormat(t *testing.T) {
	input := writeTestCollection(t)
	if err := runCommand(t, "graph", input, "-f", "gif"); err == nil {
		t.Error("expected error for invalid format")
	}
}
