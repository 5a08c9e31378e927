package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/geo"
	pkgio "github.com/matzehuels/geograph/pkg/io"
)

// writeGraph stores a small graph: a 3-cycle 0→1→2→0 plus a tail 2→3.
func writeGraph(t *testing.T, dir string) string {
	t.Helper()
	g := digraph.New()
	g.AddNode(0, &geo.Point{X: 0, Y: 0})
	g.AddNode(1, &geo.Point{X: 1, Y: 1})
	g.AddNode(2, nil)
	g.AddNode(3, nil)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 0, 1)
	g.AddEdge(2, 3, 5)
	path := filepath.Join(dir, "g.json")
	if err := pkgio.ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	return path
}

// execute runs the CLI with caching disabled and returns stdout and logs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append([]string{"--no-cache"}, args...))
	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)

	out, _, err := execute(t, "info", path, path)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if strings.Count(out, path) != 2 {
		t.Errorf("output should list both files:\n%s", out)
	}
	for _, want := range []string{"4 nodes", "4 edges", "2 components", "modifications: 8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommand_MissingFile(t *testing.T) {
	_, logs, err := execute(t, "info", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("info on a missing file should fail")
	}
	if !strings.Contains(logs, "FILE_NOT_FOUND") {
		t.Errorf("logs should carry the error code:\n%s", logs)
	}
}

func TestPathCommand(t *testing.T) {
	path := writeGraph(t, t.TempDir())

	out, _, err := execute(t, "path", path, "0", "3")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if !strings.Contains(out, "8") || !strings.Contains(out, "0 → 1 → 2 → 3") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, _, err = execute(t, "path", path, "3", "0")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if !strings.Contains(out, "no path from 3 to 0") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, _, err := execute(t, "path", path, "x", "0"); err == nil {
		t.Error("non-numeric node id should fail")
	}
}

func TestSCCCommand(t *testing.T) {
	path := writeGraph(t, t.TempDir())

	out, _, err := execute(t, "scc", path)
	if err != nil {
		t.Fatalf("scc: %v", err)
	}
	if !strings.Contains(out, "2 components") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, _, err = execute(t, "scc", path, "--node", "3")
	if err != nil {
		t.Fatalf("scc --node: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("component of 3 = %q, want 3", out)
	}

	if _, _, err := execute(t, "scc", path, "--node", "42"); err == nil {
		t.Error("unknown node should fail")
	}
}

func TestLayoutCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)
	outPath := filepath.Join(dir, "placed.json")

	out, _, err := execute(t, "layout", path, "-o", outPath)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, "Placed 2 nodes") {
		t.Errorf("unexpected output:\n%s", out)
	}

	g, err := pkgio.ImportJSON(outPath)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	for _, id := range g.NodeIDs() {
		if n, _ := g.Node(id); !n.HasPosition() {
			t.Errorf("node %d has no position after layout", id)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "alt.json")
	doc := `{"Nodes": [{"id": 0, "pos": "1,2,0"}, {"id": 1}], "Edges": [{"src": 0, "dest": 1, "w": 3}]}`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "canonical.json")

	if _, _, err := execute(t, "convert", in, "-o", outPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"modeCount": 3`, `"links"`, `"geoLocation"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("canonical output missing %s:\n%s", want, data)
		}
	}

	if _, _, err := execute(t, "convert", in); err == nil {
		t.Error("convert without --output should fail")
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)
	cfg := filepath.Join(dir, "geograph.toml")
	if err := os.WriteFile(cfg, []byte("[layout]\nmax_rounds = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "--config", cfg, "layout", path); err != nil {
		t.Fatalf("layout with config: %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[layout\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "--config", bad, "info", path); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestRenderCommand_DOT(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)
	out := filepath.Join(dir, "g.dot")

	if _, _, err := execute(t, "render", path, "-o", out, "--weights"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("not a DOT document:\n%s", dot)
	}
	if !strings.Contains(dot, `"2" -> "3" [label="5"];`) {
		t.Errorf("missing weighted edge:\n%s", dot)
	}
	if strings.Count(dot, "pos=") != 4 {
		t.Errorf("every node should be pinned after layout:\n%s", dot)
	}
}

func TestRenderCommand_NoLayout(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)
	out := filepath.Join(dir, "g.dot")

	if _, _, err := execute(t, "render", path, "-o", out, "--no-layout"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if n := strings.Count(string(data), "pos="); n != 2 {
		t.Errorf("pinned nodes = %d, want 2", n)
	}
}

func TestRenderCommand_BadFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)
	if _, _, err := execute(t, "render", path, "-o", filepath.Join(dir, "g.png")); err == nil {
		t.Fatal("render to .png should fail")
	}
	if _, _, err := execute(t, "render", path); err == nil {
		t.Fatal("render without --output should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir)
	cacheDir := filepath.Join(dir, "cache")
	cfg := filepath.Join(dir, "geograph.toml")
	body := "[cache]\nenabled = true\nttl = \"1h\"\ndir = \"" + filepath.ToSlash(cacheDir) + "\"\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	run := func(args ...string) string {
		t.Helper()
		var logs, out bytes.Buffer
		root := New(&logs, log.InfoLevel).RootCommand()
		root.SetOut(&out)
		root.SetErr(&logs)
		root.SetArgs(append([]string{"--config", cfg}, args...))
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v\n%s", args, err, logs.String())
		}
		return out.String()
	}

	if got := strings.TrimSpace(run("cache", "path")); got != cacheDir {
		t.Errorf("cache path = %q, want %q", got, cacheDir)
	}

	run("path", path, "0", "3")
	run("scc", path)
	if out := run("cache", "stats"); !strings.Contains(out, "entries") || strings.Contains(out, "entries      0") {
		t.Errorf("stats after queries:\n%s", out)
	}
	if out := run("cache", "prune"); !strings.Contains(out, "Pruned 0") {
		t.Errorf("prune:\n%s", out)
	}
	if out := run("cache", "clear"); !strings.Contains(out, "Cleared") {
		t.Errorf("clear:\n%s", out)
	}
	if out := run("cache", "clear"); !strings.Contains(out, "Cache is empty") {
		t.Errorf("second clear:\n%s", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, _, err := execute(t, "completion", shell)
		if err != nil {
			t.Fatalf("completion %s: %v", shell, err)
		}
		if !strings.Contains(out, "geograph") {
			t.Errorf("completion %s does not mention geograph", shell)
		}
	}
	if _, _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestCLIStats(t *testing.T) {
	path := writeGraph(t, t.TempDir())
	var logs, out bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs([]string{"--no-cache", "path", path, "0", "3"})
	if err := root.Execute(); err != nil {
		t.Fatalf("path: %v", err)
	}

	st := c.Stats()
	if st.Loads != 1 || st.LoadErrors != 0 || st.Queries != 1 || st.Cached != 0 {
		t.Errorf("Stats = %+v", st)
	}
	if st.Misses != 1 {
		t.Errorf("Misses = %d, want 1", st.Misses)
	}
	if !strings.Contains(logs.String(), "session") {
		t.Errorf("debug session summary missing:\n%s", logs.String())
	}
}
