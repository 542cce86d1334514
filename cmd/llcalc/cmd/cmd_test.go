package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/llcalc/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"
)

const testConfig = `
[tracing]
adapter = "go"

[tracelevel]
root = "Info"
"llcalc.parser" = "Debug"

[parser]
maxdepth = 50

[output]
format = "yaml"
`

func TestConfigDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.GetInt("parser.maxdepth") != parser.DefaultMaxDepth {
		t.Errorf("expected default max depth, have %d", conf.GetInt("parser.maxdepth"))
	}
	if conf.GetString("output.format") != "text" || conf.GetString("tracing.adapter") != "go" {
		t.Errorf("unexpected defaults: %v", conf.values)
	}
	if conf.GetString("tracelevel.llcalc.parser") != "Error" {
		t.Errorf("expected default trace level Error for parser")
	}
	if conf.IsSet("no.such.key") || conf.GetString("no.such.key") != "" || conf.IsInteractive() {
		t.Errorf("unexpected value for unset key")
	}
}

func TestConfigFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "llcalc.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.GetInt("parser.maxdepth") != 50 {
		t.Errorf("expected max depth 50, have %d", conf.GetInt("parser.maxdepth"))
	}
	if conf.GetString("tracelevel.llcalc.parser") != "Debug" {
		t.Errorf("expected dotted key to be flattened, have %v", conf.values)
	}
	if conf.GetString("tracelevel.llcalc.grammar") != "Error" {
		t.Errorf("expected default for tracer not in file")
	}
	conf.SetTraceLevel("Info")
	if conf.GetString("tracelevel.llcalc.parser") != "Info" {
		t.Errorf("expected trace level to be overridden")
	}
	conf.Set("flag", "true")
	if !conf.GetBool("flag") {
		t.Errorf("expected string 'true' to be read as bool")
	}
}

func TestConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
	path := filepath.Join(t.TempDir(), "broken.toml")
	os.WriteFile(path, []byte("[parser\nmaxdepth ="), 0644)
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected error for broken config file")
	}
}

func TestParseInputText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	conf, _ := LoadConfig("")
	var out bytes.Buffer
	result, err := parseInput(&out, "test", "x := 1", conf)
	if err != nil || !result.OK() {
		t.Fatalf("expected clean parse, have %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "predict Program --> StmtList eof" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "(id gets literal)" {
		t.Errorf("expected tree as last line, have %q", last)
	}
}

func TestParseInputYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	conf, _ := LoadConfig("")
	conf.Set("output.format", "yaml")
	var out bytes.Buffer
	result, err := parseInput(&out, "test", "write (1", conf)
	if err != nil {
		t.Fatal(err)
	}
	if result.OK() {
		t.Errorf("expected syntax error for missing parenthesis")
	}
	var doc struct {
		Input  string        `yaml:"input"`
		Result parser.Report `yaml:"result"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out.String())
	}
	if doc.Input != "test" || len(doc.Result.Errors) == 0 || doc.Result.Digest == "" {
		t.Errorf("unexpected report: %+v", doc)
	}
	if doc.Result.Tree != result.TreeString() {
		t.Errorf("expected tree %q in report, have %q", result.TreeString(), doc.Result.Tree)
	}
}

func TestParseInputTooDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	conf, _ := LoadConfig("")
	conf.Set("parser.maxdepth", int64(20))
	var out bytes.Buffer
	result, err := parseInput(&out, "test", "write "+strings.Repeat("(", 30)+"1", conf)
	if !errors.Is(err, parser.ErrNestingTooDeep) {
		t.Errorf("expected nesting error, have %v", err)
	}
	if result == nil || out.Len() == 0 {
		t.Errorf("expected partial result to be written")
	}
}

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	result, _ := parser.ParseString("x := 1")
	ll := leveledTree(result.Tree)
	if len(ll) != 4 {
		t.Fatalf("expected 4 items in leveled list, have %d: %v", len(ll), ll)
	}
	if ll[0].Level != 0 || ll[0].Text != "Stmt" {
		t.Errorf("expected root Stmt, have %v", ll[0])
	}
	if ll[1].Level != 1 || ll[1].Text != "id x" || ll[3].Text != "literal 1" {
		t.Errorf("unexpected leaves %v", ll[1:])
	}
	empty, _ := parser.ParseString("")
	if len(leveledTree(empty.Tree)) != 0 {
		t.Errorf("expected empty leveled list for empty program")
	}
}

func TestPrintGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.cli")
	defer teardown()
	//
	var out bytes.Buffer
	if err := printGrammar(&out, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Stmt --> read id") {
		t.Errorf("expected rule listing, have\n%s", out.String())
	}
	out.Reset()
	printGrammar(&out, true)
	if !strings.HasPrefix(out.String(), "Program = StmtList \"eof\" .") {
		t.Errorf("unexpected EBNF\n%s", out.String())
	}
}
