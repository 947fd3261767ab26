package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// chdir changes the working directory for the test and restores it on
// cleanup (testing.T.Chdir equivalent for pre-1.24 toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

// run executes the CLI with args on a fresh root command, resetting the
// process-wide configuration state the commands share.
func run(t *testing.T, args ...string) string {
	t.Helper()
	viper.Reset()
	format = formatting{Indent: 4}
	verbose = false

	root := newRootCmd()
	var out strings.Builder
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v: %v", args, err)
	}
	return out.String()
}

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile("autojson.yaml", []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestWrite_IndentFromConfig(t *testing.T) {
	chdir(t, t.TempDir())
	writeConfigFile(t, "indent: 2\n")

	run(t, "write", "a.json", `{"a": 1}`)

	b, err := os.ReadFile("a.json")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "{\n  \"a\": 1\n}\n"
	if string(b) != want {
		t.Fatalf("content = %q, want %q", b, want)
	}
}

func TestWrite_FlagOverridesConfig(t *testing.T) {
	chdir(t, t.TempDir())
	writeConfigFile(t, "indent: 2\n")

	run(t, "write", "a.json", `{"a": 1}`, "--indent", "8")

	b, err := os.ReadFile("a.json")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "{\n        \"a\": 1\n}\n"
	if string(b) != want {
		t.Fatalf("content = %q, want %q", b, want)
	}
}

func TestWrite_EscapeFromConfig(t *testing.T) {
	chdir(t, t.TempDir())
	writeConfigFile(t, "escape-non-ascii: true\n")

	run(t, "write", "u.json", `{"name": "café"}`)

	b, err := os.ReadFile("u.json")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(b), `caf\u00e9`) {
		t.Fatalf("expected escaped content on disk, got %q", b)
	}
}

func TestRead_PrintsWithConfigFormatting(t *testing.T) {
	chdir(t, t.TempDir())
	writeConfigFile(t, "indent: 2\nescape-non-ascii: true\n")

	run(t, "write", "u.json", `{"name": "café"}`)
	out := run(t, "read", "u.json")

	want := "{\n  \"name\": \"caf" + `\u00e9` + "\"\n}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestUpdate_PrintsMergedDocument(t *testing.T) {
	chdir(t, t.TempDir())

	run(t, "write", "m.json", `{"a": 1, "b": 2}`)
	out := run(t, "update", "m.json", `{"b": 3, "c": 4}`)

	for _, part := range []string{`"a": 1`, `"b": 3`, `"c": 4`} {
		if !strings.Contains(out, part) {
			t.Fatalf("output %q missing %q", out, part)
		}
	}
}

func TestExists_ReportsAndExitsNonZero(t *testing.T) {
	chdir(t, t.TempDir())

	run(t, "create", "ok.json")
	if out := run(t, "exists", "ok.json"); !strings.Contains(out, "true") {
		t.Fatalf("output = %q, want true", out)
	}

	viper.Reset()
	format = formatting{Indent: 4}
	root := newRootCmd()
	var out strings.Builder
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"exists", "missing.json"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected non-nil error for a missing file")
	}
	if !strings.Contains(out.String(), "false") {
		t.Fatalf("output = %q, want false", out.String())
	}
}

func TestLoad_PrintsStemKeyedDocuments(t *testing.T) {
	chdir(t, t.TempDir())

	run(t, "write", "data/a.json", `{"x": 1}`)
	run(t, "write", "data/sub/b.json", `{"y": 2}`)

	out := run(t, "load", "data")
	for _, part := range []string{`"a"`, `"b"`, `"x": 1`, `"y": 2`} {
		if !strings.Contains(out, part) {
			t.Fatalf("output %q missing %q", out, part)
		}
	}

	out = run(t, "load", "data", "--recursive=false")
	if strings.Contains(out, `"b"`) {
		t.Fatalf("flat load should skip subdirectories: %q", out)
	}
}
