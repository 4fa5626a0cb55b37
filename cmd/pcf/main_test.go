package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() { color.NoColor = true }

func runCmd(t *testing.T, f func([]string, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) int, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	in := bytes.NewBufferString(stdin)
	code := f(args, in, &out, &errOut)
	return code, out.String(), errOut.String()
}

func run(args []string, in, out, errOut *bytes.Buffer) int { return cmdRun(args, in, out, errOut) }
func format(args []string, in, out, errOut *bytes.Buffer) int {
	return cmdFmt(args, in, out, errOut)
}

func Test_Cmd_Run_Expression(t *testing.T) {
	code, out, _ := runCmd(t, run, "", "-e", "succ (succ 0)")
	if code != 0 || out != "2\n" {
		t.Fatalf("code=%d out=%q", code, out)
	}
}

func Test_Cmd_Run_Tokens_And_AST(t *testing.T) {
	code, out, _ := runCmd(t, run, "", "-t", "-a", "-e", "iszero 0")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	want := "Tokens: iszero NUM(0) EOF\nAST: App(IsZero, Num(0))\ntrue\n"
	if out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
}

func Test_Cmd_Run_File_And_Stdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sum.pcf")
	src := "(rec sum => fn x => fn y => if iszero x then y else sum (pred x) (succ y)) 2 3\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if code, out, _ := runCmd(t, run, "", path); code != 0 || out != "5\n" {
		t.Fatalf("file: code=%d out=%q", code, out)
	}
	if code, out, _ := runCmd(t, run, src, "-"); code != 0 || out != "5\n" {
		t.Fatalf("stdin: code=%d out=%q", code, out)
	}
}

func Test_Cmd_Run_Failures(t *testing.T) {
	code, _, errOut := runCmd(t, run, "", "-e", "succ true")
	if code != 1 || !strings.Contains(errOut, "could not interpret program") {
		t.Fatalf("runtime: code=%d err=%q", code, errOut)
	}
	code, _, errOut = runCmd(t, run, "", "-e", "(fn x => x")
	if code != 1 || !strings.Contains(errOut, "PARSE ERROR: missing right paren") {
		t.Fatalf("parse: code=%d err=%q", code, errOut)
	}
	code, _, errOut = runCmd(t, run, "", "-e", "x % y")
	if code != 1 || !strings.Contains(errOut, "LEXICAL ERROR") {
		t.Fatalf("lex: code=%d err=%q", code, errOut)
	}
	if code, _, _ = runCmd(t, run, ""); code != 2 {
		t.Fatalf("missing source: code=%d", code)
	}
	if code, _, _ = runCmd(t, run, "", "-d", "many", "-e", "0"); code != 2 {
		t.Fatalf("bad depth: code=%d", code)
	}
}

func Test_Cmd_Run_Depth_And_Trace(t *testing.T) {
	code, _, errOut := runCmd(t, run, "", "-d", "50", "-e", "rec f => f")
	if code != 1 || !strings.Contains(errOut, "recursion depth exceeded (50)") {
		t.Fatalf("code=%d err=%q", code, errOut)
	}
	code, _, errOut = runCmd(t, run, "", "-v", "-e", "succ 0")
	if code != 0 || !strings.Contains(errOut, "pcf: apply succ to 0") || !strings.Contains(errOut, "applications=1") {
		t.Fatalf("code=%d err=%q", code, errOut)
	}
}

func Test_Cmd_Fmt(t *testing.T) {
	code, out, _ := runCmd(t, format, "", "-e", "((fn x => (succ x)) (1))")
	if code != 0 || out != "(fn x => succ x) 1\n" {
		t.Fatalf("code=%d out=%q", code, out)
	}
	if code, _, _ := runCmd(t, format, "", "-e", "if x then"); code != 1 {
		t.Fatalf("want failure on bad input, got %d", code)
	}
}

func Test_Cmd_Demo(t *testing.T) {
	var out bytes.Buffer
	if code := cmdDemo(&out); code != 0 {
		t.Fatalf("demo failed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Value: 140\n") {
		t.Fatalf("demo output:\n%s", out.String())
	}
}

func Test_Cmd_Repl_Commands(t *testing.T) {
	ro := runOptions{maxDepth: -1}
	if replCommand(":tokens", &ro) || !ro.showTokens {
		t.Fatalf(":tokens should toggle on")
	}
	if replCommand(":ast", &ro) || !ro.showAST {
		t.Fatalf(":ast should toggle on")
	}
	if !replCommand(":quit", &ro) {
		t.Fatalf(":quit should exit")
	}
}
