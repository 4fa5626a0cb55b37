package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/daios-ai/pcf"
)

const (
	appName     = "pcf"
	historyFile = ".pcf_history"
	promptMain  = "pcf> "
	promptCont  = "...  "
)

var (
	banner   = fmt.Sprintf("PCF %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", pcf.Version)
	helpText = `REPL commands:
  :tokens  Toggle printing of the token stream
  :ast     Toggle printing of the syntax tree
  :stats   Toggle printing of evaluation counters
  :quit    Exit the REPL
`
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	blue  = color.New(color.FgHiBlue).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "demo":
		os.Exit(cmdDemo(os.Stdout))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
	case "version":
		fmt.Println(pcf.Version)
		return
	case "-h", "--help", "help":
		usage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `PCF %s (built %s)

Usage:
  %s run [-t] [-a] [-v] [-d depth] (-e expr | file | -)   Evaluate a program.
  %s repl                                                 Start the REPL.
  %s demo                                                 Run the built-in 7 * 20 example.
  %s fmt (-e expr | file | -)                             Print a program in canonical form.
  %s version                                              Print the compiled version.

Flags for run:
  -t        print the token stream
  -a        print the syntax tree
  -v        trace applications and rec unfoldings to stderr
  -d depth  evaluation depth bound (default %d, 0 disables; env PCF_MAX_DEPTH)
`, pcf.Version, pcf.BuildDate, appName, appName, appName, appName, appName, pcf.DefaultMaxDepth)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

type runOptions struct {
	showTokens bool
	showAST    bool
	verbose    bool
	maxDepth   int // < 0 keeps the interpreter default
}

func cmdRun(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	argv := append([]string{appName + " run"}, args...)
	opts, optind, err := getopt.Getopts(argv, "tavd:e:")
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	ro := runOptions{maxDepth: -1}
	expr, haveExpr := "", false
	for _, o := range opts {
		switch o.Option {
		case 't':
			ro.showTokens = true
		case 'a':
			ro.showAST = true
		case 'v':
			ro.verbose = true
		case 'd':
			n, err := strconv.Atoi(o.Value)
			if err != nil || n < 0 {
				fmt.Fprintf(stderr, "%s: invalid -d value %q\n", appName, o.Value)
				return 2
			}
			ro.maxDepth = n
		case 'e':
			expr, haveExpr = o.Value, true
		}
	}

	src, code := readSource(expr, haveExpr, argv[optind:], stdin, stderr)
	if code != 0 {
		return code
	}
	return runPipeline(src, ro, stdout, stderr)
}

// readSource picks the program text from -e, a file operand, or stdin ("-").
func readSource(expr string, haveExpr bool, operands []string, stdin io.Reader, stderr io.Writer) (string, int) {
	if haveExpr {
		return expr, 0
	}
	if len(operands) != 1 {
		fmt.Fprintf(stderr, "%s: expected -e expr or exactly one file\n", appName)
		return "", 2
	}
	var (
		data []byte
		err  error
	)
	if operands[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(operands[0])
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: cannot read %s: %v\n", appName, operands[0], err)
		return "", 1
	}
	return string(data), 0
}

func runPipeline(src string, ro runOptions, stdout, stderr io.Writer) int {
	toks := pcf.Lex(src)
	if ro.showTokens {
		fmt.Fprintf(stdout, "%s %s\n", faint("Tokens:"), pcf.FormatTokens(toks))
	}
	if err := pcf.FirstLexError(toks); err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return 1
	}

	ast := pcf.ParseProgram(toks)
	if ro.showAST {
		fmt.Fprintf(stdout, "%s %s\n", faint("AST:"), pcf.FormatTree(ast))
	}
	if err := pcf.FirstParseError(ast); err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return 1
	}

	ip := pcf.NewInterpreter()
	if ro.maxDepth >= 0 {
		ip.MaxDepth = ro.maxDepth
	}
	var logger *log.Logger
	if ro.verbose {
		logger = log.New(stderr, appName+": ", 0)
		ip.Logger = logger
	}

	v, err := ip.Eval(ast, nil)
	if logger != nil {
		st := ip.Stats()
		logger.Printf("steps=%d applications=%d unfoldings=%d depth=%d",
			st.Steps, st.Applications, st.Unfoldings, st.MaxDepth)
	}
	if err != nil {
		fmt.Fprintln(stderr, red("could not interpret program: "+err.Error()))
		return 1
	}
	fmt.Fprintln(stdout, blue(pcf.FormatValue(v)))
	return 0
}

// -----------------------------------------------------------------------------
// demo
// -----------------------------------------------------------------------------

func cmdDemo(stdout io.Writer) int {
	src := pcf.DemoSource
	toks := pcf.Lex(src)
	ast := pcf.ParseProgram(toks)

	fmt.Fprintf(stdout, "%s %s\n", green("Code:"), src)
	fmt.Fprintf(stdout, "%s %s\n", green("Tokens:"), pcf.FormatTokens(toks))
	fmt.Fprintf(stdout, "%s %s\n", green("AST:"), pcf.FormatTree(ast))

	v, err := pcf.Eval(ast, nil)
	if err != nil {
		fmt.Fprintf(stdout, "%s %s\n", red("Error:"), "could not interpret program")
		return 1
	}
	fmt.Fprintf(stdout, "%s %s\n", green("Value:"), blue(pcf.FormatValue(v)))
	return 0
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	argv := append([]string{appName + " fmt"}, args...)
	opts, optind, err := getopt.Getopts(argv, "e:")
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	expr, haveExpr := "", false
	for _, o := range opts {
		if o.Option == 'e' {
			expr, haveExpr = o.Value, true
		}
	}
	src, code := readSource(expr, haveExpr, argv[optind:], stdin, stderr)
	if code != 0 {
		return code
	}
	ast, err := pcf.ParseSource(src)
	if err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return 1
	}
	fmt.Fprintln(stdout, pcf.FormatExpr(ast))
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ro := runOptions{maxDepth: -1}
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if replCommand(strings.ToLower(trimmed), &ro) {
				return 0
			}
			continue
		}

		runPipeline(code, ro, os.Stdout, os.Stderr)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
	return 0
}

// replCommand applies a ':' command and reports whether the REPL should exit.
func replCommand(cmd string, ro *runOptions) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":tokens":
		ro.showTokens = !ro.showTokens
		fmt.Printf("tokens %s\n", onOff(ro.showTokens))
	case ":ast":
		ro.showAST = !ro.showAST
		fmt.Printf("ast %s\n", onOff(ro.showAST))
	case ":stats":
		ro.verbose = !ro.verbose
		fmt.Printf("stats %s\n", onOff(ro.verbose))
	case ":help":
		fmt.Print(helpText)
	default:
		fmt.Printf("unknown command. Type :help for commands.\n")
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// readByParseProbe keeps reading continuation lines while the buffered text
// is a prefix of some valid program.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := pcf.ParseSource(src); pcf.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
