package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/xiam/sexprdot"
	"github.com/xiam/sexprdot/ast"
	"github.com/xiam/sexprdot/lexer"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// CLI represents the command-line interface
type CLI struct {
	Path string `arg:"" help:"S-expression source file."`

	Config string `short:"c" help:"YAML configuration file."`
	Output string `short:"o" help:"Write the document to this file instead of stdout."`

	Tokens bool `help:"Print the token stream instead of the graph."`
	AST    bool `name:"ast" help:"Print the parsed tree instead of the graph."`

	AllowUnterminatedStrings bool `help:"Accept string literals cut short by the end of input."`
	AllowCRLF                bool `name:"allow-crlf" help:"Treat carriage returns as whitespace."`
	RejectControlCharacters  bool `help:"Fail on control bytes outside strings."`
	MaxDepth                 int  `help:"Maximum list nesting; 0 keeps the configured value, negative disables the limit."`

	Verbose bool `short:"v" help:"Log progress to stderr."`
}

var errorLabel = color.New(color.FgRed, color.Bold)

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1
	k, err := kong.New(&cli,
		kong.Name("sexpr2dot"),
		kong.Description("Render s-expressions as a Graphviz DOT document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		panic(err)
	}

	_, err = k.Parse(args)
	if exitCode >= 0 {
		// --help
		return exitCode
	}
	if err != nil {
		k.Errorf("%v", err)
		fmt.Fprintln(stderr, "usage: sexpr2dot [flags] <path>")
		return exitUsage
	}

	logger := log.New(io.Discard, "sexpr2dot: ", 0)
	if cli.Verbose {
		logger.SetOutput(stderr)
	}

	if err := cli.run(stdout, logger); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", errorLabel.Sprint("error:"), describe(cli.Path, err))
		return exitError
	}
	return exitOK
}

func (cli *CLI) config() (sexprdot.Config, error) {
	cfg := sexprdot.DefaultConfig()
	if cli.Config != "" {
		loaded, err := sexprdot.LoadConfig(cli.Config)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cli.AllowUnterminatedStrings {
		cfg.Parse.AllowUnterminatedStrings = true
	}
	if cli.AllowCRLF {
		cfg.Parse.AllowCRLF = true
	}
	if cli.RejectControlCharacters {
		cfg.Parse.RejectControlCharacters = true
	}
	if cli.MaxDepth != 0 {
		cfg.Parse.MaxDepth = cli.MaxDepth
	}
	return cfg, nil
}

func (cli *CLI) run(stdout io.Writer, logger *log.Logger) error {
	cfg, err := cli.config()
	if err != nil {
		return err
	}
	if cli.Config != "" {
		logger.Printf("loaded config from %s", cli.Config)
	}

	src, err := sexprdot.ReadFile(cli.Path)
	if err != nil {
		return err
	}
	logger.Printf("read %d bytes from %s", len(src), cli.Path)

	var buf bytes.Buffer
	if err := cli.produce(&buf, src, cfg, logger); err != nil {
		return err
	}

	if cli.Output != "" {
		if err := os.WriteFile(cli.Output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Printf("wrote %s", cli.Output)
		return nil
	}

	_, err = stdout.Write(buf.Bytes())
	return err
}

// produce writes the requested view of src to w. Nothing is written when
// src fails to parse.
func (cli *CLI) produce(w io.Writer, src []byte, cfg sexprdot.Config, logger *log.Logger) error {
	switch {
	case cli.Tokens:
		return printTokens(w, src, cfg)
	case cli.AST:
		tree, roots, err := sexprdot.Parse(src, cfg)
		if err != nil {
			return err
		}
		logger.Printf("parsed %d roots, %d nodes", len(roots), tree.Len())
		return ast.Fprint(w, tree, roots)
	}

	doc, err := sexprdot.Convert(src, cfg)
	if err != nil {
		return err
	}
	logger.Printf("rendered %d bytes", len(doc))

	_, err = io.WriteString(w, doc)
	return err
}

func printTokens(w io.Writer, src []byte, cfg sexprdot.Config) error {
	tokens, err := lexer.TokenizeWithOptions(src, cfg.Parse.LexerOptions())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "POSITION\tTYPE\tVALUE\n")
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%v\t%v\t%q\n", lexer.Locate(src, tok.Offset), tok.Type(), tok.Text(src))
	}
	return tw.Flush()
}

// describe prefixes positional errors with the file name.
func describe(path string, err error) string {
	var posErr *lexer.Error
	if errors.As(err, &posErr) {
		return fmt.Sprintf("%s:%v", path, err)
	}
	return err.Error()
}
