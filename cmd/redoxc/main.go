// Command redoxc is the out-of-core driver for the compiler pipeline: it
// reads source text, runs it through lex → parse → type-check → IR-gen,
// and prints the resulting RXIR module. It does not invoke a native code
// generator or linker.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/hxyulin/redoxc/irgen"
	"github.com/hxyulin/redoxc/lexer"
	"github.com/hxyulin/redoxc/parser"
	"github.com/hxyulin/redoxc/rxir"
	"github.com/hxyulin/redoxc/typecheck"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	outputFile string
	moduleName string
	traceLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "redoxc",
		Short: "redoxc: ahead-of-time compiler front end, lexer through RXIR",
		Long: `redoxc compiles source text through lexing, parsing, type checking,
and IR generation, producing an RXIR module. It does not generate native
code or link; those stages are external to this pipeline.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			tracing.Select("redoxc").SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")

	buildCmd := &cobra.Command{
		Use:   "build [file]",
		Short: "compile a file (or stdin) through to RXIR and print its text form",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	buildCmd.Flags().StringVar(&moduleName, "module-name", "main", "name of the generated RXIR module")

	tokensCmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "lex a file (or stdin) and print its token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokens,
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "read one function definition at a time, compile it, print its RXIR",
		RunE:  runREPL,
	}

	rootCmd.AddCommand(buildCmd, tokensCmd, replCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	var reader io.Reader
	if len(args) == 0 || args[0] == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("cannot open file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(content), nil
}

func writeOutput(s string) error {
	var writer io.Writer
	if outputFile == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}
	_, err := io.WriteString(writer, s)
	return err
}

func runBuild(cmd *cobra.Command, args []string) error {
	source, err := readInput(args)
	if err != nil {
		return err
	}

	module, err := compile(moduleName, source)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	return writeOutput(module.String())
}

// compile runs the full pipeline: parse, type check, generate.
func compile(name, source string) (*rxir.Module, error) {
	tops, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if err := typecheck.Check(tops); err != nil {
		return nil, fmt.Errorf("type error: %w", err)
	}

	module, err := irgen.Generate(irgen.ModuleName{Name: name}, tops)
	if err != nil {
		return nil, fmt.Errorf("ir generation error: %w", err)
	}
	return module, nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readInput(args)
	if err != nil {
		return err
	}

	lex := lexer.New(source)
	for {
		tok, ok, err := lex.Next()
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		if !ok {
			break
		}
		fmt.Printf("%-4d..%-4d %s\n", tok.Span.Start, tok.Span.End, tok)
	}
	return nil
}

// runREPL is a small sandbox: it reads one function definition per line,
// compiles it through the full pipeline, and prints its RXIR, as an
// experimentation aid during early development.
func runREPL(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("redoxc> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("redoxc repl — one function definition per line, Ctrl-D to quit")
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		module, err := compile("repl", line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		pterm.Success.Println(module.String())
	}
	return nil
}
