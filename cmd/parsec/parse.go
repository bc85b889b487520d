package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/parsekit-go/parsec/internal/grammars"
)

var grammarName string

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse one or more inputs with a named grammar",
	Long: `Parse reads each file argument (or stdin, if none are given) and runs it
through the grammar selected with --grammar. Parse errors from multiple
files are aggregated and reported together; a single bad file does not
stop the rest from being parsed.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&grammarName, "grammar", "g", "", "Grammar to parse with (json or expr); defaults to the configured default")
}

func runParse(cmd *cobra.Command, args []string) error {
	name := grammarName
	if name == "" {
		name = cfg.DefaultGrammar
	}

	sources, err := readSources(args)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, src := range sources {
		value, err := parseOne(name, src.text)
		if err != nil {
			session.ParseResult(name, "", src.name, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", src.name, err))
			continue
		}
		session.ParseResult(name, "", src.name, nil)
		if err := printValue(name, value); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", src.name, err))
		}
	}
	if result != nil {
		printError(result)
		return result
	}
	return nil
}

func parseOne(grammarName, text string) (any, error) {
	switch grammarName {
	case "json":
		return grammars.JSON().ParseString(text)
	case "expr":
		v, err := grammars.ParseExprList(text)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown grammar %q (want json or expr)", grammarName)
	}
}

func printValue(grammarName string, value any) error {
	if grammarName == "json" {
		out, err := prettyjson.Marshal(value)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("%+v\n", value)
	return nil
}

func printError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red(err.Error()))
}

type namedSource struct {
	name string
	text string
}

func readSources(args []string) ([]namedSource, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []namedSource{{name: "<stdin>", text: string(data)}}, nil
	}
	sources := make([]namedSource, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, namedSource{name: path, text: string(data)})
	}
	return sources, nil
}
