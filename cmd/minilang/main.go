// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"minilang/grammar"
	"minilang/internal/ast"
	"minilang/internal/ssa"
)

var log = commonlog.GetLogger("minilang")

func main() {
	showTokens := flag.Bool("tokens", false, "print the token stream")
	showAST := flag.Bool("ast", false, "print the abstract syntax tree")
	showSSA := flag.Bool("ssa", true, "print the SSA form")
	equiv := flag.Bool("equiv", false, "compare the SSA forms of two programs")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Usage = usage
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	startTime := time.Now()

	var err error
	if *equiv {
		if flag.NArg() != 2 {
			usage()
			os.Exit(1)
		}
		err = runEquivalence(flag.Arg(0), flag.Arg(1))
	} else {
		if flag.NArg() != 1 {
			usage()
			os.Exit(1)
		}
		err = runAnalysis(flag.Arg(0), *showTokens, *showAST, *showSSA)
	}

	duration := formatDuration(time.Since(startTime))
	if err != nil {
		color.Red("Analysis failed after %s", duration)
		os.Exit(1)
	}
	color.Green("Finished in %s", duration)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: minilang [flags] <file.ml>")
	fmt.Fprintln(os.Stderr, "       minilang -equiv <first.ml> <second.ml>")
	flag.PrintDefaults()
}

func runAnalysis(path string, showTokens, showAST, showSSA bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if showTokens {
		tokens, err := grammar.Tokenize(path, string(source))
		if err != nil {
			return err
		}
		section("Tokens")
		for _, token := range tokens {
			fmt.Printf("%s %q\n", token.Pos, token.Value)
		}
	}

	program, err := grammar.ParseSource(path, string(source))
	if err != nil {
		grammar.ReportParseError(string(source), err)
		return err
	}

	stmts := grammar.Lower(program)
	log.Infof("parsed %d statements from %s", len(stmts), path)

	if showAST {
		section("Abstract Syntax Tree (AST)")
		fmt.Println(ast.Print(stmts))
	}

	if showSSA {
		section("Static Single Assignment (SSA) Form")
		fmt.Println(ssa.Format(ssa.Convert(stmts)))
	}

	return nil
}

// runEquivalence converts each program with its own converter so version
// numbers and bindings cannot leak between the two inputs.
func runEquivalence(firstPath, secondPath string) error {
	first, err := loadSSA(firstPath)
	if err != nil {
		return err
	}
	second, err := loadSSA(secondPath)
	if err != nil {
		return err
	}

	section(fmt.Sprintf("Program 1 SSA (%s)", firstPath))
	fmt.Println(ssa.Format(first))
	section(fmt.Sprintf("Program 2 SSA (%s)", secondPath))
	fmt.Println(ssa.Format(second))

	section("Equivalence Result")
	verdict := ssa.Compare(first, second)
	if verdict.Equivalent {
		color.Green("%s", verdict)
	} else {
		color.Yellow("%s", verdict)
	}
	return nil
}

func loadSSA(path string) ([]ssa.Statement, error) {
	program, err := grammar.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return ssa.Convert(grammar.Lower(program)), nil
}

func section(title string) {
	fmt.Printf("\n%s:\n", title)
	fmt.Println("----------------------------------------")
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
