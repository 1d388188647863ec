// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"minilang/grammar"
	"minilang/internal/ssa"
)

const PROMPT = ">> "

// Start reads MiniLang statements line by line and prints their SSA form.
// A single converter lives for the whole session, so versions continue
// across lines: typing "x = 1;" then "x = x + 1;" shows x_1 then x_2.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)
	converter := ssa.NewConverter()

	for {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		program, err := grammar.ParseSource("repl", line)
		if err != nil {
			grammar.ReportParseError(line, err)
			continue
		}

		out := converter.Convert(grammar.Lower(program))
		if len(out) == 0 {
			continue
		}
		fmt.Println(ssa.Format(out))
	}
}
