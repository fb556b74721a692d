// Package dimacs adapts the github.com/rhartert/dimacs streaming parser
// to algb's plain [][]int clause representation, and provides the
// matching ".models" golden-file format used by the test harness.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"
)

// Parse reads a DIMACS CNF file (optionally gzip-compressed) and returns
// its clauses as plain signed-literal slices, ready for algb.NewFormula.
func Parse(filename string, gzipped bool) ([][]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("algb/dimacs: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("algb/dimacs: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	b := &clauseBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("algb/dimacs: %w", err)
	}
	return b.clauses, nil
}

// clauseBuilder implements dimacs.Builder, accumulating clauses as plain
// [][]int. It ignores the declared variable/clause counts: algb derives
// both from the clause contents, per spec.md §4.2.
type clauseBuilder struct {
	clauses [][]int
}

func (b *clauseBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q", problem)
	}
	b.clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *clauseBuilder) Clause(lits []int) error {
	clause := make([]int, len(lits))
	copy(clause, lits)
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *clauseBuilder) Comment(_ string) error { return nil }

// ParseModels reads a ".cnf.models" golden file: one model per line, each
// a whitespace-separated list of signed literals, in the same variable
// ordering as the corresponding instance file. An empty file denotes
// UNSAT (zero models).
func ParseModels(filename string) ([][]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("algb/dimacs: %w", err)
	}
	defer f.Close()

	var models [][]int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		model := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("algb/dimacs: %s: %w", filename, err)
			}
			model[i] = v
		}
		models = append(models, model)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("algb/dimacs: %w", err)
	}
	return models, nil
}

// WriteCNF writes clauses to w in DIMACS CNF format, headed by a problem
// line derived from the clause contents.
func WriteCNF(w io.Writer, clauses [][]int) error {
	maxVar := 0
	for _, c := range clauses {
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		parts := make([]string, 0, len(c)+1)
		for _, l := range c {
			parts = append(parts, strconv.Itoa(l))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
