// Command algb-ref runs the pedagogical recursive reference solver
// (spec.md §4.4) over a DIMACS CNF instance. Flags are parsed with
// github.com/alexflint/go-arg, the struct-tag-driven CLI library the
// CptPie-DPLL-solver repo in the retrieval pack uses.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/anvarnier/algb"
	"github.com/anvarnier/algb/internal/dimacs"
)

type args struct {
	Instance string `arg:"positional,required" help:"path to a DIMACS CNF instance"`
	UnitProp bool   `arg:"-u,--unit-prop" help:"use the unit-propagating DPLL variant instead of plain Davis-Putnam"`
	All      bool   `arg:"-a,--all" help:"enumerate every model via the lazy iterator"`
}

func run(a args) error {
	clauses, err := dimacs.Parse(a.Instance, false)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	f, err := algb.NewFormula(clauses)
	if err != nil {
		return fmt.Errorf("malformed instance: %w", err)
	}

	if a.All {
		e := f.Enumerate()
		n := 0
		for {
			m, ok := e.Next()
			if !ok {
				break
			}
			n++
			printModel(m)
		}
		fmt.Printf("c models: %d\n", n)
		return nil
	}

	var model algb.Model
	var ok bool
	if a.UnitProp {
		model, ok = f.SolveDPLL()
	} else {
		model, ok = f.SolveDP()
	}

	if !ok {
		fmt.Println("s UNSATISFIABLE")
		return nil
	}
	fmt.Println("s SATISFIABLE")
	printModel(model)
	return nil
}

func printModel(m algb.Model) {
	fmt.Print("v")
	for _, l := range m {
		fmt.Printf(" %d", l)
	}
	fmt.Println(" 0")
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
