// Command algb runs the watched-literal engine over a DIMACS CNF
// instance, mirroring the teacher's own main.go: plain flag parsing,
// "c "-prefixed progress lines, and a SAT competition-style "s"/"v"
// result line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anvarnier/algb"
	"github.com/anvarnier/algb/internal/dimacs"
)

var (
	flagGzip = flag.Bool("gzip", false, "instance file is gzip-compressed")
	flagAll  = flag.Bool("all", false, "enumerate every model instead of stopping at the first")
)

func run(path string) error {
	clauses, err := dimacs.Parse(path, *flagGzip)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	f, err := algb.NewFormula(clauses)
	if err != nil {
		return fmt.Errorf("malformed instance: %w", err)
	}

	fmt.Printf("c clauses: %d\n", len(clauses))

	if *flagAll {
		start := time.Now()
		models := f.SolveAll()
		fmt.Printf("c time (sec): %f\n", time.Since(start).Seconds())
		fmt.Printf("c models: %d\n", len(models))
		for _, m := range models {
			printModel(m)
		}
		return nil
	}

	start := time.Now()
	model, ok := f.Solve()
	fmt.Printf("c time (sec): %f\n", time.Since(start).Seconds())
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
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] instance.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}
