// Command sexpr2dot renders the s-expressions of a file as a Graphviz DOT
// document.
//
//	sexpr2dot program.sexpr | dot -Tsvg > program.svg
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
