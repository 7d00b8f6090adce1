package main

import (
	"log"
	"os"

	"github.com/xiam/sexprdot/ast"
	"github.com/xiam/sexprdot/parser"
)

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	tree, roots, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := ast.Fprint(os.Stdout, tree, roots); err != nil {
		log.Fatal(err)
	}
}
