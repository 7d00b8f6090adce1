package main

import (
	"fmt"
	"log"

	"github.com/xiam/sexprdot/parser"
	"github.com/xiam/sexprdot/render"
)

func main() {
	input := `(fn_a (fn_b 89 :A :B) (fn_c "Hello world!")) (print ok)`

	tree, roots, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	r := render.New(render.Options{
		Name:       "example",
		Attributes: map[string]string{"rankdir": "LR"},
	})
	fmt.Print(r.Render(tree, roots))
}
