package main

import (
	"fmt"
	"log"

	"github.com/xiam/sexprdot/lexer"
)

func main() {
	input := []byte(`
		(fn_a
			(fn_b 89 :A :B (67 3.27))
			(fn_c 66 3 53 "Hello world!")
		)
	`)

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		pos := lexer.Locate(input, tok.Offset)
		lexeme := tok.Text(input)
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, pos.Line, pos.Column, lexeme)
	}
}
