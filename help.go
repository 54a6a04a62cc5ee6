package main

import (
	"fmt"
)

func executeHelp() {

	fmt.Println("Commands:")
	fmt.Println("  bye    exit the calculator")
	fmt.Println("  dump   debug dump of the last result")
	fmt.Println("  help   this text")
	fmt.Println("  list   show the session history")
	fmt.Println("  stats  show session statistics")
	fmt.Println()
	fmt.Println("Language (whitespace separated tokens, evaluated left to right):")
	fmt.Println("  123, 0x7b   push a decimal or hex literal")
	fmt.Println("  p, +        add the top two stack entries")
	fmt.Println("  m, *        multiply the top two stack entries")
	fmt.Println("  d           integer divide (second from top / top)")
	fmt.Println("  i           iota, ( n --- 1 .. n )")
	fmt.Println("  /op         fold the whole stack with op, e.g. /p")
	fmt.Println("  .h, .d      switch to hex/decimal output")
}
