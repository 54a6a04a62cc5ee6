package main

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

//
// Look up a binary operator by symbol.  The table is closed:
// extending the language means adding entries here, nothing is
// registered at runtime
//

func operator(op string) (binaryOp, bool) {

	switch op {
	default:
		return nil, false

	case "p", "+":
		return func(x, y int64) (int64, error) {
			return x + y, nil
		}, true

	case "m", "*":
		return func(x, y int64) (int64, error) {
			return x * y, nil
		}, true

	case "d":
		return func(x, y int64) (int64, error) {
			if y == 0 {
				return 0, errDivisionByZero
			}
			return x / y, nil
		}, true
	}
}

//
// tokens returns a lazy, restartable iterator over the maximal
// non-whitespace runs of the input line (ASCII whitespace splits).
// Tokens containing non-ASCII bytes are skipped outright - not
// evaluated, not diagnosed.  This is a known gap in the language
// that we reproduce on purpose
//

func tokens(input string) iter.Seq[string] {

	return func(yield func(string) bool) {

		start := -1

		for i := 0; i <= len(input); i++ {
			if i < len(input) && !isSpace(input[i]) {
				if start < 0 {
					start = i
				}
				continue
			}

			if start < 0 {
				continue
			}

			tok := input[start:i]
			start = -1

			if !isASCII(tok) {
				continue
			}

			if !yield(tok) {
				return
			}
		}
	}
}

func isSpace(ch byte) bool {

	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isASCII(tok string) bool {

	for i := 0; i < len(tok); i++ {
		if tok[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

//
// evaluate runs one left-to-right pass over the input buffer,
// consuming tokens against a fresh stack.  Exactly one effect fires
// per token, and the scan never stops early: a fault just records an
// advisory message (most recent wins) and the loop moves on.  The
// whole thing is a pure function of the input string - no state
// survives between calls
//

func evaluate(input string) evalResult {

	var stack []int64
	var errMsg string

	format := formatDecimal

	for tok := range tokens(input) {

		//
		// Hex literal: push the value, and flip the whole pass to
		// hex output.  The prefix must be the exact lowercase "0x"
		//

		if rest, ok := strings.CutPrefix(tok, "0x"); ok {
			if num, err := strconv.ParseInt(rest, 16, 64); err == nil {
				stack = append(stack, num)
				format = formatHex
				continue
			}
		}

		if num, err := strconv.ParseInt(tok, 10, 64); err == nil {
			stack = append(stack, num)
			continue
		}

		head, rest := tok[:1], tok[1:]

		switch head {

		// iota, ( n --- 1 .. n )

		case "i":
			if n := len(stack); n > 0 {
				count := stack[n-1]
				stack = stack[:n-1]
				for v := int64(1); v <= count; v++ {
					stack = append(stack, v)
				}
			} else {
				errMsg = EIOTAOPERAND
			}
			continue

		// fold, /op, ( a b .. x --- a op b op .. op x )

		case "/":
			if op, ok := operator(rest); !ok {
				errMsg = EBADFOLDOP
			} else if len(stack) == 0 {
				errMsg = EEMPTYFOLD
			} else {
				acc := stack[0]
				var err error
				for _, v := range stack[1:] {
					if acc, err = op(acc, v); err != nil {
						break
					}
				}
				if err != nil {
					errMsg = err.Error()
				} else {
					stack = append(stack[:0], acc)
				}
			}
			continue

		// output mode directive; unknown modes are a silent no-op

		case ".":
			switch rest {
			case "h":
				format = formatHex
			case "d":
				format = formatDecimal
			}
			continue
		}

		//
		// Binary operator: a is the top of the stack, b the element
		// under it, and the result is op(b, a).  With fewer than two
		// operands the token falls through to the catch-all below
		//

		if op, ok := operator(head); ok && len(stack) >= 2 {
			n := len(stack)
			a, b := stack[n-1], stack[n-2]
			if res, err := op(b, a); err != nil {
				errMsg = err.Error()
			} else {
				stack = append(stack[:n-2], res)
			}
			continue
		}

		errMsg = fmt.Sprintf("couldn't parse '%s'", tok)
	}

	return evalResult{
		stack:  stack,
		errMsg: errMsg,
		format: format,
	}
}
