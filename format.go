package main

import (
	"fmt"
	"strings"
)

//
// render formats the stack bottom-to-top under the given display
// format.  Every element, including the last, gets a trailing space:
// scripted consumers compare this output byte for byte, so don't
// get clever here
//

func render(stack []int64, format int) string {

	var out strings.Builder

	verb := "%d "
	if format == formatHex {
		verb = "%#x "
	}

	for _, x := range stack {
		fmt.Fprintf(&out, verb, x)
	}

	return out.String()
}
