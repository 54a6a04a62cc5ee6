package main

import (
	"time"

	"github.com/danswartzendruber/avl"
	"github.com/danswartzendruber/liner"
)

//
// Constants
//

const VERSION = "1.0.0"

const myPrompt = "> "

const minWindowCols = 20

const clearScreenSeq = "\033[2J\033[H"

//
// Display formats for rendering the stack.  The format is reset to
// decimal at the start of every evaluation; only the value in force
// after the whole pass governs rendering
//

const (
	formatDecimal = iota
	formatHex
)

//
// Type definitions
//

//
// A binary integer operation.  The error return exists solely for
// division by zero, which must surface as an advisory evaluation
// fault rather than a runtime panic
//

type binaryOp func(x, y int64) (int64, error)

//
// The result of evaluating one input buffer.  errMsg holds at most
// the most recent advisory error seen during the pass - earlier
// errors are overwritten, never accumulated.  An empty string means
// no error
//

type evalResult struct {
	stack  []int64
	errMsg string
	format int
}

type historyNode struct {
	avl    avl.AvlNode
	seqNo  int16
	input  string
	output string
}

type window struct {
	rows int
	cols int
}

//
// Global variables
//

//
// This structure contains the persistent session state.  The
// evaluator itself is a pure function and never touches it
//

var g struct {
	history    *avl.AvlNode
	liner      *liner.State
	window     window
	lastResult evalResult
	loginTime  time.Time
	nextSeqNo  int16
	exiting    bool
}

//
// Session statistics
//

var s struct {
	elapsed        time.Time
	utime          int64
	stime          int64
	numEvaluations int64
}
