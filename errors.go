package main

import "errors"

//
// Manifest constants for the advisory evaluation errors.  These are
// carried in evalResult.errMsg and never thrown - the evaluator
// visits every token in order regardless of earlier faults
//

const (
	EIOTAOPERAND    = "i needs a number"
	EBADFOLDOP      = "/<op>"
	EEMPTYFOLD      = "nothing to fold"
	EDIVISIONBYZERO = "Division by 0"
)

var errDivisionByZero = errors.New(EDIVISIONBYZERO)
