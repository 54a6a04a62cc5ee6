package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goforj/godump"
)

func main() {

	//
	// One-shot mode: join the arguments into a single buffer,
	// evaluate it once, and print either the surviving error or
	// the rendered stack.  Always exit 0 - evaluation errors are
	// advisory here too
	//

	if len(os.Args) > 1 {
		fmt.Println(oneShot(os.Args[1:]))
		return
	}

	interact()
}

func oneShot(args []string) string {

	res := evaluate(strings.Join(args, " "))
	if res.errMsg != "" {
		return res.errMsg
	}

	return render(res.stack, res.format)
}

//
// The interactive session.  We need to Close the Liner instance on
// every exit path, to make sure we end up back in normal (cooked)
// terminal mode
//

func interact() {

	checkTerminal()

	setupWindow()

	setupLiner()

	defer cleanupLiner()

	clearScreen()

	printVersionInfo()

	initHistory()

	initClock()

	g.loginTime = time.Now()

	//
	// Run the signal handling code in a goroutine
	//

	go sigHdlr()

	//
	// Loop forever, or until we quit
	//

	for !g.exiting {
		line, eof := readLine(g.liner, myPrompt)
		if eof {
			break
		}

		doLine(line)
	}
}

//
// Dispatch one accepted input line.  Command verbs are checked
// before the evaluator sees the buffer; everything else is handed
// to evaluate() as-is
//

func doLine(line string) {

	switch strings.TrimSpace(line) {
	case "":
		return

	case "bye":
		g.exiting = true
		return

	case "help":
		executeHelp()
		return

	case "list":
		executeList()
		return

	case "stats":
		executeStats()
		return

	case "dump":
		executeDump()
		return
	}

	res := evaluate(line)

	if res.errMsg != "" {
		fmt.Println(res.errMsg)
	}

	out := render(res.stack, res.format)
	fmt.Println(out)

	g.lastResult = res
	s.numEvaluations++

	historyInsert(line, out)
}

//
// Debug hook: dump the most recent evaluation result
//

func executeDump() {

	godump.Dump(g.lastResult)
}

//
// The only signal we care about is SIGWINCH, so the 'list' command
// clips to the current window width after a resize
//

func sigHdlr() {

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, syscall.SIGWINCH)

	for range ch {
		setupWindow()
	}
}
