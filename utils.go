package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danswartzendruber/liner"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
)

//
// Ensure we are connected to a tty!  One-shot mode never gets here,
// so piped invocations still work
//

func checkTerminal() {

	if !term.IsTerminal(2) {
		crash("")
	}

	if !term.IsTerminal(0) {
		crash("Standard input must be a terminal")
	}

	if !term.IsTerminal(1) {
		crash("Standard output must be a terminal")
	}
}

//
// Read terminal geometry.  Called at startup, and again whenever
// sigHdlr sees a SIGWINCH
//

func setupWindow() {

	var err error

	g.window.rows, g.window.cols, err = term.GetSize(0)
	if err != nil {
		crash("Unable to read terminal parameters")
	}

	if g.window.cols < minWindowCols {
		crash("Terminal width must be >= 20 characters")
	}
}

func setupLiner() {

	g.liner = liner.NewLiner()

	g.liner.SetMultiLineMode(true)
}

//
// Restore terminal state.  NB: we cannot call (or cause to be
// called) crash(), as that would recurse
//

func cleanupLiner() {

	if g.liner != nil {
		g.liner.Close()
		g.liner = nil
	}
}

//
// Read a line from the terminal, with editing and history
//

func readLine(l *liner.State, prompt string) (string, bool) {

	s, err := l.Prompt(prompt)

	//
	// ^D at the beginning of the line reads as EOF, which is the
	// normal way out.  ^C aborts the prompt; treat that as an
	// empty line and keep going
	//

	if err != nil {
		if err == io.EOF {
			return "", true
		} else if err == liner.ErrPromptAborted {
			return "", false
		}

		crash(fmt.Sprintf("readLine error: %q", err))
	}

	//
	// If we got here, add the line we just read to our history
	//

	if s != "" {
		l.AppendHistory(s)
	}

	return s, false
}

func clearScreen() {

	fmt.Print(clearScreenSeq)
}

func printVersionInfo() {

	fmt.Printf("rpncalc %s\n", VERSION)
	fmt.Println("Type 'help' for commands, ^D to exit")
	fmt.Println()
}

//
// Print a fatal message and abort the process.  We write to standard
// error, since the user may have redirected standard output.  Make
// sure to close the liner first, so the terminal state is sane
//

func crash(msg string) {

	cleanupLiner()

	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}

	os.Exit(1)
}

//
// Trim a string to a specified maximum length, counted in runes so
// a clip can never split a multibyte character
//

func trimString(str string, maxlen int) string {

	runes := []rune(str)

	return string(runes[:min(len(runes), maxlen)])
}

func pluralize(str string, num int64) string {

	//
	// Oddity: 0 is considered plural
	//

	if num != 1 {
		str += "s"
	}

	return str
}

//
// Initialize the clock
//

func initClock() {

	s.elapsed = time.Now()
	s.utime, s.stime = getCPUInfo()
}

func executeStats() {

	elapsed := time.Since(s.elapsed)
	utime, stime := getCPUInfo()

	fmt.Printf("Session started %s\n",
		g.loginTime.Format("Mon Jan 2 15:04:05"))

	fmt.Printf("%d %s this session\n", s.numEvaluations,
		pluralize("evaluation", s.numEvaluations))

	fmt.Printf("CPU Usage: elapsed = %s / user = %s / system = %s\n",
		formatCPUTime(int64(elapsed.Seconds())),
		formatCPUTime(utime-s.utime), formatCPUTime(stime-s.stime))
}

func formatCPUTime(t int64) string {

	var h, m int64

	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}

	if t >= 60 {
		m = t / 60
		t = t % 60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}

func getCPUInfo() (int64, int64) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		panic(err)
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		panic(err)
	}

	fields := strings.Fields(string(contents))

	utime, err := strconv.ParseInt(fields[13], 10, 64)
	if err != nil {
		panic(err)
	}

	stime, err := strconv.ParseInt(fields[14], 10, 64)
	if err != nil {
		panic(err)
	}

	return utime / clktck, stime / clktck
}
