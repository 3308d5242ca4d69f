package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/mxfmeta/internal/cli"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mxf.ExitPanic)
		}
	}()

	if os.Getenv("MXFMETA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(mxf.ExitCodeForError(err))
	}
}
