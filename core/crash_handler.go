package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashHook func()
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashHook registers the cleanup run before a crash report is printed
// Hosts use it to restore the terminal; nil clears the hook
func SetCrashHook(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHook = fn
}

// HandleCrash is the unified panic handler that restores the host and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hook := crashHook
	out := crashOut
	exit := crashExit
	crashMu.Unlock()

	// Restore host output before printing so the trace is readable
	if hook != nil {
		hook()
	}

	// Use \r\n so the report stays aligned if the terminal is still in raw mode
	fmt.Fprintf(out, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure host cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
