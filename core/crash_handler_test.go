package core

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCrashCapture swaps the exit and output sinks for the duration of a test
func withCrashCapture(t *testing.T) (*bytes.Buffer, *int, <-chan struct{}) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	exited := make(chan struct{})

	crashMu.Lock()
	prevOut, prevExit, prevHook := crashOut, crashExit, crashHook
	crashOut = &buf
	crashExit = func(c int) {
		code = c
		close(exited)
	}
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOut, crashExit, crashHook = prevOut, prevExit, prevHook
		crashMu.Unlock()
	})
	return &buf, &code, exited
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	buf, code, _ := withCrashCapture(t)
	HandleCrash(nil)
	assert.Equal(t, -1, *code)
	assert.Zero(t, buf.Len())
}

func TestHandleCrash_RunsHookThenReports(t *testing.T) {
	buf, code, _ := withCrashCapture(t)

	hookRan := false
	SetCrashHook(func() {
		hookRan = true
		assert.Zero(t, buf.Len(), "hook must run before the report is printed")
	})

	HandleCrash("boom")

	assert.True(t, hookRan)
	assert.Equal(t, 1, *code)
	assert.Contains(t, buf.String(), "CRASH DETECTED: boom")
	assert.Contains(t, buf.String(), "Stack Trace:")
}

func TestGo_RecoversPanic(t *testing.T) {
	buf, code, exited := withCrashCapture(t)

	Go(func() { panic("worker failed") })

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler did not run")
	}
	require.Equal(t, 1, *code)
	assert.Contains(t, buf.String(), "worker failed")
}
