package app

import (
	"context"
	"testing"
	"time"
)

func TestDeadlineSweeperStopsOnCancel(t *testing.T) {
	a := &App{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.runDeadlineSweeper(ctx, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper goroutine did not exit after cancel")
	}
}
