package server

import (
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown returns a channel that is closed on the first interrupt
// or terminate signal.
func waitForShutdown() <-chan struct{} {
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		signal.Stop(quit)
		close(done)
	}()
	return done
}
