package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
	"github.com/UmairZakria/gbs-dashboard2/internal/interfaces/cli"
)

func main() {
	// Cancel in-flight requests on Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	streams := cli.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
	if err := cli.Execute(ctx, streams, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+httpclient.MessageOr(err, err.Error()))
		stop()
		os.Exit(1)
	}
}
