// Command nullnet builds degree-preserving null-model networks by
// double-edge swaps.
//
//	nullnet permute -i network.tsv -o permuted.tsv -s 7 -q 100
//	nullnet generate --kind regular -n 1000 -d 4 -s 1 -o fixture.tsv
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and cancel the run; no output is written for a cancelled run
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd(ctx, version).Execute(); err != nil {
		log.WithError(err).Error("nullnet failed")
		cancel()
		os.Exit(1)
	}
}
