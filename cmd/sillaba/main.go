// Command sillaba marks syllable boundaries in Italian verse.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/sillaba/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintln(os.Stderr, "sillaba:", err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
