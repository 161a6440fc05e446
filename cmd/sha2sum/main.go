package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nemuizzz/sha2sum/cmd/sha2sum/commands"
)

func main() {
	// Cancel in-flight URL fetches on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute the root command
	if err := commands.Execute(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}
