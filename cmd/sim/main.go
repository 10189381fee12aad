// Command sim plays battles from the terminal and manages local battle data.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	registry := NewRegistry()
	registry.Register(&BattleCommand{out: os.Stdout})
	registry.Register(&BatchCommand{out: os.Stdout})
	registry.Register(&DexCommand{out: os.Stdout})
	registry.Register(&SecretsCommand{out: os.Stdout})
	registry.Register(&LeaderboardCommand{out: os.Stdout})
	registry.Register(&DeadLettersCommand{out: os.Stdout})
	registry.Register(&MigrateCommand{})
	registry.Register(&MigrateStatusCommand{out: os.Stdout})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args[2:])
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, context.Canceled):
		PrintWarning("Interrupted")
		os.Exit(130)
	default:
		PrintError("%v", err)
		os.Exit(1)
	}
}
