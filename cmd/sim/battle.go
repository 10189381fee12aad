package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/match"
)

const defaultBatchRuns = 100

// BattleCommand plays one battle and narrates it turn by turn
type BattleCommand struct {
	out io.Writer
}

func (c *BattleCommand) Name() string {
	return "battle"
}

func (c *BattleCommand) Description() string {
	return "Play one narrated battle between Red and Blue"
}

func (c *BattleCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	teams := bindTeamFlags(fs)
	delay := fs.Duration("delay", 0, "pause between turns for live viewing, e.g. 160ms")
	quiet := fs.Bool("quiet", false, "print only the final result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	red, blue := teams.specs()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := match.SimulateOptions{Seed: teams.seedPtr(), Delay: *delay}
	if !*quiet {
		opts.OnTurn = func(_ int, events []domain.BattleEvent) {
			for _, line := range battle.Narrate(events) {
				fmt.Fprintln(c.out, line)
			}
		}
	}

	start := time.Now()
	res, err := rt.services.Matches.Simulate(ctx, red, blue, opts)
	if err != nil {
		return err
	}

	printSummary(c.out, res.Summary)
	PrintSuccess("Battle finished in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// BatchCommand plays the same matchup many times and reports win rates
type BatchCommand struct {
	out io.Writer
}

func (c *BatchCommand) Name() string {
	return "batch"
}

func (c *BatchCommand) Description() string {
	return "Simulate a matchup many times and report win rates"
}

func (c *BatchCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	teams := bindTeamFlags(fs)
	runs := fs.Int("runs", defaultBatchRuns, "number of battles to play")
	if err := fs.Parse(args); err != nil {
		return err
	}
	red, blue := teams.specs()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	PrintInfo("Simulating %d battles on %d workers...", *runs, rt.cfg.SimWorkers)
	res, err := rt.services.Matches.SimulateBatch(ctx, red, blue, *runs, teams.seedPtr())
	if err != nil {
		return err
	}

	printBatch(c.out, res)
	if res.Failed > 0 {
		PrintWarning("%d battles failed", res.Failed)
	}
	return nil
}

func sideLabel(s domain.Side) string {
	return strings.ToUpper(string(s))
}

func printSummary(w io.Writer, s domain.BattleSummary) {
	fmt.Fprintln(w)
	switch {
	case s.Truncated:
		fmt.Fprintf(w, "Stopped after %d turns without a winner.\n", s.Turns)
	case s.Draw:
		fmt.Fprintf(w, "Draw after %d turns.\n", s.Turns)
	default:
		fmt.Fprintf(w, "%s wins after %d turns.\n", sideLabel(s.Winner), s.Turns)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIDE\tCREATURE\tDAMAGE\tKOS\tSTATUS")
	for _, c := range s.Combatants {
		status := "standing"
		if c.Fainted {
			status = "fainted"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", sideLabel(c.Side), c.Name, c.DamageDealt, c.Knockouts, status)
	}
	_ = tw.Flush()
}

func printBatch(w io.Writer, b *domain.BatchResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Battles\t%d\n", b.Battles)
	fmt.Fprintf(tw, "Red wins\t%d\t(%.1f%%)\n", b.RedWins, b.RedWinRate*100)
	fmt.Fprintf(tw, "Blue wins\t%d\t(%.1f%%)\n", b.BlueWins, b.BlueWinRate*100)
	fmt.Fprintf(tw, "Draws\t%d\n", b.Draws)
	if b.Truncated > 0 {
		fmt.Fprintf(tw, "Truncated\t%d\n", b.Truncated)
	}
	fmt.Fprintf(tw, "Avg turns\t%.1f\n", b.AvgTurns)
	_ = tw.Flush()
}
