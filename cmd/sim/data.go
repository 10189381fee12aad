package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/osse101/battlesim/internal/database"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/stats"
)

// DexCommand lists creatures known to the data provider
type DexCommand struct {
	out io.Writer
}

func (c *DexCommand) Name() string {
	return "dex"
}

func (c *DexCommand) Description() string {
	return "List creatures by dex id"
}

func (c *DexCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	limit := fs.Int("limit", 0, "page size (default 200)")
	offset := fs.Int("offset", 0, "entries to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	page, err := rt.services.Provider.ListCreatures(ctx, *limit, *offset)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, cr := range page.Results {
		fmt.Fprintf(tw, "#%d\t%s\n", cr.ID, cr.Name)
	}
	_ = tw.Flush()
	PrintInfo("Showing %d-%d of %d", page.Offset+1, page.Offset+len(page.Results), page.Count)
	return nil
}

// SecretsCommand shows which secret traits have been discovered
type SecretsCommand struct {
	out io.Writer
}

func (c *SecretsCommand) Name() string {
	return "secrets"
}

func (c *SecretsCommand) Description() string {
	return "Show secret traits and their discovery state"
}

func (c *SecretsCommand) Run(ctx context.Context, args []string) error {
	if err := flag.NewFlagSet(c.Name(), flag.ContinueOnError).Parse(args); err != nil {
		return err
	}

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	secrets, err := rt.services.Discovery.Secrets(ctx)
	if err != nil {
		return err
	}

	found := 0
	for _, s := range secrets {
		if s.Discovered {
			found++
			fmt.Fprintf(c.out, "%s - %s\n", s.Name, s.Hint)
			continue
		}
		fmt.Fprintln(c.out, s.Name)
	}
	PrintInfo("%d of %d secrets discovered", found, len(secrets))
	return nil
}

// LeaderboardCommand ranks creatures by wins across recorded battles
type LeaderboardCommand struct {
	out io.Writer
}

func (c *LeaderboardCommand) Name() string {
	return "leaderboard"
}

func (c *LeaderboardCommand) Description() string {
	return "Rank creatures across recorded battles (needs DB_HOST)"
}

func (c *LeaderboardCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	limit := fs.Int("limit", stats.DefaultLeaderboardLimit, "rows to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()
	if rt.pool == nil {
		PrintWarning("No DB_HOST configured; only battles from this run are counted")
	}

	entries, err := rt.services.Stats.GetLeaderboard(ctx, *limit)
	if err != nil {
		return err
	}
	totals, err := rt.services.Stats.GetMatchStats(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCREATURE\tWINS\tBATTLES\tKOS\tDAMAGE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n", e.Rank, e.Name, e.Wins, e.Battles, e.Knockouts, e.DamageDealt)
	}
	_ = tw.Flush()
	PrintInfo("%d battles recorded, %.1f turns on average", totals.Battles, totals.AverageTurns())
	return nil
}

// MigrateCommand applies pending schema migrations
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply pending database migrations"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if err := flag.NewFlagSet(c.Name(), flag.ContinueOnError).Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema at version %d", version)
	return nil
}

// MigrateStatusCommand lists migrations and whether each is applied
type MigrateStatusCommand struct {
	out io.Writer
}

func (c *MigrateStatusCommand) Name() string {
	return "migrate-status"
}

func (c *MigrateStatusCommand) Description() string {
	return "Show which database migrations are applied"
}

func (c *MigrateStatusCommand) Run(ctx context.Context, args []string) error {
	if err := flag.NewFlagSet(c.Name(), flag.ContinueOnError).Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	states, err := database.Status(ctx, pool)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
	for _, s := range states {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Source)
	}
	return tw.Flush()
}

// DeadLettersCommand lists battle events that could not be delivered
type DeadLettersCommand struct {
	out io.Writer
}

func (c *DeadLettersCommand) Name() string {
	return "deadletters"
}

func (c *DeadLettersCommand) Description() string {
	return "List undeliverable battle events"
}

func (c *DeadLettersCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	path := fs.String("path", "", "dead-letter file (default EVENT_DEADLETTER_PATH)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		*path = cfg.EventDeadLetterPath
	}

	entries, err := event.ReadDeadLetters(*path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		PrintSuccess("No dead-lettered events in %s", *path)
		return nil
	}

	printDeadLetters(c.out, entries)
	PrintWarning("%d undelivered event(s)", len(entries))
	return nil
}

func printDeadLetters(w io.Writer, entries []event.DeadLetterEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tTYPE\tMATCH\tATTEMPTS\tERROR")
	for _, e := range entries {
		matchID := e.Event.MatchID()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			e.Timestamp.Format(time.RFC3339), e.Event.Type, matchID, e.Attempts, e.LastError)
	}
	_ = tw.Flush()
}
