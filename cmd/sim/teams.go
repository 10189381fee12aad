package main

import (
	"flag"
	"strings"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/match"
)

// teamFlags are the matchup flags shared by battle and batch
type teamFlags struct {
	red    string
	blue   string
	random int
	level  int
	seed   uint64
	fs     *flag.FlagSet
}

func bindTeamFlags(fs *flag.FlagSet) *teamFlags {
	t := &teamFlags{fs: fs}
	fs.StringVar(&t.red, "red", "", "comma-separated creature names or dex ids for Red")
	fs.StringVar(&t.blue, "blue", "", "comma-separated creature names or dex ids for Blue")
	fs.IntVar(&t.random, "random", 0, "random creatures added to each side")
	fs.IntVar(&t.level, "level", 0, "creature level (default from DEFAULT_LEVEL)")
	fs.Uint64Var(&t.seed, "seed", 0, "seed for a reproducible battle")
	return t
}

// specs builds both rosters. A side with no names and no -random gets a
// full random team.
func (t *teamFlags) specs() (red, blue match.TeamSpec) {
	return t.spec(t.red), t.spec(t.blue)
}

func (t *teamFlags) spec(names string) match.TeamSpec {
	spec := match.TeamSpec{
		Creatures: splitList(names),
		Random:    t.random,
		Level:     t.level,
	}
	if spec.Size() == 0 {
		spec.Random = domain.MaxTeamSize
	}
	return spec
}

// seedPtr is nil unless -seed was given
func (t *teamFlags) seedPtr() *uint64 {
	var set bool
	t.fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	if !set {
		return nil
	}
	seed := t.seed
	return &seed
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
