package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/handler"
)

// maxEmbedDescription is Discord's limit on embed descriptions
const maxEmbedDescription = 4096

const logElision = "…\n"

// formatBattleLog joins narration lines, keeping the end of the battle when
// the whole log does not fit in limit bytes
func formatBattleLog(lines []string, limit int) string {
	full := strings.Join(lines, "\n")
	if len(full) <= limit {
		return full
	}

	budget := limit - len(logElision)
	kept := 0
	start := len(lines)
	for start > 0 {
		n := len(lines[start-1])
		if kept > 0 {
			n++ // newline
		}
		if kept+n > budget {
			break
		}
		kept += n
		start--
	}
	return logElision + strings.Join(lines[start:], "\n")
}

func sideLabel(s domain.Side) string {
	return strings.ToUpper(string(s))
}

func outcomeTitle(s domain.BattleSummary) (string, int) {
	switch {
	case s.Truncated:
		return "⏱️ No winner after the turn limit", ColorDraw
	case s.Draw:
		return "🤝 It's a draw!", ColorDraw
	case s.Winner == domain.SideBlue:
		return "🏁 BLUE wins!", ColorBlue
	default:
		return "🏁 RED wins!", ColorRed
	}
}

func rosterField(s domain.BattleSummary, side domain.Side) *discordgo.MessageEmbedField {
	var sb strings.Builder
	for _, c := range s.Combatants {
		if c.Side != side {
			continue
		}
		mark := "✅"
		if c.Fainted {
			mark = "💀"
		}
		fmt.Fprintf(&sb, "%s %s (%d dmg, %d KO)\n", mark, c.Name, c.DamageDealt, c.Knockouts)
	}
	value := sb.String()
	if value == "" {
		value = "-"
	}
	return &discordgo.MessageEmbedField{Name: sideLabel(side), Value: value, Inline: true}
}

// battleEmbeds renders a finished battle: the narration, then the outcome
func battleEmbeds(res *domain.SimulationResult) []*discordgo.MessageEmbed {
	title, color := outcomeTitle(res.Summary)

	outcome := createEmbed(title, fmt.Sprintf("Battle lasted **%d** turns.", res.Summary.Turns), color)
	outcome.Fields = []*discordgo.MessageEmbedField{
		rosterField(res.Summary, domain.SideRed),
		rosterField(res.Summary, domain.SideBlue),
	}

	if len(res.Log) == 0 {
		return []*discordgo.MessageEmbed{outcome}
	}
	log := createEmbed("⚔️ Battle log", formatBattleLog(res.Log, maxEmbedDescription), color)
	log.Footer = nil
	return []*discordgo.MessageEmbed{log, outcome}
}

// batchEmbed renders win rates for a simulated series
func batchEmbed(b *domain.BatchResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔴 RED wins: **%d** (%.1f%%)\n", b.RedWins, b.RedWinRate*100)
	fmt.Fprintf(&sb, "🔵 BLUE wins: **%d** (%.1f%%)\n", b.BlueWins, b.BlueWinRate*100)
	fmt.Fprintf(&sb, "🤝 Draws: **%d**\n", b.Draws)
	if b.Truncated > 0 {
		fmt.Fprintf(&sb, "⏱️ Turn limit: **%d**\n", b.Truncated)
	}
	if b.Failed > 0 {
		fmt.Fprintf(&sb, "⚠️ Failed: **%d**\n", b.Failed)
	}
	fmt.Fprintf(&sb, "Average length: **%.1f** turns", b.AvgTurns)

	color := ColorDraw
	switch {
	case b.RedWins > b.BlueWins:
		color = ColorRed
	case b.BlueWins > b.RedWins:
		color = ColorBlue
	}
	return createEmbed(fmt.Sprintf("📊 %d battles simulated", b.Battles), sb.String(), color)
}

func formatSecrets(resp *handler.SecretsResponse) string {
	var sb strings.Builder
	for _, s := range resp.Secrets {
		if s.Discovered {
			fmt.Fprintf(&sb, "✨ **%s** - %s\n", s.Name, s.Hint)
		} else {
			fmt.Fprintf(&sb, "🔒 %s\n", s.Name)
		}
	}
	fmt.Fprintf(&sb, "\n%d of %d discovered", resp.Discovered, resp.Total)
	return sb.String()
}

var medals = []string{"🥇", "🥈", "🥉"}

func formatLeaderboard(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "No battles recorded yet."
	}
	var sb strings.Builder
	for _, e := range entries {
		rank := fmt.Sprintf("%d.", e.Rank)
		if e.Rank >= 1 && e.Rank <= len(medals) {
			rank = medals[e.Rank-1]
		}
		fmt.Fprintf(&sb, "%s **%s** - %d wins in %d battles, %d KOs\n", rank, e.Name, e.Wins, e.Battles, e.Knockouts)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatMatchStats(st *handler.MatchStatsResponse) string {
	if st.Battles == 0 {
		return "No battles recorded yet."
	}
	return fmt.Sprintf("Battles: **%d**\n🔴 RED wins: **%d**\n🔵 BLUE wins: **%d**\n🤝 Draws: **%d**\nAverage length: **%.1f** turns",
		st.Battles, st.RedWins, st.BlueWins, st.Draws, st.AverageTurns)
}
