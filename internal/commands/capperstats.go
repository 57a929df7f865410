package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"betbuddies/internal/database"
	"betbuddies/internal/stats"
	"betbuddies/pkg/config"
	"betbuddies/pkg/logger"
	"betbuddies/pkg/utils"
)

const maxRecentBets = 10

var statusEmojis = map[string]string{
	database.StatusWin:     "✅",
	database.StatusLoss:    "❌",
	database.StatusPush:    "➖",
	database.StatusPending: "⏳",
}

func handleSlashCapperStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Aggregating a whole ledger can take a moment.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		logger.Log.Errorw("failed to defer capperstats reply", "error", err)
		return
	}

	opts := commandOptions(i)

	var target *discordgo.User
	if opt, ok := opts["target"]; ok {
		target = opt.UserValue(s)
	}
	period := stats.PeriodAllTime
	if opt, ok := opts["period"]; ok {
		requested := stats.Period(opt.StringValue())
		for _, p := range stats.Periods {
			if p == requested {
				period = requested
				break
			}
		}
	}

	if target != nil {
		capperStatsReply(s, i, target, period)
		return
	}
	serverStatsReply(s, i)
}

func capperStatsReply(s *discordgo.Session, i *discordgo.InteractionCreate, target *discordgo.User, period stats.Period) {
	capper, err := database.GetCapper(i.GuildID, target.ID)
	if errors.Is(err, database.ErrNotFound) {
		editReplyContent(s, i, fmt.Sprintf("❌ No capper data found for **%s** in this server.", target.Username))
		return
	}
	if err != nil {
		logger.Log.Errorw("capper lookup failed", "guild", i.GuildID, "user", target.ID, "error", err)
		editReplyContent(s, i, "❌ An error occurred while fetching capper stats.")
		return
	}

	allBets, err := database.GetBetslipsByCapper(i.GuildID, target.ID)
	if err != nil {
		logger.Log.Errorw("betslip history lookup failed", "guild", i.GuildID, "capper", target.ID, "error", err)
		editReplyContent(s, i, "❌ An error occurred while fetching capper stats.")
		return
	}
	if len(allBets) == 0 {
		editReplyContent(s, i, fmt.Sprintf("❌ No bets found for **%s** in this server.", target.Username))
		return
	}

	now := time.Now().In(config.Location)
	filtered := stats.Filter(allBets, stats.WindowFor(period, now, config.Location))
	if len(filtered) == 0 && period != stats.PeriodAllTime {
		editReplyContent(s, i, fmt.Sprintf("❌ No bets found for **%s** within the **%s** period.", target.Username, period.Name()))
		return
	}

	summary := stats.Calculate(filtered)
	historical := func(p stats.Period) stats.Summary {
		return stats.Calculate(stats.Filter(allBets, stats.WindowFor(p, now, config.Location)))
	}

	name := capper.Username
	if name == "" {
		name = target.Username
	}

	embed := utils.NewEmbed()
	embed.Title = fmt.Sprintf("📊 %s - Bets Overview (%s)", name, period.Name())
	embed.Color = utils.ProfitColor(summary.Profit)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("")}
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name: "Summary",
			Value: fmt.Sprintf("**Total Bets:** %d\n**Wins:** %d\n**Losses:** %d\n**Pushes:** %d",
				summary.Total, summary.Wins, summary.Losses, summary.Pushes),
			Inline: true,
		},
		{
			Name: "Performance",
			Value: fmt.Sprintf("**Profit:** %.2f units\n**Win Rate:** %.2f%%\n**ROI:** %.2f%%",
				summary.Profit, summary.WinRate, summary.ROI),
			Inline: true,
		},
		{
			Name: "Historical Profit (Units)",
			Value: fmt.Sprintf("**Yesterday:** `%.2f`\n**Last 7 Days:** `%.2f`\n**This Month:** `%.2f`\n**YTD:** `%.2f`\n**All Time:** `%.2f`",
				historical(stats.PeriodYesterday).Profit,
				historical(stats.Period7Days).Profit,
				historical(stats.PeriodMonth).Profit,
				historical(stats.PeriodYear).Profit,
				historical(stats.PeriodAllTime).Profit),
			Inline: true,
		},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Data calculated based on graded bets."}
	embed.Timestamp = time.Now().UTC().Format(time.RFC3339)

	editReplyEmbed(s, i, embed)
	followUpContent(s, i, recentBetsTable(filtered, period.Name(), name))
}

func serverStatsReply(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cappers, err := database.ListCappers(i.GuildID)
	if err != nil {
		logger.Log.Errorw("capper list failed", "guild", i.GuildID, "error", err)
		editReplyContent(s, i, "❌ An error occurred while fetching server stats.")
		return
	}
	if len(cappers) == 0 {
		editReplyContent(s, i, "❌ No cappers found in this server yet.")
		return
	}

	graded, err := database.GetGradedBetslips(i.GuildID)
	if err != nil {
		logger.Log.Errorw("graded betslip lookup failed", "guild", i.GuildID, "error", err)
		editReplyContent(s, i, "❌ An error occurred while fetching server stats.")
		return
	}

	global := stats.Calculate(graded)

	embed := utils.NewEmbed()
	embed.Title = "🌐 Server Overall Stats"
	embed.Color = utils.ProfitColor(global.Profit)
	embed.Description = "A summary of all graded bets across the server.\n\n" +
		fmt.Sprintf("**Total Graded Bets:** `%d`\n", global.Total) +
		fmt.Sprintf("**Wins:** `%d` | **Losses:** `%d` | **Pushes:** `%d`\n", global.Wins, global.Losses, global.Pushes) +
		fmt.Sprintf("**Total Profit:** `%.2f` units\n", global.Profit) +
		fmt.Sprintf("**Win Rate:** `%.2f%%`\n", global.WinRate) +
		fmt.Sprintf("**ROI:** `%.2f%%`", global.ROI)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "To see individual capper stats, use /capperstats @User"}
	embed.Timestamp = time.Now().UTC().Format(time.RFC3339)

	editReplyEmbed(s, i, embed)

	entries := stats.Leaderboard(cappers, graded)
	if len(entries) > 0 {
		followUpContent(s, i, leaderboardTable(entries))
	}
}

// recentBetsTable renders up to maxRecentBets rows as a monospace table.
func recentBetsTable(bets []database.Betslip, periodName, capperName string) string {
	if len(bets) == 0 {
		return fmt.Sprintf("_No recent bets found for %s within the **%s** period._", capperName, periodName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Recent Bets (%s):**\n```asciidoc\n", periodName)
	b.WriteString("[Date] | [Title]             | [Units] | [Odds]  | [Result]\n")
	b.WriteString("---------------------------------------------------------------\n")

	shown := bets
	if len(shown) > maxRecentBets {
		shown = shown[:maxRecentBets]
	}
	for _, bet := range shown {
		emoji := statusEmojis[bet.Status]
		if emoji == "" {
			emoji = statusEmojis[database.StatusPending]
		}
		fmt.Fprintf(&b, "`%s` | `%s` | `%5.1f`U | `%7s` | %s\n",
			bet.CreatedAt.In(config.Location).Format("01/02"),
			truncatePad(bet.Title, 20),
			bet.Units,
			bet.AmericanOdds,
			emoji)
	}
	if len(bets) > maxRecentBets {
		fmt.Fprintf(&b, "...and %d more bets.\n", len(bets)-maxRecentBets)
	}
	b.WriteString("```")
	return b.String()
}

func leaderboardTable(entries []stats.LeaderboardEntry) string {
	var b strings.Builder
	b.WriteString("```asciidoc\n")
	b.WriteString("[Capper]          | Profit  | W   | L   | P   | Total | WR% | ROI%\n")
	b.WriteString("----------------------------------------------------------------------\n")
	for _, e := range entries {
		name := e.Capper.Username
		if name == "" {
			name = e.Capper.UserID
		}
		fmt.Fprintf(&b, "%s | %7s | %3d | %3d | %3d | %5d | %3.0f%% | %3.0f%%\n",
			truncatePad(name, 15),
			signedUnits(e.Stats.Profit),
			e.Stats.Wins,
			e.Stats.Losses,
			e.Stats.Pushes,
			e.Stats.Total,
			e.Stats.WinRate,
			e.Stats.ROI)
	}
	b.WriteString("```")
	return b.String()
}

func truncatePad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func signedUnits(profit float64) string {
	if profit > 0 {
		return fmt.Sprintf("+%.1fU", profit)
	}
	return fmt.Sprintf("%.1fU", profit)
}

func editReplyContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		logger.Log.Warnw("failed to edit capperstats reply", "error", err)
	}
}

func editReplyEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		logger.Log.Warnw("failed to edit capperstats reply", "error", err)
	}
}

func followUpContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: content,
	}); err != nil {
		logger.Log.Warnw("failed to send capperstats follow-up", "error", err)
	}
}
