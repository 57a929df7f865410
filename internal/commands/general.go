package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"

	"betbuddies/internal/database"
	"betbuddies/pkg/config"
	"betbuddies/pkg/utils"
)

var startTime = time.Now()

func handleSlashHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	fields := make([]*discordgo.MessageEmbedField, 0, len(SlashCommands))
	for _, cmd := range SlashCommands {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("📄 | `/%s`", cmd.Name),
			Value:  cmd.Description,
			Inline: false,
		})
	}

	embed := utils.NewEmbed()
	embed.Title = fmt.Sprintf("%s Bot Commands", config.Bot.BotName)
	embed.Description = fmt.Sprintf(
		"Welcome to %s! 🎉 I'm here to help you manage capper statistics and bet slips efficiently for your server. Below is a list of my available commands:",
		config.Bot.BotName)
	embed.Color = utils.ColorBrand
	embed.Fields = fields
	embed.Timestamp = time.Now().UTC().Format(time.RFC3339)
	if s.State != nil && s.State.User != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    s.State.User.Username,
			IconURL: s.State.User.AvatarURL(""),
		}
	}

	var buttons []discordgo.MessageComponent
	if config.Bot.InviteURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: "Invite",
			Style: discordgo.LinkButton,
			URL:   config.Bot.InviteURL,
		})
	}
	if config.Bot.SupportURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: "Server",
			Style: discordgo.LinkButton,
			URL:   config.Bot.SupportURL,
		})
	}

	var components []discordgo.MessageComponent
	if len(buttons) > 0 {
		components = []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

func handleSlashPing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	apiLatency := s.HeartbeatLatency().Round(time.Millisecond)

	// Snowflakes encode their creation time, which gives us the gateway
	// round-trip without a second request.
	commandLatency := time.Duration(0)
	if created, err := discordgo.SnowflakeTimestamp(i.ID); err == nil {
		commandLatency = time.Since(created).Round(time.Millisecond)
	}

	dbStatus := "✅ Connected"
	if database.DB == nil {
		dbStatus = "❌ Disconnected"
	} else if err := database.DB.Ping(); err != nil {
		dbStatus = "❌ Disconnected"
	}

	embed := utils.NewEmbed()
	embed.Title = "📡 Bot Latency & Stats"
	embed.Color = utils.ColorBrand
	embed.Description = "Here's the current status of the bot ⚡\n\n" +
		fmt.Sprintf("- **API Latency**: `%s`\n", apiLatency) +
		fmt.Sprintf("- **Command Latency**: `%s`\n", commandLatency) +
		fmt.Sprintf("- **Go Version**: `%s`\n", runtime.Version()) +
		fmt.Sprintf("- **Database Connection**: %s\n", dbStatus) +
		fmt.Sprintf("- **Uptime**: `%s`\n", formatUptime(time.Since(startTime)))
	embed.Timestamp = time.Now().UTC().Format(time.RFC3339)

	respondEmbed(s, i, embed)
}

func formatUptime(d time.Duration) string {
	total := int(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}
