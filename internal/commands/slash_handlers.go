package commands

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"betbuddies/internal/betslip"
	"betbuddies/internal/database"
	"betbuddies/internal/metrics"
	"betbuddies/pkg/logger"
	"betbuddies/pkg/utils"
)

// Helper to send interaction response easily
func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func respondEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func SlashHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("panic in slash handler", "command", name, "panic", r)
			respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ There was an error while executing this command!"))
		}
	}()

	metrics.CommandsHandled.WithLabelValues(name).Inc()

	// Everything except help and ping needs guild context.
	if i.Member == nil && name != "help" && name != "ping" {
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("🚫 **Command Restricted** | This command can only be used within a Discord server."))
		return
	}

	switch name {
	case "help":
		handleSlashHelp(s, i)
	case "ping":
		handleSlashPing(s, i)
	case "addcapper":
		handleSlashAddCapper(s, i)
	case "removecapper":
		handleSlashRemoveCapper(s, i)
	case "setupplayschannel":
		handleSlashSetupPlaysChannel(s, i)
	case "betslip":
		betslip.Start(s, i)
	case "capperstats":
		handleSlashCapperStats(s, i)
	}
}

func handleSlashAddCapper(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	target := opts["user"].UserValue(s)

	existing, err := database.GetCapper(i.GuildID, target.ID)
	if err == nil {
		respondEphemeralEmbed(s, i, utils.WarningEmbed(fmt.Sprintf(
			"⚠️ **%s** is already a capper! | Wins: %d | Losses: %d",
			existing.Username, existing.Wins, existing.Losses)))
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		logger.Log.Errorw("capper lookup failed", "guild", i.GuildID, "user", target.ID, "error", err)
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ **Error** | An unexpected error occurred while adding the capper. Please try again."))
		return
	}

	if err := database.AddCapper(i.GuildID, target.ID, target.Username); err != nil {
		logger.Log.Errorw("failed to add capper", "guild", i.GuildID, "user", target.ID, "error", err)
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ **Error** | An unexpected error occurred while adding the capper. Please try again."))
		return
	}

	logger.Log.Infow("capper added", "guild", i.GuildID, "user", target.ID)
	respondEmbed(s, i, utils.BrandEmbed(fmt.Sprintf(
		"✅ | **%s** added as capper!\n **Initial Stats:** W : `0` | L: `0` | P: `0`", target.Username)))
}

func handleSlashRemoveCapper(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	target := opts["user"].UserValue(s)

	err := database.RemoveCapper(i.GuildID, target.ID)
	if errors.Is(err, database.ErrNotFound) {
		respondEphemeralEmbed(s, i, utils.BrandEmbed(fmt.Sprintf(
			"⚠️ **%s** is not a capper in this server.", target.Username)))
		return
	}
	if err != nil {
		logger.Log.Errorw("failed to remove capper", "guild", i.GuildID, "user", target.ID, "error", err)
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ **Error** | An unexpected error occurred while removing the capper. Please try again."))
		return
	}

	logger.Log.Infow("capper removed", "guild", i.GuildID, "user", target.ID)
	respondEmbed(s, i, utils.BrandEmbed(fmt.Sprintf(
		"✅ | **%s** has been removed as a capper.", target.Username)))
}

func handleSlashSetupPlaysChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member.Permissions&discordgo.PermissionManageChannels == 0 {
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ You need the **Manage Channels** permission to use this command."))
		return
	}

	opts := commandOptions(i)
	channel := opts["channel"].ChannelValue(s)

	if channel.Type != discordgo.ChannelTypeGuildText {
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ Please select a text channel."))
		return
	}

	if err := database.SetPlaysChannel(i.GuildID, channel.ID); err != nil {
		logger.Log.Errorw("failed to set plays channel", "guild", i.GuildID, "channel", channel.ID, "error", err)
		respondEphemeralEmbed(s, i, utils.ErrorEmbed("❌ **Error** | An unexpected error occurred while setting the plays channel. Please try again."))
		return
	}

	logger.Log.Infow("plays channel configured", "guild", i.GuildID, "channel", channel.ID)
	respondEmbed(s, i, utils.BrandEmbed(fmt.Sprintf(
		"✅ | Play channel set to <#%s>! All plays and betslip updates will now be sent there.", channel.ID)))
}
