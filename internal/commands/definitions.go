package commands

import "github.com/bwmarrin/discordgo"

var (
	adminPermission          = int64(discordgo.PermissionAdministrator)
	manageChannelsPermission = int64(discordgo.PermissionManageChannels)
)

var SlashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "help",
		Description: "Lists all available commands and provides support information",
	},
	{
		Name:        "ping",
		Description: "Check the bot's latency and stats",
	},
	{
		Name:                     "addcapper",
		Description:              "Adds a new capper to the server",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The Discord user to add as a capper",
				Required:    true,
			},
		},
	},
	{
		Name:                     "removecapper",
		Description:              "Removes a capper from the server",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The Discord user to remove as a capper",
				Required:    true,
			},
		},
	},
	{
		Name:                     "setupplayschannel",
		Description:              "Sets the channel where plays/betslip updates will be sent",
		DefaultMemberPermissions: &manageChannelsPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "The text channel to set for plays/betslip updates",
				Required:    true,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
		},
	},
	{
		Name:        "betslip",
		Description: "Create a new betslip (Capper only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "image",
				Description: "Optional image attachment for the betslip",
				Required:    false,
			},
		},
	},
	{
		Name:                     "capperstats",
		Description:              "Show detailed stats for all cappers or a specific capper",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Select a specific capper to view their detailed stats",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "period",
				Description: "Time period for the selected capper's stats",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Today", Value: "today"},
					{Name: "Yesterday", Value: "yesterday"},
					{Name: "Last 7 Days", Value: "7days"},
					{Name: "This Month", Value: "month"},
					{Name: "Year to Date", Value: "year"},
					{Name: "All Time", Value: "alltime"},
				},
			},
		},
	},
}
