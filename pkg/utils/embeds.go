package utils

import "github.com/bwmarrin/discordgo"

const (
	ColorBrand  = 0xAC3C49
	ColorGreen  = 0x00FF00
	ColorRed    = 0xFF0000
	ColorOrange = 0xFFA500
	ColorGrey   = 0x95A5A6
	ColorBlue   = 0x0000FF
)

func NewEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{}
}

func ErrorEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       ColorRed,
	}
}

func SuccessEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       ColorGreen,
	}
}

func WarningEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       ColorOrange,
	}
}

func BrandEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       ColorBrand,
	}
}

// ProfitColor maps a profit figure to an embed color: green in the black,
// red in the red, grey flat.
func ProfitColor(profit float64) int {
	switch {
	case profit > 0:
		return ColorGreen
	case profit < 0:
		return ColorRed
	default:
		return ColorGrey
	}
}

// OutcomeColor returns the grading color for a betslip outcome string.
func OutcomeColor(outcome string) int {
	switch outcome {
	case "win":
		return ColorGreen
	case "loss":
		return ColorRed
	case "push":
		return ColorOrange
	default:
		return ColorBrand
	}
}
