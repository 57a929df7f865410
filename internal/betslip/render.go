package betslip

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"betbuddies/pkg/utils"
)

var (
	Platforms = []string{"Stake", "Fanduel", "Bet365", "PrizePicks"}

	Sports = []string{
		"Multi-Sport", "NBA", "WNBA", "College Basketball", "MLB", "College Baseball",
		"Tennis", "Soccer", "NFL", "College Football", "NHL", "Cricket", "MMA", "Boxing", "Rugby",
	}

	BetTypes = []string{
		"Money Line", "Spread", "Parlay", "Same Game Parlay", "Props",
		"Round Robin", "Totals (Over/Under)", "Live Bets",
	}
)

var platformEmojis = map[string]string{
	"Stake":      "🎰",
	"Fanduel":    "🔵",
	"Bet365":     "🟢",
	"PrizePicks": "🟣",
}

func customID(kind, sessionID string) string {
	return "betslip_" + kind + "_" + sessionID
}

func parseCustomID(id string) (kind, sessionID string, ok bool) {
	parts := strings.SplitN(id, "_", 3)
	if len(parts) != 3 || parts[0] != "betslip" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func selectRow(kind, sessionID, placeholder string, options []string, current string) discordgo.ActionsRow {
	opts := make([]discordgo.SelectMenuOption, 0, len(options))
	for _, label := range options {
		opts = append(opts, discordgo.SelectMenuOption{
			Label:   label,
			Value:   label,
			Default: label == current,
		})
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID(kind, sessionID),
				Placeholder: placeholder,
				Options:     opts,
			},
		},
	}
}

func orPlaceholder(v string) string {
	if v == "" {
		return "_Not selected_"
	}
	return "`" + v + "`"
}

// selectionEmbed shows the current state of the creation workflow in the
// capper's ephemeral reply.
func selectionEmbed(s *Session) *discordgo.MessageEmbed {
	_, platform, sport, betType, imageURL, _ := s.snapshot()

	imageLine := "_No image uploaded yet_"
	if imageURL != "" {
		imageLine = "🖼️ Image uploaded and previewed."
	}

	lines := []string{
		"1️⃣ Upload your betslip image below (max 1 image per betslip).",
		"**Platform:** " + orPlaceholder(platform),
		"**Sport:** " + orPlaceholder(sport),
		"**Bet Type:** " + orPlaceholder(betType),
		imageLine,
		"",
		"Click **Send Message** when ready or **Cancel Bet** to abort.",
	}

	embed := utils.NewEmbed()
	embed.Title = "📋 Create a Betslip"
	embed.Description = strings.Join(lines, "\n")
	embed.Color = utils.ColorBrand
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Fill in the details below."}
	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}
	return embed
}

func selectionComponents(s *Session) []discordgo.MessageComponent {
	_, platform, sport, betType, _, _ := s.snapshot()
	return []discordgo.MessageComponent{
		selectRow("platform", s.ID, "Select Platform", Platforms, platform),
		selectRow("sport", s.ID, "Select Sport", Sports, sport),
		selectRow("bettype", s.ID, "Select Bet Type", BetTypes, betType),
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Cancel Bet",
					Style:    discordgo.DangerButton,
					CustomID: customID("cancel", s.ID),
				},
				discordgo.Button{
					Label:    "Send Message",
					Style:    discordgo.PrimaryButton,
					CustomID: customID("send", s.ID),
				},
			},
		},
	}
}

func detailsModal(sessionID string) *discordgo.InteractionResponseData {
	row := func(c discordgo.MessageComponent) discordgo.ActionsRow {
		return discordgo.ActionsRow{Components: []discordgo.MessageComponent{c}}
	}
	return &discordgo.InteractionResponseData{
		CustomID: customID("modal", sessionID),
		Title:    "Enter Betslip Details",
		Components: []discordgo.MessageComponent{
			row(discordgo.TextInput{
				CustomID: "game_name",
				Label:    "Game/Event Name",
				Style:    discordgo.TextInputShort,
				Required: true,
			}),
			row(discordgo.TextInput{
				CustomID:    "units",
				Label:       "Units (e.g., 1.5, 2)",
				Placeholder: "Enter a positive number (e.g., 1.5, 2)",
				Style:       discordgo.TextInputShort,
				Required:    true,
			}),
			row(discordgo.TextInput{
				CustomID:    "american_odds",
				Label:       "American Odds (e.g., +150, -200)",
				Placeholder: "Enter positive or negative odds",
				Style:       discordgo.TextInputShort,
				Required:    true,
			}),
			row(discordgo.TextInput{
				CustomID:    "betslip_link",
				Label:       "Optional: Betslip Link",
				Placeholder: "Enter a valid URL (e.g., https://example.com/betslip)",
				Style:       discordgo.TextInputShort,
				Required:    false,
			}),
			row(discordgo.TextInput{
				CustomID:    "description",
				Label:       "Description of the Bet",
				Placeholder: "Explain your pick",
				Style:       discordgo.TextInputParagraph,
				Required:    true,
			}),
		},
	}
}

// previewEmbed is shown to the capper for final confirmation before the
// betslip goes public.
func previewEmbed(s *Session) *discordgo.MessageEmbed {
	_, platform, sport, betType, imageURL, form := s.snapshot()

	embed := utils.NewEmbed()
	embed.Title = "**" + form.Title + "**"
	embed.Description = form.Description
	embed.Color = utils.ColorBrand
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Units", Value: strconv.FormatFloat(form.Units, 'f', -1, 64), Inline: true},
		{Name: "Odds", Value: form.AmericanOdds, Inline: true},
		{Name: "Platform", Value: platform, Inline: true},
		{Name: "Sport", Value: sport, Inline: true},
		{Name: "Bet Type", Value: betType, Inline: true},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Please confirm to post this betslip."}
	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}
	return embed
}

func confirmComponents(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: customID("confirm", sessionID),
				},
				discordgo.Button{
					Label:    "❌ Cancel",
					Style:    discordgo.DangerButton,
					CustomID: customID("abort", sessionID),
				},
			},
		},
	}
}

// publicMessage builds the betslip message posted to the plays channel,
// with an optional link button and the grading buttons row.
func publicMessage(s *Session, user *discordgo.User) *discordgo.MessageSend {
	_, platform, _, _, imageURL, form := s.snapshot()

	embed := utils.NewEmbed()
	embed.Color = utils.ColorBrand
	embed.Author = &discordgo.MessageEmbedAuthor{
		Name:    fmt.Sprintf("Bet slip by %s", user.Username),
		IconURL: user.AvatarURL(""),
	}
	embed.Description = fmt.Sprintf("%s\n\n**Units | %s**",
		form.Description, strconv.FormatFloat(form.Units, 'f', -1, 64))
	embed.Timestamp = time.Now().UTC().Format(time.RFC3339)
	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}

	gradeRow := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🟢 WIN", Style: discordgo.SuccessButton, CustomID: "grade_win"},
			discordgo.Button{Label: "⚪ PUSH", Style: discordgo.SecondaryButton, CustomID: "grade_push"},
			discordgo.Button{Label: "🔴 LOSS", Style: discordgo.DangerButton, CustomID: "grade_loss"},
		},
	}

	components := []discordgo.MessageComponent{}
	if form.Link != "" {
		emoji := platformEmojis[platform]
		if emoji == "" {
			emoji = "🔗"
		}
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: fmt.Sprintf("Place The Bet On %s", platform),
					Style: discordgo.LinkButton,
					URL:   form.Link,
					Emoji: &discordgo.ComponentEmoji{Name: emoji},
				},
			},
		})
	}
	components = append(components, gradeRow)

	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}
