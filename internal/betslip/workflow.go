package betslip

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"betbuddies/internal/database"
	"betbuddies/internal/metrics"
	"betbuddies/pkg/logger"
	"betbuddies/pkg/utils"
)

// Start opens a betslip creation session for a registered capper. The
// whole workflow happens inside an ephemeral reply: pick platform, sport
// and bet type, optionally upload an image, fill the details modal, then
// confirm to post the betslip in the configured plays channel.
func Start(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		respondEphemeral(s, i, utils.ErrorEmbed("❌ This command can only be used inside a server."))
		return
	}

	userID := i.Member.User.ID

	_, err := database.GetCapper(i.GuildID, userID)
	if errors.Is(err, database.ErrNotFound) {
		respondEphemeral(s, i, &discordgo.MessageEmbed{
			Color:       utils.ColorBrand,
			Description: "❌ **Unauthorized** | You are not authorized to use this command. Only registered cappers can create betslips.",
		})
		return
	}
	if err != nil {
		logger.Log.Errorw("capper lookup failed", "guild", i.GuildID, "user", userID, "error", err)
		respondEphemeral(s, i, utils.ErrorEmbed("❌ Something went wrong. Please try again."))
		return
	}

	if existing := lookupSessionByUser(userID); existing != nil {
		existing.finish()
	}

	sess := newSession(i)

	// The slash command accepts an optional image attachment up front.
	if att := attachmentOption(i); att != nil && strings.HasPrefix(att.ContentType, "image") {
		sess.attachImage(att.URL)
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{selectionEmbed(sess)},
			Components: selectionComponents(sess),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Log.Errorw("failed to open betslip session", "user", userID, "error", err)
		sess.finish()
		return
	}

	sess.armDeadline(selectTimeout, func() { expireSession(s, sess) })
}

func attachmentOption(i *discordgo.InteractionCreate) *discordgo.MessageAttachment {
	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		return nil
	}
	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		if att, ok := data.Resolved.Attachments[opt.Value.(string)]; ok {
			return att
		}
	}
	return nil
}

// HandleComponent routes select menu and button presses carrying a
// betslip custom ID.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	kind, sessionID, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	sess := lookupSession(sessionID)
	if sess == nil {
		respondExpired(s, i)
		return
	}
	if i.Member == nil || i.Member.User.ID != sess.UserID {
		return
	}

	switch kind {
	case "platform", "sport", "bettype":
		if sess.setSelection(kind, i.MessageComponentData().Values[0]) {
			updateSelectionMessage(s, i, sess)
		}
	case "cancel":
		if sess.finish() {
			replaceMessage(s, i, utils.ErrorEmbed("❌ Betslip creation cancelled."))
		}
	case "send":
		handleSend(s, i, sess)
	case "confirm":
		handleConfirm(s, i, sess)
	case "abort":
		if sess.finish() {
			replaceMessage(s, i, utils.ErrorEmbed("❌ Betslip creation cancelled."))
		}
	}
}

func handleSend(s *discordgo.Session, i *discordgo.InteractionCreate, sess *Session) {
	_, platform, sport, betType, _, _ := sess.snapshot()
	switch {
	case platform == "":
		respondEphemeral(s, i, utils.WarningEmbed("❌ Please select a platform before sending."))
		return
	case sport == "":
		respondEphemeral(s, i, utils.WarningEmbed("❌ Please select a sport before sending."))
		return
	case betType == "":
		respondEphemeral(s, i, utils.WarningEmbed("❌ Please select a bet type before sending."))
		return
	}

	if !sess.transition(StateSelecting, StateAwaitingForm) {
		respondExpired(s, i)
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: detailsModal(sess.ID),
	})
	if err != nil {
		logger.Log.Errorw("failed to show betslip modal", "session", sess.ID, "error", err)
		sess.transition(StateAwaitingForm, StateSelecting)
		return
	}

	sess.armDeadline(modalTimeout, func() { expireSession(s, sess) })
}

// HandleModal validates the submitted details. A validation failure puts
// the session back in the selection stage so the capper can press Send
// again and retry the modal.
func HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	kind, sessionID, ok := parseCustomID(data.CustomID)
	if !ok || kind != "modal" {
		return
	}

	sess := lookupSession(sessionID)
	if sess == nil {
		respondExpired(s, i)
		return
	}

	form, err := parseForm(
		modalValue(data, "game_name"),
		modalValue(data, "description"),
		modalValue(data, "units"),
		modalValue(data, "american_odds"),
		modalValue(data, "betslip_link"),
	)
	if err != nil {
		sess.transition(StateAwaitingForm, StateSelecting)
		respondEphemeral(s, i, utils.ErrorEmbed("❌ "+err.Error()+". Press **Send Message** to try again."))
		return
	}

	// A stage timer may have closed the session between the modal opening
	// and this submit; the interaction still needs an answer.
	if !sess.setForm(form) {
		respondExpired(s, i)
		return
	}

	respErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{previewEmbed(sess)},
			Components: confirmComponents(sess.ID),
		},
	})
	if respErr != nil {
		logger.Log.Errorw("failed to show betslip preview", "session", sess.ID, "error", respErr)
		sess.finish()
		return
	}

	sess.armDeadline(confirmTimeout, func() { expireSession(s, sess) })
}

func modalValue(data discordgo.ModalSubmitInteractionData, id string) string {
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range ar.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == id {
				return input.Value
			}
		}
	}
	return ""
}

func handleConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, sess *Session) {
	state, _, _, _, _, form := sess.snapshot()
	if state != StateAwaitingConfirm || form == nil {
		respondExpired(s, i)
		return
	}

	playsChannelID, err := database.GetPlaysChannel(sess.GuildID)
	if errors.Is(err, database.ErrNotFound) {
		if sess.finish() {
			replaceMessage(s, i, utils.ErrorEmbed("❌ No plays channel has been set up for this server. Please use `/setupplayschannel` first."))
		}
		return
	}
	if err != nil {
		logger.Log.Errorw("plays channel lookup failed", "guild", sess.GuildID, "error", err)
		if sess.finish() {
			replaceMessage(s, i, utils.ErrorEmbed("❌ Something went wrong. Please try again."))
		}
		return
	}

	if !sess.finish() {
		respondExpired(s, i)
		return
	}

	msg, err := s.ChannelMessageSendComplex(playsChannelID, publicMessage(sess, i.Member.User))
	if err != nil {
		logger.Log.Errorw("failed to post betslip", "guild", sess.GuildID, "channel", playsChannelID, "error", err)
		replaceMessage(s, i, utils.ErrorEmbed("❌ Could not post to the plays channel. Check the bot's permissions there."))
		return
	}

	_, platform, sport, betType, imageURL, _ := sess.snapshot()
	bet := database.Betslip{
		MessageID:    msg.ID,
		GuildID:      sess.GuildID,
		CapperID:     sess.UserID,
		Platform:     platform,
		Sport:        sport,
		BetType:      betType,
		Title:        form.Title,
		Description:  form.Description,
		Units:        form.Units,
		AmericanOdds: form.AmericanOdds,
		DecimalOdds:  form.DecimalOdds,
		BetslipLink:  form.Link,
		ImageURL:     imageURL,
		CreatedAt:    time.Now().UTC(),
		Status:       database.StatusPending,
	}
	if err := database.InsertBetslip(&bet); err != nil {
		logger.Log.Errorw("failed to save betslip", "message", msg.ID, "error", err)
		s.ChannelMessageDelete(playsChannelID, msg.ID)
		replaceMessage(s, i, utils.ErrorEmbed("❌ Could not save the betslip. It has not been posted."))
		return
	}

	metrics.BetslipsPosted.Inc()
	logger.Log.Infow("betslip posted", "guild", sess.GuildID, "capper", sess.UserID, "message", msg.ID)

	replaceMessage(s, i, utils.SuccessEmbed("✅ Betslip posted successfully!"))
}

// HandleMessage watches the session channel for the capper's betslip
// image. The first image wins and the source message is removed to keep
// the channel clean.
func HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || len(m.Attachments) == 0 {
		return
	}

	sess := lookupSessionByUser(m.Author.ID)
	if sess == nil || sess.ChannelID != m.ChannelID || sess.GuildID != m.GuildID {
		return
	}

	var imageURL string
	for _, att := range m.Attachments {
		if strings.HasPrefix(att.ContentType, "image") {
			imageURL = att.URL
			break
		}
	}
	if imageURL == "" {
		return
	}

	if !sess.attachImage(imageURL) {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		logger.Log.Warnw("could not delete betslip image message", "message", m.ID, "error", err)
	}

	embeds := []*discordgo.MessageEmbed{selectionEmbed(sess)}
	components := selectionComponents(sess)
	if _, err := s.InteractionResponseEdit(sess.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		logger.Log.Warnw("could not refresh betslip preview", "session", sess.ID, "error", err)
	}
}

func expireSession(s *discordgo.Session, sess *Session) {
	embeds := []*discordgo.MessageEmbed{utils.WarningEmbed("⌛ Betslip creation timed out.")}
	components := []discordgo.MessageComponent{}
	if _, err := s.InteractionResponseEdit(sess.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		logger.Log.Warnw("could not edit expired betslip message", "session", sess.ID, "error", err)
	}
}

func respondExpired(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i, utils.WarningEmbed("⌛ This betslip session has expired. Run the command again."))
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// replaceMessage swaps the ephemeral workflow message for a terminal
// status embed and strips the components.
func replaceMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
}

func updateSelectionMessage(s *discordgo.Session, i *discordgo.InteractionCreate, sess *Session) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{selectionEmbed(sess)},
			Components: selectionComponents(sess),
		},
	})
}
