package grading

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"betbuddies/internal/database"
	"betbuddies/internal/metrics"
	"betbuddies/pkg/logger"
	"betbuddies/pkg/utils"
)

// HandleGrade processes a win/push/loss button press on a posted betslip.
// The status flip is a conditional update keyed on the pending status, so
// two moderators racing on the same button grade it exactly once.
func HandleGrade(s *discordgo.Session, i *discordgo.InteractionCreate) {
	outcome := strings.TrimPrefix(i.MessageComponentData().CustomID, "grade_")
	if !isGradeOutcome(outcome) {
		return
	}
	if i.Member == nil {
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		logger.Log.Errorw("failed to defer grade reply", "message", i.Message.ID, "error", err)
		return
	}

	bet, err := database.GetBetslipByMessage(i.GuildID, i.Message.ID)
	if errors.Is(err, database.ErrNotFound) {
		editReply(s, i, "❌ Betslip not found in the database.")
		return
	}
	if err != nil {
		logger.Log.Errorw("betslip lookup failed", "message", i.Message.ID, "error", err)
		editReply(s, i, "❌ An error occurred while trying to grade the betslip.")
		return
	}

	if bet.IsGraded() {
		editReply(s, i, fmt.Sprintf("⚠️ This betslip has already been graded as **%s**.", strings.ToUpper(bet.Status)))
		return
	}

	grader := i.Member.User
	if !canGrade(grader.ID, bet.CapperID, i.Member.Permissions) {
		editReply(s, i, "❌ Only the capper who posted this betslip or an administrator can grade it.")
		return
	}

	graded, err := database.GradeBetslipIfPending(i.GuildID, i.Message.ID, outcome, grader.ID, time.Now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to grade betslip", "message", i.Message.ID, "outcome", outcome, "error", err)
		editReply(s, i, "❌ An error occurred while trying to grade the betslip.")
		return
	}
	if !graded {
		// Someone else won the race between our read and the update.
		current, lookupErr := database.GetBetslipByMessage(i.GuildID, i.Message.ID)
		if lookupErr == nil {
			editReply(s, i, fmt.Sprintf("⚠️ This betslip has already been graded as **%s**.", strings.ToUpper(current.Status)))
		} else {
			editReply(s, i, "⚠️ This betslip has already been graded.")
		}
		return
	}

	if err := database.IncrementCapperResult(i.GuildID, bet.CapperID, outcome); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			logger.Log.Warnw("capper missing for stat update", "guild", i.GuildID, "capper", bet.CapperID)
		} else {
			logger.Log.Errorw("failed to update capper record", "capper", bet.CapperID, "error", err)
		}
	}

	metrics.BetslipsGraded.WithLabelValues(outcome).Inc()
	logger.Log.Infow("betslip graded",
		"guild", i.GuildID, "message", i.Message.ID, "outcome", outcome, "grader", grader.ID)

	if err := updateGradedMessage(s, i, outcome, grader.Username); err != nil {
		logger.Log.Errorw("failed to edit graded betslip message", "message", i.Message.ID, "error", err)
	}

	editReply(s, i, fmt.Sprintf("✅ Betslip successfully graded as **%s**!", strings.ToUpper(outcome)))
}

func isGradeOutcome(outcome string) bool {
	switch outcome {
	case database.StatusWin, database.StatusPush, database.StatusLoss:
		return true
	}
	return false
}

// canGrade allows the posting capper and server administrators.
func canGrade(graderID, capperID string, permissions int64) bool {
	if graderID == capperID {
		return true
	}
	return permissions&discordgo.PermissionAdministrator != 0
}

// updateGradedMessage recolors the betslip embed, appends the outcome and
// the grader footer, and disables every button on the message.
func updateGradedMessage(s *discordgo.Session, i *discordgo.InteractionCreate, outcome, graderName string) error {
	if len(i.Message.Embeds) == 0 {
		return errors.New("betslip message has no embed")
	}

	embed := i.Message.Embeds[0]
	embed.Color = utils.OutcomeColor(outcome)
	embed.Description = fmt.Sprintf("%s\n\n**Outcome: %s!**", embed.Description, strings.ToUpper(outcome))
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Graded by %s at %s", graderName, time.Now().UTC().Format("Jan 2, 2006 3:04 PM MST")),
	}

	components := disableComponents(i.Message.Components)

	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         i.Message.ID,
		Channel:    i.Message.ChannelID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	return err
}

func disableComponents(rows []discordgo.MessageComponent) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			out = append(out, row)
			continue
		}
		newRow := discordgo.ActionsRow{}
		for _, comp := range ar.Components {
			if btn, ok := comp.(*discordgo.Button); ok {
				copied := *btn
				copied.Disabled = true
				newRow.Components = append(newRow.Components, copied)
				continue
			}
			newRow.Components = append(newRow.Components, comp)
		}
		out = append(out, newRow)
	}
	return out
}

func editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		logger.Log.Warnw("failed to edit grade reply", "error", err)
	}
}
