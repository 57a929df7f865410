package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"betbuddies/internal/betslip"
	"betbuddies/internal/grading"
)

func ComponentsHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, "grade_") {
		grading.HandleGrade(s, i)
	} else if strings.HasPrefix(customID, "betslip_") {
		betslip.HandleComponent(s, i)
	}
}

func ModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionModalSubmit {
		return
	}

	if strings.HasPrefix(i.ModalSubmitData().CustomID, "betslip_") {
		betslip.HandleModal(s, i)
	}
}

// MessageCreate feeds channel messages to the betslip image watcher.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	betslip.HandleMessage(s, m)
}
