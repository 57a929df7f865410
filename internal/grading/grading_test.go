package grading

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCanGrade(t *testing.T) {
	const capper = "capper-1"

	tests := []struct {
		name        string
		graderID    string
		permissions int64
		want        bool
	}{
		{"capper grades own slip", capper, 0, true},
		{"admin grades someone else's slip", "admin-1", discordgo.PermissionAdministrator, true},
		{"admin with extra permissions", "admin-2", discordgo.PermissionAdministrator | discordgo.PermissionManageChannels, true},
		{"regular member", "member-1", discordgo.PermissionSendMessages, false},
		{"manage channels is not enough", "mod-1", discordgo.PermissionManageChannels, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canGrade(tt.graderID, capper, tt.permissions))
		})
	}
}

func TestIsGradeOutcome(t *testing.T) {
	assert.True(t, isGradeOutcome("win"))
	assert.True(t, isGradeOutcome("push"))
	assert.True(t, isGradeOutcome("loss"))
	assert.False(t, isGradeOutcome("pending"))
	assert.False(t, isGradeOutcome(""))
	assert.False(t, isGradeOutcome("WIN"))
}

func TestDisableComponentsDisablesButtons(t *testing.T) {
	rows := []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{Label: "🟢 WIN", CustomID: "grade_win", Style: discordgo.SuccessButton},
				&discordgo.Button{Label: "🔴 LOSS", CustomID: "grade_loss", Style: discordgo.DangerButton},
			},
		},
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{Label: "Place The Bet", Style: discordgo.LinkButton, URL: "https://stake.com"},
			},
		},
	}

	out := disableComponents(rows)
	assert.Len(t, out, 2)

	for _, row := range out {
		ar, ok := row.(discordgo.ActionsRow)
		assert.True(t, ok)
		for _, comp := range ar.Components {
			btn, ok := comp.(discordgo.Button)
			assert.True(t, ok)
			assert.True(t, btn.Disabled)
		}
	}

	// Originals are untouched.
	first := rows[0].(*discordgo.ActionsRow)
	assert.False(t, first.Components[0].(*discordgo.Button).Disabled)
}
