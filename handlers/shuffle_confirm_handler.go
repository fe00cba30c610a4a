package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/bot"
	"role-shuffler/shuffle"
	"role-shuffler/utils"
	"role-shuffler/utils/database"
)

// sessionModifier adapts the discordgo session to the executor's
// RoleModifier interface.
type sessionModifier struct {
	session *discordgo.Session
}

func (m *sessionModifier) GrantRole(guildID, userID, roleID string) error {
	return m.session.GuildMemberRoleAdd(guildID, userID, roleID)
}

func (m *sessionModifier) RevokeRole(guildID, userID, roleID string) error {
	return m.session.GuildMemberRoleRemove(guildID, userID, roleID)
}

// HandleShuffleComponent handles the confirm and cancel buttons of a pending
// shuffle.
func HandleShuffleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	gate, ok := b.Gates.Get(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "❌ There is no shuffle awaiting confirmation.")
		return
	}

	userID := i.Member.User.ID
	switch i.MessageComponentData().CustomID {
	case shuffleCancelID:
		switch gate.Cancel(userID) {
		case shuffle.TransitionNotInitiator:
			utils.SendErrorResponse(s, i, "❌ Only the person who initiated the shuffle can cancel it.")
		case shuffle.TransitionClosed:
			utils.SendErrorResponse(s, i, "❌ This shuffle has already been decided or expired.")
		case shuffle.TransitionApplied:
			b.Gates.Remove(i.GuildID)
			respondUpdateEmbed(s, i, buildCancelledEmbed())
		}
	case shuffleConfirmID:
		plan, result := gate.Confirm(userID)
		switch result {
		case shuffle.TransitionNotInitiator:
			utils.SendErrorResponse(s, i, "❌ Only the person who initiated the shuffle can confirm it.")
		case shuffle.TransitionClosed:
			utils.SendErrorResponse(s, i, "❌ This shuffle has already been decided or expired.")
		case shuffle.TransitionApplied:
			b.Gates.Remove(i.GuildID)
			performShuffle(s, i, b, plan)
		}
	}
}

// performShuffle applies a confirmed plan, then records the cooldown and
// history no matter how many individual grants failed: the attempt itself
// consumes the cooldown window.
func performShuffle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, plan *shuffle.Plan) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "🎲 **Shuffling roles...** Please wait...",
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("Error acknowledging shuffle confirmation: %v", err)
	}

	executor := shuffle.NewExecutor(i.GuildID, &sessionModifier{session: s})
	result := executor.Execute(plan)

	userID := i.Member.User.ID
	now := time.Now()
	if err := b.Cooldowns.Record(i.GuildID, userID, now); err != nil {
		log.Printf("Error recording cooldown for guild %s: %v", i.GuildID, err)
		utils.LogError(b.GetConfig().LogWebhookURL, "Shuffle", "Record cooldown", err.Error())
	}

	roleNames := make([]string, 0, len(plan.Roles))
	for _, role := range plan.Roles {
		roleNames = append(roleNames, role.Name)
	}
	if err := database.AppendShuffleHistory(b.DB, i.GuildID, userID, result.Participants, roleNames, now); err != nil {
		log.Printf("Error appending shuffle history for guild %s: %v", i.GuildID, err)
		utils.LogError(b.GetConfig().LogWebhookURL, "Shuffle", "Append history", err.Error())
	}

	clearContent := ""
	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &clearContent,
		Embeds:  &[]*discordgo.MessageEmbed{buildResultEmbed(plan, result, i.Member.User)},
	})
	if err != nil {
		log.Printf("Error publishing shuffle result: %v", err)
	}

	utils.LogInfo(b.GetConfig().LogWebhookURL, "Shuffle", "Executed",
		fmt.Sprintf("Guild: %s\nTriggered by: %s\nParticipants: %d\nSucceeded: %d\nFailed: %d",
			i.GuildID, userID, result.Participants, result.Succeeded, len(result.Failures)))
}

func respondUpdateEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("Error updating shuffle message: %v", err)
	}
}
