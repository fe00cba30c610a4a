package handlers

import (
	"github.com/bwmarrin/discordgo"

	"role-shuffler/bot"
)

const (
	shuffleConfirmID = "shuffle_confirm"
	shuffleCancelID  = "shuffle_cancel"
)

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case shuffleConfirmID, shuffleCancelID:
			HandleShuffleComponent(s, i, b)
		}
	}
}
