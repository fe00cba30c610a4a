package handlers

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/bot"
	"role-shuffler/utils"
	"role-shuffler/utils/database"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"shuffle": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleShuffleCommand(s, i, b)
		},
		"shuffle-history": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleShuffleHistoryCommand(s, i, b)
		},
		"config-roles": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleConfigRolesCommand(s, i, b)
		},
		"botinfo": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleBotInfoCommand(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if err := database.UpsertGuild(b.DB, g.ID, g.Name, time.Now()); err != nil {
			log.Printf("Error recording guild %s: %v", g.ID, err)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildDelete) {
		// Unavailable means an outage, not a removal.
		if g.Unavailable {
			return
		}
		log.Printf("Left guild %s, removing its data", g.ID)
		if err := database.RemoveGuild(b.DB, g.ID); err != nil {
			log.Printf("Error removing guild %s: %v", g.ID, err)
			utils.LogError(b.GetConfig().LogWebhookURL, "Guilds", "Remove guild", err.Error())
		}
	})
}
