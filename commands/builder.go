package commands

import (
	"github.com/bwmarrin/discordgo"

	"role-shuffler/commands/defs"
)

// GenerateCommands returns every slash command the bot registers.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Shuffle,
		defs.ShuffleHistory,
		defs.ConfigRoles,
		defs.BotInfo,
	}
}
