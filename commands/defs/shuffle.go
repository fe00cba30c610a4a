package defs

import "github.com/bwmarrin/discordgo"

var Shuffle = &discordgo.ApplicationCommand{
	Name:        "shuffle",
	Description: "Randomly shuffle users between configured roles",
}

var ShuffleHistory = &discordgo.ApplicationCommand{
	Name:        "shuffle-history",
	Description: "Show the most recent role shuffles in this server",
}
