package defs

import "github.com/bwmarrin/discordgo"

var ConfigRoles = &discordgo.ApplicationCommand{
	Name:        "config-roles",
	Description: "Manage shuffleable roles for this server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "action",
			Description: "Choose what to do with shuffleable roles",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "add", Value: "add"},
				{Name: "remove", Value: "remove"},
				{Name: "list", Value: "list"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to add or remove (not needed for 'list')",
			Required:    false,
		},
	},
}
