package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/bot"
	"role-shuffler/utils"
	"role-shuffler/utils/database"
)

// HandleConfigRolesCommand manages the shuffleable-role list of a guild.
func HandleConfigRolesCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	authority := utils.CheckMemberAuthority(i.Member, guildOwnerID(s, i.GuildID))
	if !authority.Authorized {
		utils.SendErrorResponse(s, i, authority.Reason)
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	var role *discordgo.Role
	if opt, ok := optionMap["role"]; ok {
		role = opt.RoleValue(s, i.GuildID)
	}

	switch optionMap["action"].StringValue() {
	case "add":
		addShuffleableRole(s, i, b, role)
	case "remove":
		removeShuffleableRole(s, i, b, role)
	case "list":
		listShuffleableRoles(s, i, b)
	}
}

func addShuffleableRole(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, role *discordgo.Role) {
	if role == nil {
		utils.SendErrorResponse(s, i, "❌ You must specify a role to add. Use `/config-roles add @role`")
		return
	}

	botAuthority, err := utils.BotAuthorityFor(s, i.GuildID)
	if err != nil {
		log.Printf("Error resolving bot authority in guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}
	if manageable := utils.CanBotManageRole(botAuthority, i.GuildID, role); !manageable.Authorized {
		utils.SendErrorResponse(s, i, "❌ "+manageable.Reason)
		return
	}

	now := time.Now()
	guildName := i.GuildID
	if guild, stateErr := s.State.Guild(i.GuildID); stateErr == nil {
		guildName = guild.Name
	}
	if err := database.UpsertGuild(b.DB, i.GuildID, guildName, now); err != nil {
		log.Printf("Error recording guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	record := database.NewShuffleableRole(i.GuildID, role.ID, role.Name, i.Member.User.ID, now)
	added, err := database.AddShuffleableRole(b.DB, record)
	if err != nil {
		log.Printf("Error adding shuffleable role %s: %v", role.ID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	if !added {
		utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "⚠️ Role Already Added",
			Description: fmt.Sprintf("**%s** is already in the shuffleable roles list.", role.Name),
			Color:       colorOrange,
		})
		return
	}

	utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Role Added",
		Description: fmt.Sprintf("**%s** has been added to the shuffleable roles list.", role.Name),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "What this means:",
				Value: "Users with this role can now be included in role shuffles.",
			},
		},
	})
}

func removeShuffleableRole(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, role *discordgo.Role) {
	if role == nil {
		utils.SendErrorResponse(s, i, "❌ You must specify a role to remove. Use `/config-roles remove @role`")
		return
	}

	removed, err := database.RemoveShuffleableRole(b.DB, i.GuildID, role.ID)
	if err != nil {
		log.Printf("Error removing shuffleable role %s: %v", role.ID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	if !removed {
		utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "⚠️ Role Not Found",
			Description: fmt.Sprintf("**%s** was not in the shuffleable roles list.", role.Name),
			Color:       colorOrange,
		})
		return
	}

	utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Role Removed",
		Description: fmt.Sprintf("**%s** has been removed from the shuffleable roles list.", role.Name),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "What this means:",
				Value: "Users with this role will no longer be included in role shuffles.",
			},
		},
	})
}

func listShuffleableRoles(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	records, err := database.GetShuffleableRoles(b.DB, i.GuildID)
	if err != nil {
		log.Printf("Error listing shuffleable roles for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	if len(records) == 0 {
		utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "📝 Shuffleable Roles",
			Description: "No shuffleable roles have been configured for this server.",
			Color:       colorBlue,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "How to add roles:",
					Value: "Use `/config-roles add @role` to add roles to the shuffle pool.",
				},
			},
		})
		return
	}

	live := make(map[string]bool)
	if roles, rolesErr := s.GuildRoles(i.GuildID); rolesErr == nil {
		for _, role := range roles {
			live[role.ID] = true
		}
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		if live[record.RoleID] {
			lines = append(lines, fmt.Sprintf("• <@&%s>", record.RoleID))
		} else {
			lines = append(lines, fmt.Sprintf("• ~~%s~~ (deleted)", record.RoleName))
		}
	}

	utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "📝 Shuffleable Roles",
		Description: fmt.Sprintf("There are **%d** roles configured for shuffling:", len(records)),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Roles:",
				Value: strings.Join(lines, "\n"),
			},
			{
				Name:  "Usage:",
				Value: "Use `/shuffle` to randomly redistribute these roles among users.",
			},
		},
	})
}
