package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/bot"
	"role-shuffler/utils"
	"role-shuffler/utils/database"
)

const historyPageSize = 10

// HandleShuffleHistoryCommand shows the most recent shuffles of a guild.
func HandleShuffleHistoryCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	authority := utils.CheckMemberAuthority(i.Member, guildOwnerID(s, i.GuildID))
	if !authority.Authorized {
		utils.SendErrorResponse(s, i, authority.Reason)
		return
	}

	entries, err := database.GetShuffleHistory(b.DB, i.GuildID, historyPageSize)
	if err != nil {
		log.Printf("Error loading shuffle history for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	if len(entries) == 0 {
		utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "📜 Shuffle History",
			Description: "No shuffles have been performed in this server yet.",
			Color:       colorBlue,
		})
		return
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		roleNames := database.DecodeRoleNames(entry)
		lines = append(lines, fmt.Sprintf("<t:%d:R> — <@%s> shuffled **%d** users across %s",
			entry.Timestamp, entry.TriggeredBy, entry.UsersAffected, strings.Join(roleNames, ", ")))
	}

	utils.SendEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "📜 Shuffle History",
		Description: strings.Join(lines, "\n"),
		Color:       colorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing the last %d shuffles", len(entries)),
		},
	})
}
