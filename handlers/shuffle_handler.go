package handlers

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/bot"
	"role-shuffler/shuffle"
	"role-shuffler/utils"
	"role-shuffler/utils/database"
)

// HandleShuffleCommand runs the request phase of /shuffle: permission and
// cooldown checks, snapshot, plan, and the confirmation prompt. Role state is
// not touched here; that happens only after the initiator confirms.
func HandleShuffleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	authority := utils.CheckMemberAuthority(i.Member, guildOwnerID(s, i.GuildID))
	if !authority.Authorized {
		utils.SendErrorResponse(s, i, authority.Reason)
		return
	}

	expiry, active, err := b.Cooldowns.Check(i.GuildID, time.Now())
	if err != nil {
		log.Printf("Error checking cooldown for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}
	if active {
		utils.SendEphemeralEmbed(s, i, buildCooldownEmbed(expiry))
		return
	}

	if gate, ok := b.Gates.Get(i.GuildID); ok && gate.State() == shuffle.StatePending {
		utils.SendErrorResponse(s, i, "❌ A shuffle is already awaiting confirmation in this server.")
		return
	}

	records, err := database.GetShuffleableRoles(b.DB, i.GuildID)
	if err != nil {
		log.Printf("Error loading shuffleable roles for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}
	if len(records) == 0 {
		utils.SendEphemeralEmbed(s, i, buildNoConfiguredRolesEmbed())
		return
	}

	snapshot, err := buildGuildSnapshot(s, i.GuildID)
	if err != nil {
		log.Printf("Error building guild snapshot for %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}
	botAuthority, err := utils.BotAuthorityFor(s, i.GuildID)
	if err != nil {
		log.Printf("Error resolving bot authority in guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	eligible := shuffle.ResolveRoles(records, snapshot, botAuthority)
	if len(eligible) == 0 {
		utils.SendEphemeralEmbed(s, i, buildNoValidRolesEmbed())
		return
	}
	if len(eligible) < 2 {
		utils.SendEphemeralEmbed(s, i, buildNeedMoreRolesEmbed())
		return
	}

	plan, err := shuffle.BuildPlan(eligible)
	if err != nil {
		utils.SendEphemeralEmbed(s, i, buildNeedMoreRolesEmbed())
		return
	}

	initiatorID := i.Member.User.ID
	interaction := i.Interaction
	gate := shuffle.NewGate(i.GuildID, initiatorID, plan, b.GetConfig().ConfirmTimeout, func(g *shuffle.Gate) {
		b.Gates.Remove(g.GuildID)
		utils.EditResponseEmbed(s, interaction, buildTimeoutEmbed())
	})
	if !b.Gates.Add(gate) {
		gate.Cancel(initiatorID)
		utils.SendErrorResponse(s, i, "❌ A shuffle is already awaiting confirmation in this server.")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildConfirmEmbed(plan)},
			Components: confirmComponents(),
		},
	})
	if err != nil {
		log.Printf("Error sending shuffle confirmation prompt: %v", err)
		gate.Cancel(initiatorID)
		b.Gates.Remove(i.GuildID)
	}
}

func confirmComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Yes, Shuffle Roles",
					Style:    discordgo.SuccessButton,
					CustomID: shuffleConfirmID,
				},
				discordgo.Button{
					Label:    "❌ Cancel",
					Style:    discordgo.DangerButton,
					CustomID: shuffleCancelID,
				},
			},
		},
	}
}
