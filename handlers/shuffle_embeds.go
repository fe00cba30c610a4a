package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/shuffle"
)

const (
	colorBlue   = 0x3498DB
	colorGreen  = 0x2ECC71
	colorRed    = 0xE74C3C
	colorOrange = 0xE67E22
)

// maxDisplayedFailures caps the failure list shown to users; the full list
// still drives the counts.
const maxDisplayedFailures = 5

func buildCooldownEmbed(expiry time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⏰ Shuffle on Cooldown",
		Description: "Please wait before shuffling again.",
		Color:       colorOrange,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Cooldown expires:",
				Value: fmt.Sprintf("<t:%d:R>", expiry.Unix()),
			},
		},
	}
}

func buildNoConfiguredRolesEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ No Shuffleable Roles",
		Description: "No roles have been configured for shuffling in this server.",
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "How to add roles:",
				Value: "Use `/config-roles add @role` to add roles to the shuffle pool.",
			},
		},
	}
}

func buildNoValidRolesEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ No Valid Roles",
		Description: "No shuffleable roles found with members that I can manage.",
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Possible issues:",
				Value: "• Roles are empty (no members)\n• Roles are above my highest role\n• I don't have Manage Roles permission",
			},
		},
	}
}

func buildNeedMoreRolesEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Need More Roles",
		Description: "At least 2 roles with members are needed for shuffling.",
		Color:       colorRed,
	}
}

func buildConfirmEmbed(plan *shuffle.Plan) *discordgo.MessageEmbed {
	roleInfo := make([]string, 0, len(plan.Roles))
	for _, role := range plan.Roles {
		roleInfo = append(roleInfo, fmt.Sprintf("• **%s** (%d members)", role.Name, len(role.Members)))
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 Confirm Role Shuffle",
		Description: fmt.Sprintf("Are you sure you want to shuffle roles for **%d** users?", len(plan.Participants)),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Roles to shuffle:",
				Value: strings.Join(roleInfo, "\n"),
			},
			{
				Name:  "What will happen:",
				Value: "• All users will have their current shuffle role removed\n• Each user will be randomly assigned one of the above roles\n• Users may get the same role they had before",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "This action cannot be undone. You have 5 minutes to confirm.",
		},
	}
}

func buildCancelledEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Shuffle Cancelled",
		Description: "The role shuffle has been cancelled.",
		Color:       colorRed,
	}
}

func buildTimeoutEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⏰ Shuffle Timed Out",
		Description: "The shuffle confirmation timed out after 5 minutes.",
		Color:       colorOrange,
	}
}

func buildResultEmbed(plan *shuffle.Plan, result shuffle.Result, triggeredBy *discordgo.User) *discordgo.MessageEmbed {
	distribution := make([]string, 0, len(plan.Roles))
	for _, role := range plan.Roles {
		distribution = append(distribution, fmt.Sprintf("• **%s**: %d members", role.Name, len(plan.Assignments[role.ID])))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Roles Shuffled Successfully!",
		Description: fmt.Sprintf("Successfully shuffled **%d** role assignments!", result.Succeeded),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "New role distribution:",
				Value: strings.Join(distribution, "\n"),
			},
		},
	}

	if len(result.Failures) > 0 {
		lines := make([]string, 0, maxDisplayedFailures+1)
		for idx, failure := range result.Failures {
			if idx == maxDisplayedFailures {
				lines = append(lines, fmt.Sprintf("• ... and %d more", len(result.Failures)-maxDisplayedFailures))
				break
			}
			lines = append(lines, fmt.Sprintf("• <@%s> → %s", failure.UserID, failure.RoleName))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚠️ Some assignments failed:",
			Value: strings.Join(lines, "\n"),
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Cooldown:",
		Value: "Next shuffle available in 5 minutes",
	})
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Shuffle performed by %s", triggeredBy.Username),
	}
	return embed
}
