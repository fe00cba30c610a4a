package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"role-shuffler/bot"
	"role-shuffler/utils"
)

var startTime = time.Now()

// HandleBotInfoCommand reports runtime and host diagnostics.
func HandleBotInfoCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	var dbSizeMB int64
	if stat, err := os.Stat(b.GetConfig().DatabasePath); err == nil {
		dbSizeMB = stat.Size() / 1024 / 1024
	}

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}
	platform := "unknown"
	if hostInfo != nil {
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
	}
	memUsage := "unknown"
	if vm != nil {
		memUsage = fmt.Sprintf("%.1f%% of %d MB", vm.UsedPercent, vm.Total/1024/1024)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Info",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Uptime", Value: time.Since(startTime).Round(time.Second).String(), Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "CPU", Value: fmt.Sprintf("%d cores, %.1f%% used", cpuCount, cpuUsage), Inline: true},
			{Name: "Memory", Value: memUsage, Inline: true},
			{Name: "Database Size", Value: fmt.Sprintf("%d MB", dbSizeMB), Inline: true},
			{Name: "Host", Value: platform, Inline: false},
		},
	}

	utils.SendEphemeralEmbed(s, i, embed)
}
