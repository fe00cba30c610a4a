package bot

import (
	"log"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"role-shuffler/commands"
	"role-shuffler/model"
	"role-shuffler/shuffle"
	"role-shuffler/utils/database"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	DB                 *sqlx.DB
	Gates              *shuffle.GateRegistry
	Cooldowns          *shuffle.CooldownGuard
	config             atomic.Value // *model.Config
	scheduler          *Scheduler
	done               chan struct{}
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	b := &Bot{
		Session:   dg,
		DB:        db,
		Gates:     shuffle.NewGateRegistry(),
		Cooldowns: shuffle.NewCooldownGuard(&database.CooldownStore{DB: db}, cfg.CooldownWindow),
		done:      make(chan struct{}),
	}
	b.config.Store(cfg)
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetDB() *sqlx.DB {
	return b.DB
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetGates() *shuffle.GateRegistry {
	return b.Gates
}

func (b *Bot) GetCooldowns() *shuffle.CooldownGuard {
	return b.Cooldowns
}

func (b *Bot) GetScheduler() *Scheduler {
	return b.scheduler
}

// Done is closed when the bot is shutting down.
func (b *Bot) Done() <-chan struct{} {
	return b.done
}

// RefreshCommands overwrites the bot's global slash commands.
func (b *Bot) RefreshCommands() {
	cmds := commands.GenerateCommands()
	log.Printf("Registering %d application commands...", len(cmds))
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, "", cmds)
	if err != nil {
		log.Printf("cannot register commands: %v", err)
		return
	}
	b.RegisteredCommands = registeredCmds
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	close(b.done)
	b.scheduler.Stop()
	b.Session.Close()
}
