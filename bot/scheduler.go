package bot

import (
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"role-shuffler/model"
	"role-shuffler/scanner"
)

// BotProvider defines the methods the scheduler needs from the Bot.
type BotProvider interface {
	GetConfig() *model.Config
	GetDB() *sqlx.DB
	GetSession() *discordgo.Session
	Done() <-chan struct{}
}

// Scheduler manages the bot's background tasks.
type Scheduler struct {
	bot             BotProvider
	wg              sync.WaitGroup
	staleScanTicker *time.Ticker
}

// NewScheduler creates a new scheduler.
func NewScheduler(bot BotProvider) *Scheduler {
	return &Scheduler{bot: bot}
}

// Start begins the background tasks.
func (s *Scheduler) Start() {
	s.staleScanTicker = time.NewTicker(s.bot.GetConfig().StaleScanInterval)
	s.wg.Add(1)
	go s.runStaleRoleCleaner()
}

// Stop waits for all background tasks to finish. The bot's done channel is
// expected to be closed before calling Stop.
func (s *Scheduler) Stop() {
	if s.staleScanTicker != nil {
		s.staleScanTicker.Stop()
	}
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

// runStaleRoleCleaner periodically removes shuffleable-role records whose
// role was deleted from the guild.
func (s *Scheduler) runStaleRoleCleaner() {
	defer s.wg.Done()

	for {
		select {
		case <-s.bot.Done():
			return
		case <-s.staleScanTicker.C:
			scanner.CleanStaleRoles(s.bot.GetSession(), s.bot.GetDB())
		}
	}
}
