package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/muellermarian/FamilyPlanner-sub000/config"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/service"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

// Scheduler drives the daily agenda digest, the deal-date reminder and
// the periodic CalDAV import.
type Scheduler struct {
	cron        *cron.Cron
	cfg         *config.Config
	storage     *storage.Storage
	agendaSvc   *service.AgendaService
	shoppingSvc *service.ShoppingService
	syncSvc     *service.CalendarSyncService
	sender      MessageSender
}

func New(cfg *config.Config, st *storage.Storage, agendaSvc *service.AgendaService, shoppingSvc *service.ShoppingService, syncSvc *service.CalendarSyncService) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Timezone))

	return &Scheduler{
		cron:        c,
		cfg:         cfg,
		storage:     st,
		agendaSvc:   agendaSvc,
		shoppingSvc: shoppingSvc,
		syncSvc:     syncSvc,
	}
}

func (s *Scheduler) SetSender(sender MessageSender) {
	s.sender = sender
}

func (s *Scheduler) Start(ctx context.Context) error {
	digestSpec, err := cronSpec(s.cfg.DigestTime)
	if err != nil {
		return fmt.Errorf("parse DIGEST_TIME: %w", err)
	}
	if _, err := s.cron.AddFunc(digestSpec, s.sendDigests); err != nil {
		return fmt.Errorf("add daily digest: %w", err)
	}

	dealSpec, err := cronSpec(s.cfg.DealReminderTime)
	if err != nil {
		return fmt.Errorf("parse DEAL_REMINDER_TIME: %w", err)
	}
	if _, err := s.cron.AddFunc(dealSpec, s.sendDealReminders); err != nil {
		return fmt.Errorf("add deal reminder: %w", err)
	}

	if s.syncSvc != nil && s.syncSvc.IsConfigured() {
		if _, err := s.cron.AddFunc("0 */6 * * *", s.syncCalendar); err != nil {
			return fmt.Errorf("add calendar sync: %w", err)
		}
	}

	s.cron.Start()
	log.Printf("Scheduler started (TZ: %s, digest: %s, deals: %s)",
		s.cfg.Timezone, s.cfg.DigestTime, s.cfg.DealReminderTime)

	<-ctx.Done()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

// cronSpec converts "HH:MM" to a daily cron expression.
func cronSpec(hhmm string) (string, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("expected HH:MM, got %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", hhmm)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

func (s *Scheduler) sendDigests() {
	if s.sender == nil {
		return
	}

	families, err := s.storage.ListFamilies()
	if err != nil {
		log.Printf("Error listing families for digest: %v", err)
		return
	}

	today := time.Now().In(s.cfg.Timezone)
	for _, f := range families {
		if f.ChatID == 0 {
			continue
		}
		items, err := s.agendaSvc.Day(f.ID, today)
		if err != nil {
			log.Printf("Error building digest for family %d: %v", f.ID, err)
			continue
		}
		text := service.FormatDayDigest(today, items)
		if err := s.sender.SendMessage(f.ChatID, text); err != nil {
			log.Printf("Error sending digest to family %d: %v", f.ID, err)
		}
	}
}

func (s *Scheduler) sendDealReminders() {
	if s.sender == nil {
		return
	}

	families, err := s.storage.ListFamilies()
	if err != nil {
		log.Printf("Error listing families for deal reminder: %v", err)
		return
	}

	today := time.Now().In(s.cfg.Timezone)
	for _, f := range families {
		if f.ChatID == 0 {
			continue
		}
		deals, err := s.shoppingSvc.DealsOn(f.ID, today)
		if err != nil {
			log.Printf("Error loading deals for family %d: %v", f.ID, err)
			continue
		}
		if len(deals) == 0 {
			continue
		}

		text := "🛒 <b>Heutige Angebote</b>\n\n"
		for _, d := range deals {
			line := "• " + d.Name
			if d.Store != "" {
				line += " bei " + d.Store
			}
			text += line + "\n"
		}
		if err := s.sender.SendMessage(f.ChatID, text); err != nil {
			log.Printf("Error sending deal reminder to family %d: %v", f.ID, err)
		}
	}
}

func (s *Scheduler) syncCalendar() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.syncSvc.Sync(ctx)
	if err != nil {
		log.Printf("Calendar sync failed: %v", err)
		return
	}
	log.Printf("Calendar sync: %d added, %d updated, %d deleted, %d errors",
		result.Added, result.Updated, result.Deleted, len(result.Errors))
	for _, e := range result.Errors {
		log.Printf("Calendar sync error: %s", e)
	}
}
