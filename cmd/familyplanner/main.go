package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/config"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/agenda"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/clients/caldav"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/notify"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/scheduler"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/server"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/service"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	defer store.Close()

	var notifier service.Notifier
	if cfg.HasTelegram() {
		tg, err := notify.NewTelegram(cfg.TelegramToken)
		if err != nil {
			log.Fatalf("Failed to init telegram notifier: %v", err)
		}
		notifier = tg
	}

	agendaSvc := service.NewAgendaService(store, agenda.RealClock{})
	eventSvc := service.NewEventService(store, notifier)
	todoSvc := service.NewTodoService(store, notifier)
	contactSvc := service.NewContactService(store)
	shoppingSvc := service.NewShoppingService(store, notifier)
	recipeSvc := service.NewRecipeService(store, shoppingSvc)
	noteSvc := service.NewNoteService(store)

	var syncSvc *service.CalendarSyncService
	if cfg.HasCalDAV() {
		client := caldav.NewClient(cfg.CalDAVURL, cfg.CalDAVUsername, cfg.CalDAVPassword)
		if cfg.CalDAVCalendarID == "" {
			logAvailableCalendars(client)
		} else {
			client.SetCalendarID(cfg.CalDAVCalendarID)
			syncSvc = service.NewCalendarSyncService(store, client, cfg.CalDAVFamilyID, cfg.Timezone)
		}
	}

	sched := scheduler.New(cfg, store, agendaSvc, shoppingSvc, syncSvc)
	if notifier != nil {
		sched.SetSender(notifier)
	}

	srv := server.NewServer(store, agendaSvc, eventSvc, todoSvc, contactSvc, shoppingSvc, recipeSvc, noteSvc)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Handler(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := sched.Start(ctx); err != nil {
			log.Printf("Scheduler error: %v", err)
		}
	}()

	go func() {
		log.Printf("FamilyPlanner listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")

	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error stopping HTTP server: %v", err)
	}

	log.Println("FamilyPlanner stopped")
}

// logAvailableCalendars helps with setup when CALDAV_CALENDAR_ID is
// missing: list what the account can see, then run without sync.
func logAvailableCalendars(client *caldav.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cals, err := client.DiscoverCalendars(ctx)
	if err != nil {
		log.Printf("CALDAV_CALENDAR_ID not set and discovery failed: %v", err)
		return
	}
	log.Println("CALDAV_CALENDAR_ID not set, calendar sync disabled. Available calendars:")
	for _, cal := range cals {
		log.Printf("  %s (%s)", cal.ID, cal.DisplayName)
	}
}
