package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabasePath     string
	HTTPAddr         string
	Timezone         *time.Location
	DigestTime       string // "HH:MM", daily agenda digest
	DealReminderTime string // "HH:MM", deal-date reminder

	// Optional push channel. Digests and alerts are skipped when empty.
	TelegramToken string

	// Optional CalDAV import of an external household calendar.
	CalDAVURL        string
	CalDAVUsername   string
	CalDAVPassword   string
	CalDAVCalendarID string
	CalDAVFamilyID   int64 // family the imported events belong to
}

func Load() (*Config, error) {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/familyplanner.db"
	}

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = "Europe/Berlin"
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	digestTime := os.Getenv("DIGEST_TIME")
	if digestTime == "" {
		digestTime = "07:30"
	}

	dealTime := os.Getenv("DEAL_REMINDER_TIME")
	if dealTime == "" {
		dealTime = "17:00"
	}

	caldavFamilyID := int64(1)
	if v := os.Getenv("CALDAV_FAMILY_ID"); v != "" {
		caldavFamilyID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CALDAV_FAMILY_ID: %w", err)
		}
	}

	return &Config{
		DatabasePath:     dbPath,
		HTTPAddr:         httpAddr,
		Timezone:         tz,
		DigestTime:       digestTime,
		DealReminderTime: dealTime,
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		CalDAVURL:        os.Getenv("CALDAV_URL"),
		CalDAVUsername:   os.Getenv("CALDAV_USERNAME"),
		CalDAVPassword:   os.Getenv("CALDAV_PASSWORD"),
		CalDAVCalendarID: os.Getenv("CALDAV_CALENDAR_ID"),
		CalDAVFamilyID:   caldavFamilyID,
	}, nil
}

// HasTelegram returns true if the push channel is configured.
func (c *Config) HasTelegram() bool {
	return c.TelegramToken != ""
}

// HasCalDAV returns true if the external calendar import is configured.
func (c *Config) HasCalDAV() bool {
	return c.CalDAVURL != "" && c.CalDAVUsername != "" && c.CalDAVPassword != ""
}
