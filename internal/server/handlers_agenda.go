package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/agenda"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/ics"
)

func (s *Server) handleAgendaList(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	mode := agenda.Mode(r.URL.Query().Get("mode"))
	switch mode {
	case "":
		mode = agenda.ModeUpcoming
	case agenda.ModeUpcoming, agenda.ModeAll, agenda.ModeCalendar:
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown mode %q", mode))
		return
	}

	items, err := s.agenda.List(fid, mode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgendaItemsJSON(items))
}

func (s *Server) handleAgendaMonth(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	anchor := time.Now()
	if m := r.URL.Query().Get("month"); m != "" {
		anchor, err = time.ParseInLocation("2006-01", m, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid month %q", m))
			return
		}
	}

	cells, err := s.agenda.MonthGrid(fid, anchor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayCellsJSON(cells))
}

func (s *Server) handleAgendaWeek(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := r.URL.Query().Get("start")
	if start == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("start parameter is required"))
		return
	}
	weekStart, err := parseDay(start)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid start %q", start))
		return
	}

	cells, err := s.agenda.WeekGrid(fid, weekStart)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayCellsJSON(cells))
}

func (s *Server) handleAgendaDay(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dayParam := r.URL.Query().Get("day")
	if dayParam == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("day parameter is required"))
		return
	}
	day, err := parseDay(dayParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid day %q", dayParam))
		return
	}

	items, err := s.agenda.Day(fid, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgendaItemsJSON(items))
}

func (s *Server) handleCalendarICS(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	family, err := s.storage.GetFamily(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if family == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("family not found"))
		return
	}

	events, err := s.storage.ListEvents(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	contacts, err := s.storage.ListContacts(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	cal := ics.BuildFamilyCalendar(family, events, contacts, time.Now())
	data, err := ics.Encode(cal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
