package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

type familyJSON struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	ChatID int64  `json:"chat_id,omitempty"`
}

type memberJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (s *Server) handleListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := s.storage.ListFamilies()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]familyJSON, 0, len(families))
	for _, f := range families {
		out = append(out, familyJSON{ID: f.ID, Name: f.Name, ChatID: f.ChatID})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		ChatID int64  `json:"chat_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("family name cannot be empty"))
		return
	}

	family := &domain.Family{Name: req.Name, ChatID: req.ChatID}
	if err := s.storage.CreateFamily(family); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, familyJSON{ID: family.ID, Name: family.Name, ChatID: family.ChatID})
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	members, err := s.storage.ListMembers(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]memberJSON, 0, len(members))
	for _, m := range members {
		out = append(out, memberJSON{ID: m.ID, Name: m.Name, Role: string(m.Role)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("member name cannot be empty"))
		return
	}
	role := domain.MemberRole(req.Role)
	if role == "" {
		role = domain.RoleMember
	}
	if role != domain.RoleOwner && role != domain.RoleMember {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown role %q", req.Role))
		return
	}

	member := &domain.Member{FamilyID: fid, Name: req.Name, Role: role}
	if err := s.storage.CreateMember(member); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberJSON{ID: member.ID, Name: member.Name, Role: string(member.Role)})
}
