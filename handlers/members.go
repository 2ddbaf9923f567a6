// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielhkuo/quickly-pair/db"
	"github.com/danielhkuo/quickly-pair/middleware"
	"github.com/danielhkuo/quickly-pair/models"
)

const maxMemberNameLen = 100

type MemberHandler struct {
	store db.Store
}

func NewMemberHandler(store db.Store) *MemberHandler {
	return &MemberHandler{store: store}
}

// ListMembers handles GET /members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListMembers(r.Context())
	if err != nil {
		slog.Error("failed to list members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListMembersResponse{
		Members: members,
	})
}

// CreateMember handles POST /members
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMemberRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, msg := normalizeMemberName(req.Name)
	if msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	member, err := h.store.CreateMember(r.Context(), name)
	if errors.Is(err, db.ErrDuplicateName) {
		middleware.ErrorResponse(w, http.StatusConflict, "Member already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add member")
		return
	}

	slog.Info("member added", "member_id", member.ID, "name", member.Name)

	middleware.JSONResponse(w, http.StatusCreated, member)
}

// DeleteMember handles DELETE /members/{id}
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := r.PathValue("id")
	if memberID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "member id is required")
		return
	}

	err := h.store.DeleteMember(r.Context(), memberID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete member", "error", err, "member_id", memberID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete member")
		return
	}

	slog.Info("member deleted", "member_id", memberID)

	w.WriteHeader(http.StatusNoContent)
}

// normalizeMemberName trims the name and returns a client message when it
// cannot be stored
func normalizeMemberName(raw string) (string, string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", "name is required"
	}
	if utf8.RuneCountInString(name) > maxMemberNameLen {
		return "", "name must be at most 100 characters"
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return "", "name must not contain control characters"
	}
	return name, ""
}
