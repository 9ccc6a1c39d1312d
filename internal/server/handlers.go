package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/eventlog"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status  string            `json:"status"`
	Failing map[string]string `json:"failing,omitempty"`
}

// ReloadResponse lists the plugins whose documents were re-read
type ReloadResponse struct {
	Reloaded []string          `json:"reloaded"`
	Failed   map[string]string `json:"failed,omitempty"`
}

// ItemResponse is one catalog entry
type ItemResponse struct {
	ID   string      `json:"id"`
	Item domain.Item `json:"item"`
}

// CharacterSummary is one roster entry
type CharacterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Money int    `json:"money"`
}

// ErrorResponse carries a failure message
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, HealthResponse{Status: StatusOK})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
	defer cancel()

	failing := map[string]string{}
	for _, check := range s.opts.Checks {
		if err := check.Probe(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "check", check.Name, "error", err)
			failing[check.Name] = err.Error()
		}
	}

	if len(failing) > 0 {
		respondJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Failing: failing})
		return
	}
	respondJSON(w, r, http.StatusOK, HealthResponse{Status: StatusOK})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	names := lo.Keys(s.opts.Reloaders)
	sort.Strings(names)

	resp := ReloadResponse{Reloaded: []string{}}
	for _, name := range names {
		if err := s.opts.Reloaders[name].Reload(ctx); err != nil {
			log.Error(LogMsgReloadFailed, "plugin", name, "error", err)
			if resp.Failed == nil {
				resp.Failed = map[string]string{}
			}
			resp.Failed[name] = err.Error()
			continue
		}
		resp.Reloaded = append(resp.Reloaded, name)
	}
	log.Info(LogMsgReloaded, "plugins", resp.Reloaded)

	status := http.StatusOK
	if len(resp.Failed) > 0 {
		status = http.StatusInternalServerError
	}
	respondJSON(w, r, status, resp)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	guild := chi.URLParam(r, "guild")
	items := lo.Map(s.opts.Catalog.List(guild), func(e catalog.Entry, _ int) ItemResponse {
		return ItemResponse{ID: e.ID, Item: e.Item}
	})
	respondJSON(w, r, http.StatusOK, items)
}

func (s *Server) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	guild := chi.URLParam(r, "guild")
	roster := lo.Map(s.opts.Characters.List(guild), func(e character.Entry, _ int) CharacterSummary {
		return CharacterSummary{ID: e.ID, Name: e.Character.Name, Owner: e.Character.Owner.String(), Money: e.Character.Money}
	})
	respondJSON(w, r, http.StatusOK, roster)
}

func (s *Server) handleDumpCharacter(w http.ResponseWriter, r *http.Request) {
	guild := chi.URLParam(r, "guild")
	name := chi.URLParam(r, "name")

	_, data, err := s.opts.Characters.Dump(r.Context(), guild, name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := eventlog.Filter{Guild: chi.URLParam(r, "guild"), Type: q.Get("type")}

	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: ErrMsgBadSince})
			return
		}
		filter.Since = since
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: ErrMsgBadLimit})
			return
		}
		filter.Limit = limit
	}

	entries, err := s.opts.Events.Recent(r.Context(), filter)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgEventsFailed, "error", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, entries)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, r, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSyntax):
		respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		respondJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: ErrMsgInternal})
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgEncodeFailed, "error", err)
	}
}
