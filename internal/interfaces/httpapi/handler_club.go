package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	"github.com/neocamp/partidas-futebol/internal/usecase"
)

const civilDateLayout = "2006-01-02"

type clubRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	State     string `json:"state" validate:"required,len=2"`
	FoundedOn string `json:"foundedOn" validate:"required"`
	Active    *bool  `json:"active" validate:"required"`
}

type clubDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	FoundedOn string `json:"foundedOn"`
	Active    bool   `json:"active"`
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req clubRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input, err := clubRequestToInput(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.clubService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(ctx, created))
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	id, err := parseIDParam(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(ctx, item))
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	id, err := parseIDParam(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input, err := clubRequestToInput(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.clubService.Update(ctx, id, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(ctx, updated))
}

func (h *Handler) DeactivateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateClub")
	defer span.End()

	id, err := parseIDParam(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubService.Deactivate(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "deactivate club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	query := r.URL.Query()
	filter := club.ListFilter{
		Name:  strings.TrimSpace(query.Get("name")),
		State: strings.TrimSpace(query.Get("state")),
	}
	if raw := strings.TrimSpace(query.Get("active")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: active %q is not a boolean", usecase.ErrInvalidInput, raw))
			return
		}
		filter.Active = &active
	}

	page, err := h.clubService.List(ctx, filter, parsePageRequest(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(page, func(item club.Club) clubDTO {
		return clubToDTO(ctx, item)
	}))
}

func clubRequestToInput(req clubRequest) (usecase.ClubInput, error) {
	foundedOn, err := time.Parse(civilDateLayout, strings.TrimSpace(req.FoundedOn))
	if err != nil {
		return usecase.ClubInput{}, fmt.Errorf("%w: foundedOn %q is not a YYYY-MM-DD date", usecase.ErrInvalidInput, req.FoundedOn)
	}

	return usecase.ClubInput{
		Name:      req.Name,
		State:     req.State,
		FoundedOn: foundedOn,
		Active:    *req.Active,
	}, nil
}

func clubToDTO(ctx context.Context, v club.Club) clubDTO {
	ctx, span := startSpan(ctx, "httpapi.clubToDTO")
	defer span.End()

	return clubDTO{
		ID:        v.ID,
		Name:      v.Name,
		State:     v.State,
		FoundedOn: v.FoundedOn.Format(civilDateLayout),
		Active:    v.Active,
	}
}
