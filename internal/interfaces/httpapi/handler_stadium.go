package httpapi

import (
	"context"
	"net/http"

	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
)

type stadiumRequest struct {
	Name string `json:"name" validate:"required,min=3,max=120"`
}

type stadiumDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) CreateStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStadium")
	defer span.End()

	var req stadiumRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.stadiumService.Create(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create stadium failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, stadiumToDTO(ctx, created))
}

func (h *Handler) GetStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStadium")
	defer span.End()

	id, err := parseIDParam(r, "stadiumID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.stadiumService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(ctx, item))
}

func (h *Handler) UpdateStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStadium")
	defer span.End()

	id, err := parseIDParam(r, "stadiumID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req stadiumRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.stadiumService.Update(ctx, id, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "update stadium failed", "stadium_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(ctx, updated))
}

func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStadiums")
	defer span.End()

	page, err := h.stadiumService.List(ctx, parsePageRequest(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list stadiums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(page, func(item stadium.Stadium) stadiumDTO {
		return stadiumToDTO(ctx, item)
	}))
}

func stadiumToDTO(ctx context.Context, v stadium.Stadium) stadiumDTO {
	ctx, span := startSpan(ctx, "httpapi.stadiumToDTO")
	defer span.End()

	return stadiumDTO{ID: v.ID, Name: v.Name}
}
