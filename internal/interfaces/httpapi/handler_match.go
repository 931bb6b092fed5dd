package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/match"
	"github.com/neocamp/partidas-futebol/internal/usecase"
)

// matchRequest keeps every field optional at the JSON level. Absent
// fields are rejected by the scheduling rules with a precise message,
// not by the decoder.
type matchRequest struct {
	HomeClubID *int64 `json:"homeClubId"`
	AwayClubID *int64 `json:"awayClubId"`
	HomeGoals  *int   `json:"homeGoals"`
	AwayGoals  *int   `json:"awayGoals"`
	StadiumID  *int64 `json:"stadiumId"`
	PlayedAt   string `json:"playedAt"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	HomeClubID   int64  `json:"homeClubId"`
	HomeClubName string `json:"homeClubName"`
	AwayClubID   int64  `json:"awayClubId"`
	AwayClubName string `json:"awayClubName"`
	HomeGoals    int    `json:"homeGoals"`
	AwayGoals    int    `json:"awayGoals"`
	StadiumID    int64  `json:"stadiumId"`
	StadiumName  string `json:"stadiumName"`
	PlayedAt     string `json:"playedAt"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	proposal, err := matchRequestToProposal(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, proposal)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchDetailsToDTO(ctx, created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := parseIDParam(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchQueryService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(ctx, item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := parseIDParam(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	proposal, err := matchRequestToProposal(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, id, proposal)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(ctx, updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := parseIDParam(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	var filter match.Filter
	var err error
	if filter.HomeClubID, err = parseOptionalIDQuery(r, "homeClubId"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.AwayClubID, err = parseOptionalIDQuery(r, "awayClubId"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.StadiumID, err = parseOptionalIDQuery(r, "stadiumId"); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.matchQueryService.List(ctx, filter, parsePageRequest(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(page, func(item usecase.MatchDetails) matchDTO {
		return matchDetailsToDTO(ctx, item)
	}))
}

func matchRequestToProposal(req matchRequest) (match.Proposal, error) {
	proposal := match.Proposal{
		HomeClubID: req.HomeClubID,
		AwayClubID: req.AwayClubID,
		HomeGoals:  req.HomeGoals,
		AwayGoals:  req.AwayGoals,
		StadiumID:  req.StadiumID,
	}

	if raw := strings.TrimSpace(req.PlayedAt); raw != "" {
		playedAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return match.Proposal{}, fmt.Errorf("%w: playedAt %q is not an RFC 3339 timestamp", usecase.ErrInvalidInput, raw)
		}
		proposal.PlayedAt = &playedAt
	}

	return proposal, nil
}

func matchDetailsToDTO(ctx context.Context, v usecase.MatchDetails) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchDetailsToDTO")
	defer span.End()

	return matchDTO{
		ID:           v.Match.ID,
		HomeClubID:   v.Match.HomeClubID,
		HomeClubName: v.HomeClubName,
		AwayClubID:   v.Match.AwayClubID,
		AwayClubName: v.AwayClubName,
		HomeGoals:    v.Match.HomeGoals,
		AwayGoals:    v.Match.AwayGoals,
		StadiumID:    v.Match.StadiumID,
		StadiumName:  v.StadiumName,
		PlayedAt:     v.Match.PlayedAt.UTC().Format(time.RFC3339),
	}
}
