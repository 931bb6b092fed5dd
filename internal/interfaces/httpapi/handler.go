package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/neocamp/partidas-futebol/internal/platform/logging"
	"github.com/neocamp/partidas-futebol/internal/usecase"
)

type Handler struct {
	clubService       *usecase.ClubService
	stadiumService    *usecase.StadiumService
	matchService      *usecase.MatchService
	matchQueryService *usecase.MatchQueryService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	clubService *usecase.ClubService,
	stadiumService *usecase.StadiumService,
	matchService *usecase.MatchService,
	matchQueryService *usecase.MatchQueryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		clubService:       clubService,
		stadiumService:    stadiumService,
		matchService:      matchService,
		matchQueryService: matchQueryService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s %q is not a positive integer", usecase.ErrInvalidInput, name, raw)
	}

	return id, nil
}

func parseOptionalIDQuery(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, fmt.Errorf("%w: %s %q is not a positive integer", usecase.ErrInvalidInput, name, raw)
	}

	return &id, nil
}

// parsePageRequest reads page and pageSize query parameters. Absent or
// malformed values fall back to the service defaults.
func parsePageRequest(r *http.Request) usecase.PageRequest {
	query := r.URL.Query()
	page, _ := strconv.Atoi(strings.TrimSpace(query.Get("page")))
	pageSize, _ := strconv.Atoi(strings.TrimSpace(query.Get("pageSize")))

	return usecase.PageRequest{Page: page, PageSize: pageSize}
}

type pageDTO[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

func pageToDTO[S, T any](page usecase.Page[S], convert func(S) T) pageDTO[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return pageDTO[T]{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
