package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// HealthCheck is one dependency probed by /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handler struct {
	lineupService   *usecase.LineupService
	statsService    *usecase.StatsService
	overviewService *usecase.TeamOverviewService
	pollService     *usecase.PollService
	healthChecks    []HealthCheck
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	lineupService *usecase.LineupService,
	statsService *usecase.StatsService,
	overviewService *usecase.TeamOverviewService,
	pollService *usecase.PollService,
	healthChecks []HealthCheck,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		lineupService:   lineupService,
		statsService:    statsService,
		overviewService: overviewService,
		pollService:     pollService,
		healthChecks:    healthChecks,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	checks := make(map[string]string, len(h.healthChecks))
	status := http.StatusOK
	for _, hc := range h.healthChecks {
		if err := hc.Check(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed", "dependency", hc.Name, "error", err)
			checks[hc.Name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[hc.Name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	writeSuccess(ctx, w, status, healthDTO{Status: overall, Checks: checks})
}

func (h *Handler) decodeBody(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// queryTopN reads ?n=; absent means the service default.
func queryTopN(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("n"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 50 {
		return 0, fmt.Errorf("%w: n must be between 1 and 50", usecase.ErrInvalidInput)
	}
	return n, nil
}

func pathValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PathValue(key))
}
