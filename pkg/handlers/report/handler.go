package report

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/fleet-report/pkg/models/api"
	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// Service is the slice of the report service the handlers need.
type Service interface {
	Devices(ctx context.Context) ([]domain.Device, error)
	Sections() []*domain.SectionDefinition
	DeviceReport(ctx context.Context, name string) (string, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	devices, err := h.svc.Devices(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list devices")
		http.Error(w, "failed to list devices", http.StatusBadGateway)
		return
	}

	response := make([]api.Device, 0, len(devices))
	for _, d := range devices {
		response = append(response, api.Device{Name: d.Name})
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode devices")
	}
}

func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var response []api.Section
	for _, sec := range h.svc.Sections() {
		response = append(response, api.Section{
			ID:      sec.ID,
			Title:   sec.Title,
			Kind:    string(sec.Kind),
			Order:   sec.Order,
			Enabled: sec.Enabled,
		})
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode sections")
	}
}

func (h *Handler) GetDeviceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	device := chi.URLParam(r, "device")

	doc, err := h.svc.DeviceReport(ctx, device)
	if err != nil {
		logger.Error().
			Err(err).
			Str("device", device).
			Msg("failed to render device report")
		http.Error(w, "failed to render report", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.Error().
			Err(err).
			Str("device", device).
			Msg("failed to write device report")
	}
}
