package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"logistics-cloud/internal/audit"
	"logistics-cloud/internal/auth"
	recapapp "logistics-cloud/internal/recap/application"
	shipmentapp "logistics-cloud/internal/shipments/application"
	shipments "logistics-cloud/internal/shipments/domain"
)

// Handler handles shipment APIs under /api/v1/shipments.
type Handler struct {
	service     *shipmentapp.Service
	dashboard   *recapapp.RecapService
	auditLogger audit.Logger
}

// NewHandler constructs a handler.
func NewHandler(service *shipmentapp.Service, dashboard *recapapp.RecapService, auditLogger audit.Logger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("shipment handler: nil service")
	}
	if dashboard == nil {
		return nil, errors.New("shipment handler: nil dashboard")
	}
	return &Handler{service: service, dashboard: dashboard, auditLogger: auditLogger}, nil
}

// ServeHTTP routes shipment requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/api/v1/shipments" {
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleCreate(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}
	if rest, ok := strings.CutPrefix(path, "/api/v1/shipments/"); ok {
		h.handleByID(w, r, rest)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.dashboard.Dashboard(r.Context())
	if err != nil {
		http.Error(w, "dashboard error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"status":      "success",
		"dataByMonth": views,
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var record shipments.ShipmentRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	id, err := h.service.Create(r.Context(), record)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
	h.logAudit(r, "shipment.create", id, nil)
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request, rest string) {
	parts := strings.Split(rest, "/")
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.handleGet(w, r, id)
		case http.MethodPut:
			h.handleUpdate(w, r, id)
		case http.MethodDelete:
			h.handleDelete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) == 2 {
		switch parts[1] {
		case "settle":
			if r.Method == http.MethodPost {
				h.handleSettle(w, r, id)
				return
			}
		case "delivery-note":
			if r.Method == http.MethodPut {
				h.handleDeliveryNote(w, r, id)
				return
			}
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request, id int64) {
	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, record)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	var record shipments.ShipmentRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	record.ID = id
	if err := h.service.Update(r.Context(), record); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"status": "success"})
	h.logAudit(r, "shipment.update", id, nil)
}

func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.Settle(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"status": "success"})
	h.logAudit(r, "shipment.settle", id, nil)
}

func (h *Handler) handleDeliveryNote(w http.ResponseWriter, r *http.Request, id int64) {
	var req struct {
		StatusSJ string `json:"status_sj"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateDeliveryNote(r.Context(), id, shipments.DeliveryStatus(req.StatusSJ)); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"status": "success"})
	h.logAudit(r, "shipment.delivery_note", id, map[string]any{"status_sj": req.StatusSJ})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"status": "success"})
	h.logAudit(r, "shipment.delete", id, nil)
}

func (h *Handler) logAudit(r *http.Request, action string, id int64, metadata map[string]any) {
	if h.auditLogger == nil {
		return
	}
	var payload json.RawMessage
	if metadata != nil {
		payload, _ = json.Marshal(metadata)
	}
	_ = h.auditLogger.Log(r.Context(), audit.Entry{
		Actor:        auth.SubjectFromContext(r.Context()),
		Role:         string(auth.RoleFromContext(r.Context())),
		Action:       action,
		ResourceType: "shipment",
		ResourceID:   strconv.FormatInt(id, 10),
		Metadata:     payload,
		IP:           r.RemoteAddr,
		UserAgent:    r.UserAgent(),
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shipments.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, shipments.ErrEmptyNopol),
		errors.Is(err, shipments.ErrEmptyDriver),
		errors.Is(err, shipments.ErrInvalidStatus),
		errors.Is(err, shipments.ErrInvalidDeliveryStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}
