package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"logistics-cloud/internal/audit"
	"logistics-cloud/internal/auth"
	"logistics-cloud/internal/observability/metrics"
	recapapp "logistics-cloud/internal/recap/application"
	recap "logistics-cloud/internal/recap/domain"
	recapexport "logistics-cloud/internal/recap/interfaces"
)

const filterDateLayout = "2006-01-02"

// Handler serves recap queries and both export formats.
type Handler struct {
	service     *recapapp.RecapService
	auditLogger audit.Logger
}

// NewHandler constructs a handler.
func NewHandler(service *recapapp.RecapService, auditLogger audit.Logger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("recap handler: nil service")
	}
	return &Handler{service: service, auditLogger: auditLogger}, nil
}

// ServeHTTP routes recap requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/v1/summary":
		if r.Method == http.MethodGet {
			h.handleSummary(w, r)
			return
		}
	case "/api/v1/recap":
		if r.Method == http.MethodPost {
			h.handleRecap(w, r)
			return
		}
	case "/api/v1/recap/export.pdf":
		if r.Method == http.MethodGet {
			h.handleExport(w, r, "pdf")
			return
		}
	case "/api/v1/recap/export.xlsx":
		if r.Method == http.MethodGet {
			h.handleExport(w, r, "xlsx")
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

// handleSummary serves the dashboard summary panel: one AggregateSummary
// per month, keyed like the month tabs.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.Dashboard(r.Context())
	if err != nil {
		http.Error(w, "summary error", http.StatusInternalServerError)
		return
	}
	summaries := make(map[string]recap.AggregateSummary, len(views))
	for _, view := range views {
		summaries[view.Key] = view.Summary
	}
	writeJSON(w, map[string]any{
		"status":          "success",
		"dataByMonthYear": summaries,
	})
}

func (h *Handler) handleRecap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nopol  string `json:"nopol"`
		Driver string `json:"driver"`
		Origin string `json:"origin"`
		From   string `json:"from"`
		To     string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	filter, err := buildFilter(req.Nopol, req.Driver, req.Origin, req.From, req.To)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.service.Recap(r.Context(), filter)
	if err != nil {
		http.Error(w, "recap error", http.StatusInternalServerError)
		return
	}
	// Operations staff get the matching records; the financial summary is
	// owner-only.
	if auth.RoleFromContext(r.Context()) == auth.RoleSuper {
		writeJSON(w, result)
		return
	}
	writeJSON(w, map[string]any{"data": result.Records})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request, format string) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveExport(format, result, time.Since(start))
	}()

	query := r.URL.Query()
	filter, err := buildFilter(query.Get("nopol"), query.Get("driver"), query.Get("origin"), query.Get("from"), query.Get("to"))
	if err != nil {
		result = metrics.ResultError
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	projection := recap.ProjectionOperations
	if auth.RoleFromContext(r.Context()) == auth.RoleSuper {
		projection = recap.ProjectionFull
	}
	rows, err := h.service.ShapedRows(r.Context(), filter, projection)
	if err != nil {
		result = metrics.ResultError
		http.Error(w, "recap error", http.StatusInternalServerError)
		return
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case "pdf":
		content, err = recapexport.BuildRecapPDF(h.service.Config(), rows, time.Now())
		contentType = "application/pdf"
	case "xlsx":
		content, err = recapexport.BuildRecapXLSX(h.service.Config(), rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		err = errors.New("unknown export format")
	}
	if err != nil {
		result = metrics.ResultError
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}

	filename := h.service.ExportFilename(format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(content)
	h.logAudit(r, "recap.export."+format, filename, len(rows))
}

func (h *Handler) logAudit(r *http.Request, action, filename string, rowCount int) {
	if h.auditLogger == nil {
		return
	}
	metadata, _ := json.Marshal(map[string]any{"filename": filename, "rows": rowCount})
	_ = h.auditLogger.Log(r.Context(), audit.Entry{
		Actor:        auth.SubjectFromContext(r.Context()),
		Role:         string(auth.RoleFromContext(r.Context())),
		Action:       action,
		ResourceType: "recap",
		ResourceID:   filename,
		Metadata:     metadata,
		IP:           r.RemoteAddr,
		UserAgent:    r.UserAgent(),
	})
}

func buildFilter(nopol, driver, origin, from, to string) (recap.Filter, error) {
	filter := recap.Filter{Nopol: nopol, Driver: driver, Origin: origin}
	if from != "" {
		parsed, err := time.Parse(filterDateLayout, from)
		if err != nil {
			return recap.Filter{}, errors.New("invalid from date")
		}
		filter.From = parsed
	}
	if to != "" {
		parsed, err := time.Parse(filterDateLayout, to)
		if err != nil {
			return recap.Filter{}, errors.New("invalid to date")
		}
		filter.To = parsed
	}
	return filter, nil
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}
