package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	recapapp "logistics-cloud/internal/recap/application"
	shipmentapp "logistics-cloud/internal/shipments/application"
	shipments "logistics-cloud/internal/shipments/domain"
	"logistics-cloud/internal/shipments/infrastructure/memory"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newTestHandler(t *testing.T) (*Handler, *memory.ShipmentRepository) {
	t.Helper()
	repo := memory.NewShipmentRepository()
	clock := fixedClock{at: time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)}

	service, err := shipmentapp.NewService(repo, clock)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	cfg, err := recapapp.LoadReportConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	dashboard, err := recapapp.NewRecapService(repo, cfg, clock)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	handler, err := NewHandler(service, dashboard, nil)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return handler, repo
}

func createShipment(t *testing.T, handler *Handler, body string) int64 {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments", bytes.NewBufferString(body))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("create: decode: %v", err)
	}
	return resp.ID
}

func TestCreateAppliesLifecycleDefaults(t *testing.T) {
	handler, repo := newTestHandler(t)

	id := createShipment(t, handler, `{"tanggal":"2026-03-10","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Surabaya","uj":100000,"harga":250000}`)

	stored, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != string(shipments.StatusPending) {
		t.Fatalf("status = %q, want pending default", stored.Status)
	}
	if stored.StatusSJ != string(shipments.DeliveryNotDone) {
		t.Fatalf("status_sj = %q, want %q", stored.StatusSJ, shipments.DeliveryNotDone)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments", bytes.NewBufferString(`{"driver":"Andi"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestListGroupsRecordsByMonth(t *testing.T) {
	handler, _ := newTestHandler(t)

	createShipment(t, handler, `{"tanggal":"2026-03-10","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Surabaya","uj":100000,"harga":250000}`)
	createShipment(t, handler, `{"nopol":"B 1002 TRK","driver":"Budi","origin":"Bandung","destinasi":"Semarang"}`)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shipments", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}

	var resp struct {
		Status      string `json:"status"`
		DataByMonth []struct {
			Key   string `json:"monthYear"`
			Label string `json:"label"`
			Count int    `json:"count"`
		} `json:"dataByMonth"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("status field = %q", resp.Status)
	}
	if len(resp.DataByMonth) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(resp.DataByMonth))
	}
	if resp.DataByMonth[0].Key != "2026-03" || resp.DataByMonth[0].Label != "Maret 2026" {
		t.Fatalf("first bucket = %+v", resp.DataByMonth[0])
	}
	if resp.DataByMonth[1].Label != "Tanpa Tanggal" {
		t.Fatalf("undated bucket label = %q", resp.DataByMonth[1].Label)
	}
}

func TestSettleConfirmsPayment(t *testing.T) {
	handler, repo := newTestHandler(t)
	id := createShipment(t, handler, `{"tanggal":"2026-03-10","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Surabaya"}`)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/shipments/1/settle", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("settle: status %d", rec.Code)
	}

	stored, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != string(shipments.StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", stored.Status)
	}
}

func TestDeliveryNoteStampsUpdateTime(t *testing.T) {
	handler, repo := newTestHandler(t)
	id := createShipment(t, handler, `{"tanggal":"2026-03-10","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Surabaya"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/shipments/1/delivery-note", bytes.NewBufferString(`{"status_sj":"Terkirim"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delivery-note: status %d", rec.Code)
	}

	stored, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.StatusSJ != string(shipments.DeliveryShipped) {
		t.Fatalf("status_sj = %q, want Terkirim", stored.StatusSJ)
	}
	if stored.TanggalUpdateSJ == nil || *stored.TanggalUpdateSJ != "2026-04-02 10:00:00" {
		t.Fatalf("tanggal_update_sj = %v, want fixed clock stamp", stored.TanggalUpdateSJ)
	}
}

func TestDeliveryNoteRejectsUnknownStatus(t *testing.T) {
	handler, _ := newTestHandler(t)
	createShipment(t, handler, `{"tanggal":"2026-03-10","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Surabaya"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/shipments/1/delivery-note", bytes.NewBufferString(`{"status_sj":"On The Way"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	handler, repo := newTestHandler(t)
	id := createShipment(t, handler, `{"tanggal":"2026-03-10","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Surabaya"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/shipments/1", bytes.NewBufferString(`{"tanggal":"2026-03-11","nopol":"B 1001 TRK","driver":"Andi","origin":"Jakarta","destinasi":"Malang","status":"pending","status_sj":"Belum selesai"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", rec.Code, rec.Body.String())
	}
	stored, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Destinasi != "Malang" {
		t.Fatalf("destinasi = %q, want Malang", stored.Destinasi)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/shipments/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	if _, err := repo.Get(context.Background(), id); err != shipments.ErrNotFound {
		t.Fatalf("after delete: got %v, want ErrNotFound", err)
	}
}

func TestUnknownIDReturns404(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shipments/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/shipments/99/settle", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("settle: status %d, want 404", rec.Code)
	}
}

func TestInvalidIDReturns400(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shipments/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}
