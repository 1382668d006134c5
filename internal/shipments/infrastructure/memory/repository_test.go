package memory

import (
	"context"
	"testing"

	shipments "logistics-cloud/internal/shipments/domain"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, shipments.ShipmentRecord{Nopol: "B 1 A", Driver: "Andi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.Create(ctx, shipments.ShipmentRecord{Nopol: "B 2 B", Driver: "Budi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first, second)
	}
}

func TestListPreservesInsertionOrderAfterDelete(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	for _, nopol := range []string{"B 1 A", "B 2 B", "B 3 C"} {
		if _, err := repo.Create(ctx, shipments.ShipmentRecord{Nopol: nopol, Driver: "x"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Nopol != "B 1 A" || records[1].Nopol != "B 3 C" {
		t.Fatalf("order broken: %q, %q", records[0].Nopol, records[1].Nopol)
	}
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	uj := 100000.0
	id, err := repo.Create(ctx, shipments.ShipmentRecord{Nopol: "B 1 A", Driver: "Andi", UJ: &uj})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	*got.UJ = 999999

	again, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *again.UJ != 100000 {
		t.Fatalf("stored record mutated through returned pointer: %v", *again.UJ)
	}
}

func TestMutationsOnMissingID(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	if _, err := repo.Get(ctx, 42); err != shipments.ErrNotFound {
		t.Fatalf("get: %v", err)
	}
	if err := repo.Update(ctx, shipments.ShipmentRecord{ID: 42}); err != shipments.ErrNotFound {
		t.Fatalf("update: %v", err)
	}
	if err := repo.SetSettlementStatus(ctx, 42, shipments.StatusConfirmed); err != shipments.ErrNotFound {
		t.Fatalf("settle: %v", err)
	}
	if err := repo.SetDeliveryStatus(ctx, 42, shipments.DeliveryShipped, "2026-04-02 10:00:00"); err != shipments.ErrNotFound {
		t.Fatalf("delivery: %v", err)
	}
	if err := repo.Delete(ctx, 42); err != shipments.ErrNotFound {
		t.Fatalf("delete: %v", err)
	}
}
