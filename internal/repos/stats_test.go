package repos

import (
	"context"
	"testing"
	"time"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/repos/testutil"
)

func TestStatsRepoSummaryQueriesScopedToStore(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewStatsRepo(db, testLogger(t))
	catRepo := NewCategoryRepo(db, testLogger(t))

	a := seedStore(t, tx, "Alpha")
	b := seedStore(t, tx, "Beta")

	p1 := seedProduct(t, tx, a.ID, "alpha-shirt", 1000)
	p2 := seedProduct(t, tx, a.ID, "alpha-mug", 2550)
	p3 := seedProduct(t, tx, b.ID, "beta-poster", 2000)

	if _, err := catRepo.Create(ctx, tx, []*domain.Category{
		{StoreID: a.ID, Name: "Apparel", Slug: "apparel"},
		{StoreID: b.ID, Name: "Prints", Slug: "prints"},
		{StoreID: b.ID, Name: "Frames", Slug: "frames"},
	}); err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	seedReview(t, tx, a.ID, p1.ID, 4)
	seedReview(t, tx, a.ID, p1.ID, 5)
	seedReview(t, tx, b.ID, p3.ID, 2)

	shopper := seedCustomer(t, tx, a.ID, "shopper", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	// One checkout spanning both stores, one alpha-only.
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: p1.ID, StoreID: a.ID, UnitPriceCents: 1000, Quantity: 2},
		domain.OrderItem{ProductID: p3.ID, StoreID: b.ID, UnitPriceCents: 2000, Quantity: 1},
	)
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: p2.ID, StoreID: a.ID, UnitPriceCents: 2550, Quantity: 1},
	)

	revenueA, err := repo.RevenueCentsByStore(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("RevenueCentsByStore(a): %v", err)
	}
	if revenueA != 4550 {
		t.Fatalf("revenue for alpha = %d, want 4550 (beta's line must not leak in)", revenueA)
	}
	revenueB, err := repo.RevenueCentsByStore(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("RevenueCentsByStore(b): %v", err)
	}
	if revenueB != 2000 {
		t.Fatalf("revenue for beta = %d, want 2000", revenueB)
	}

	products, err := repo.ProductCountByStore(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("ProductCountByStore: %v", err)
	}
	if products != 2 {
		t.Fatalf("product count = %d, want 2", products)
	}

	categories, err := repo.CategoryCountByStore(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("CategoryCountByStore: %v", err)
	}
	if categories != 1 {
		t.Fatalf("category count = %d, want 1", categories)
	}

	avg, err := repo.AverageRatingByStore(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("AverageRatingByStore: %v", err)
	}
	if avg != 4.5 {
		t.Fatalf("average rating = %v, want 4.5", avg)
	}

	// A store with no rows at all reports zeros, not errors.
	empty := seedStore(t, tx, "Empty")
	if v, err := repo.RevenueCentsByStore(ctx, tx, empty.ID); err != nil || v != 0 {
		t.Fatalf("empty store revenue = %d, %v; want 0, nil", v, err)
	}
	if v, err := repo.AverageRatingByStore(ctx, tx, empty.ID); err != nil || v != 0 {
		t.Fatalf("empty store rating = %v, %v; want 0, nil", v, err)
	}
	if v, err := repo.ProductCountByStore(ctx, tx, empty.ID); err != nil || v != 0 {
		t.Fatalf("empty store products = %d, %v; want 0, nil", v, err)
	}
	if v, err := repo.CategoryCountByStore(ctx, tx, empty.ID); err != nil || v != 0 {
		t.Fatalf("empty store categories = %d, %v; want 0, nil", v, err)
	}
}

func TestStatsRepoDailySalesSparseAndOrdered(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewStatsRepo(db, testLogger(t))

	store := seedStore(t, tx, "Daily")
	product := seedProduct(t, tx, store.ID, "widget", 500)
	shopper := seedCustomer(t, tx, store.ID, "daily-shopper", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	item := func(qty int) domain.OrderItem {
		return domain.OrderItem{ProductID: product.ID, StoreID: store.ID, UnitPriceCents: 500, Quantity: qty}
	}
	// Two orders on Mar 1 (one exactly at the window start), one Mar 3,
	// one Mar 10, one before the window, one exactly at the exclusive end.
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), item(2))
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), item(1))
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), item(1))
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), item(3))
	seedOrder(t, tx, shopper.ID, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), item(9))
	seedOrder(t, tx, shopper.ID, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), item(7))

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	rows, err := repo.DailySalesByStore(ctx, tx, store.ID, from, to)
	if err != nil {
		t.Fatalf("DailySalesByStore: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d day rows, want 3 (days without sales must be absent)", len(rows))
	}
	wantDays := []struct {
		day   int
		total int64
	}{
		{1, 1500},
		{3, 500},
		{10, 1500},
	}
	for i, want := range wantDays {
		if rows[i].Day.Day() != want.day {
			t.Fatalf("row %d day = %d, want %d", i, rows[i].Day.Day(), want.day)
		}
		if rows[i].TotalCents != want.total {
			t.Fatalf("row %d total = %d, want %d", i, rows[i].TotalCents, want.total)
		}
	}
}

func TestStatsRepoRecentBuyersAndLatestOrderTotals(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewStatsRepo(db, testLogger(t))

	a := seedStore(t, tx, "Main")
	b := seedStore(t, tx, "Other")
	pa := seedProduct(t, tx, a.ID, "main-item", 100)
	pb := seedProduct(t, tx, b.ID, "other-item", 999)

	alice := seedCustomer(t, tx, a.ID, "alice", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	bob := seedCustomer(t, tx, a.ID, "bob", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	carol := seedCustomer(t, tx, a.ID, "carol", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	dave := seedCustomer(t, tx, a.ID, "dave", time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))

	// alice: older order 1000, newer order 300 in main plus a line from
	// the other store.
	seedOrder(t, tx, alice.ID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: pa.ID, StoreID: a.ID, UnitPriceCents: 100, Quantity: 10})
	seedOrder(t, tx, alice.ID, time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: pa.ID, StoreID: a.ID, UnitPriceCents: 100, Quantity: 3},
		domain.OrderItem{ProductID: pb.ID, StoreID: b.ID, UnitPriceCents: 999, Quantity: 1})

	// bob: newest checkout holds nothing from main, the older one does.
	seedOrder(t, tx, bob.ID, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: pa.ID, StoreID: a.ID, UnitPriceCents: 100, Quantity: 22})
	seedOrder(t, tx, bob.ID, time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: pb.ID, StoreID: b.ID, UnitPriceCents: 999, Quantity: 1})

	// carol: one order.
	seedOrder(t, tx, carol.ID, time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: pa.ID, StoreID: a.ID, UnitPriceCents: 100, Quantity: 5})

	// dave: only bought from the other store, so he is not a buyer of main.
	seedOrder(t, tx, dave.ID, time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC),
		domain.OrderItem{ProductID: pb.ID, StoreID: b.ID, UnitPriceCents: 999, Quantity: 2})

	buyers, err := repo.RecentBuyersByStore(ctx, tx, a.ID, 5)
	if err != nil {
		t.Fatalf("RecentBuyersByStore: %v", err)
	}
	if len(buyers) != 3 {
		t.Fatalf("got %d buyers, want 3 (dave has no qualifying order)", len(buyers))
	}
	wantNames := []string{"carol", "bob", "alice"}
	for i, want := range wantNames {
		if buyers[i].Name != want {
			t.Fatalf("buyer %d = %s, want %s", i, buyers[i].Name, want)
		}
	}

	limited, err := repo.RecentBuyersByStore(ctx, tx, a.ID, 2)
	if err != nil {
		t.Fatalf("RecentBuyersByStore limited: %v", err)
	}
	if len(limited) != 2 || limited[0].Name != "carol" || limited[1].Name != "bob" {
		t.Fatalf("limit 2 returned wrong page: %+v", limited)
	}

	total, ok, err := repo.LatestOrderTotalCents(ctx, tx, alice.ID, a.ID)
	if err != nil {
		t.Fatalf("LatestOrderTotalCents(alice): %v", err)
	}
	if !ok || total != 300 {
		t.Fatalf("alice latest total = %d ok=%v, want 300 true (newest order, main lines only)", total, ok)
	}

	total, ok, err = repo.LatestOrderTotalCents(ctx, tx, bob.ID, a.ID)
	if err != nil {
		t.Fatalf("LatestOrderTotalCents(bob): %v", err)
	}
	if !ok || total != 2200 {
		t.Fatalf("bob latest total = %d ok=%v, want 2200 true (newest order holding main lines)", total, ok)
	}

	total, ok, err = repo.LatestOrderTotalCents(ctx, tx, dave.ID, a.ID)
	if err != nil {
		t.Fatalf("LatestOrderTotalCents(dave): %v", err)
	}
	if ok || total != 0 {
		t.Fatalf("dave latest total = %d ok=%v, want 0 false", total, ok)
	}
}
