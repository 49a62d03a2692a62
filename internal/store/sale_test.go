package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

func TestSaleRecord(t *testing.T) {
	db := testDB(t)
	d := testDealership(t, db)
	cleanVehicles(t, db, "TST0B02")
	cleanLeads(t, db, "Comprador Teste")
	cleanTransactions(t, db, "Venda Chevrolet Onix - Comprador Teste")
	t.Cleanup(func() {
		cleanTransactions(t, db, "Venda Chevrolet Onix - Comprador Teste")
		cleanVehicles(t, db, "TST0B02")
		cleanLeads(t, db, "Comprador Teste")
	})

	vehicles := NewVehicleStore(db)
	leads := NewLeadStore(db)
	sales := NewSaleStore(db)

	v, err := vehicles.Create(&models.Vehicle{
		DealershipID: d.ID,
		Make:         "Chevrolet",
		Model:        "Onix",
		SellingPrice: decimal.RequireFromString("75000.00"),
		Plate:        "TST0B02",
		Status:       models.VehicleAvailable,
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	l, err := leads.Create(&models.Lead{
		DealershipID: d.ID,
		Name:         "Comprador Teste",
		Phone:        "(11) 90000-0000",
	})
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}

	sale, err := sales.Record(&models.Sale{
		DealershipID: d.ID,
		VehicleID:    v.ID,
		LeadID:       l.ID,
		SalePrice:    decimal.RequireFromString("73500.00"),
	}, "Venda Chevrolet Onix - Comprador Teste")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM sales WHERE id = $1", sale.ID) })

	// The vehicle is marked sold.
	v2, _ := vehicles.FindByID(v.ID)
	if v2.Status != models.VehicleSold {
		t.Errorf("vehicle status: got %s, want sold", v2.Status)
	}

	// The lead moved to won.
	l2, _ := leads.FindByID(l.ID)
	if l2.Status != models.LeadWon {
		t.Errorf("lead status: got %s, want won", l2.Status)
	}

	// The sale price landed in the ledger as income.
	var amount decimal.Decimal
	err = db.QueryRow(`
		SELECT amount FROM financial_transactions WHERE description = $1 AND type = 'income'
	`, "Venda Chevrolet Onix - Comprador Teste").Scan(&amount)
	if err != nil {
		t.Fatalf("income entry: %v", err)
	}
	if !amount.Equal(decimal.RequireFromString("73500.00")) {
		t.Errorf("income amount: got %s, want 73500.00", amount)
	}
}

func TestSaleRecordMissingVehicleRollsBack(t *testing.T) {
	db := testDB(t)
	d := testDealership(t, db)
	cleanLeads(t, db, "Lead Sem Carro")
	t.Cleanup(func() { cleanLeads(t, db, "Lead Sem Carro") })

	leads := NewLeadStore(db)
	l, err := leads.Create(&models.Lead{DealershipID: d.ID, Name: "Lead Sem Carro", Phone: "x"})
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}

	sales := NewSaleStore(db)
	_, err = sales.Record(&models.Sale{
		DealershipID: d.ID,
		VehicleID:    l.ID, // not a vehicle — FK violation
		LeadID:       l.ID,
		SalePrice:    decimal.NewFromInt(1),
	}, "nunca deve existir")
	if err == nil {
		t.Fatal("expected error for missing vehicle")
	}

	// Nothing leaked into the ledger.
	var n int
	db.QueryRow(`SELECT COUNT(*) FROM financial_transactions WHERE description = 'nunca deve existir'`).Scan(&n)
	if n != 0 {
		t.Errorf("expected rollback, found %d ledger rows", n)
	}

	// The lead stayed in its stage.
	l2, _ := leads.FindByID(l.ID)
	if l2.Status != models.LeadNew {
		t.Errorf("lead status after rollback: got %s, want new", l2.Status)
	}
}
