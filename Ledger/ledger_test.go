package Ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"Apar/Models"
)

func amount(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	value, err := ParseAmount(raw)
	if err != nil {
		t.Fatalf("ParseAmount(%q) error = %v, want nil", raw, err)
	}
	return value
}

func TestParseAmount_Valid(t *testing.T) {
	testCases := []string{"0.01", "1", "100.5", "9999999.99", "1000.00"}

	for _, raw := range testCases {
		if _, err := ParseAmount(raw); err != nil {
			t.Errorf("ParseAmount(%q) error = %v, want nil", raw, err)
		}
	}
}

func TestParseAmount_NonNumeric(t *testing.T) {
	testCases := []string{"", "abc", "12.3.4", "1,000"}

	for _, raw := range testCases {
		_, err := ParseAmount(raw)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", raw, err)
		}
	}
}

func TestParseAmount_TooManyDecimalPlaces(t *testing.T) {
	_, err := ParseAmount("10.005")
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ParseAmount(10.005) error = %v, want ErrInvalidAmount", err)
	}
}

func TestParseAmount_OutOfRange(t *testing.T) {
	_, err := ParseAmount("10000000000000000")
	if !errors.Is(err, ErrArithmetic) {
		t.Errorf("ParseAmount(1e16) error = %v, want ErrArithmetic", err)
	}
}

func TestNewProject(t *testing.T) {
	project, err := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "1000.00"))
	if err != nil {
		t.Fatalf("NewProject error = %v, want nil", err)
	}

	if !project.Balance.Equal(project.TotalPOAmount) {
		t.Errorf("balance = %s, want %s", project.Balance, project.TotalPOAmount)
	}
	if !project.TotalPaid.IsZero() {
		t.Errorf("total_paid = %s, want 0", project.TotalPaid)
	}
	if project.FullyPaid {
		t.Error("fully_paid = true, want false")
	}
}

func TestNewProject_NonPositiveAmount(t *testing.T) {
	testCases := []string{"0", "-100.00"}

	for _, raw := range testCases {
		_, err := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, raw))
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("NewProject(total=%s) error = %v, want ErrInvalidAmount", raw, err)
		}
	}
}

func TestNewVendorPO(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "EUR", amount(t, "1000.00"))
	project.ID = 7

	po, err := NewVendorPO(&project, "PO-2024-000001", "Supplies Ltd", amount(t, "400.00"))
	if err != nil {
		t.Fatalf("NewVendorPO error = %v, want nil", err)
	}

	if po.ProjectID != 7 {
		t.Errorf("project_id = %d, want 7", po.ProjectID)
	}
	if po.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR (inherited)", po.Currency)
	}
	if !po.Balance.Equal(po.POAmount) {
		t.Errorf("balance = %s, want %s", po.Balance, po.POAmount)
	}
	if po.IsPaid {
		t.Error("is_paid = true, want false")
	}
}

func TestNewVendorPO_ExceedsProjectBalance(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "1000.00"))

	_, err := NewVendorPO(&project, "PO-2024-000001", "Supplies Ltd", amount(t, "1000.01"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("NewVendorPO over balance error = %v, want ErrInvalidAmount", err)
	}
}

func TestNewVendorPO_DeletedProject(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "1000.00"))
	project.IsDeleted = true

	_, err := NewVendorPO(&project, "PO-2024-000001", "Supplies Ltd", amount(t, "100.00"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("NewVendorPO on deleted project error = %v, want ErrNotFound", err)
	}
}

func TestNewInvoice_BalanceNeutral(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "1000.00"))
	before := project.Balance

	invoice, err := NewInvoice(&project, nil, "progress", "INV-001", amount(t, "250.00"))
	if err != nil {
		t.Fatalf("NewInvoice error = %v, want nil", err)
	}

	if invoice.Currency != "USD" {
		t.Errorf("currency = %q, want USD (inherited)", invoice.Currency)
	}
	if !project.Balance.Equal(before) {
		t.Errorf("project balance changed on invoice creation: %s -> %s", before, project.Balance)
	}
}

func TestApplyTransaction_Scenario(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "1000.00"))
	po, _ := NewVendorPO(&project, "PO-2024-000001", "Supplies Ltd", amount(t, "1000.00"))

	if err := ApplyTransaction(&project, &po, amount(t, "500.00")); err != nil {
		t.Fatalf("first ApplyTransaction error = %v", err)
	}
	if !project.Balance.Equal(amount(t, "500.00")) {
		t.Errorf("project balance = %s, want 500.00", project.Balance)
	}
	if !po.Balance.Equal(amount(t, "500.00")) {
		t.Errorf("po balance = %s, want 500.00", po.Balance)
	}
	if po.IsPaid {
		t.Error("po is_paid = true after partial payment, want false")
	}

	if err := ApplyTransaction(&project, &po, amount(t, "500.00")); err != nil {
		t.Fatalf("second ApplyTransaction error = %v", err)
	}
	if !project.Balance.IsZero() {
		t.Errorf("project balance = %s, want 0.00", project.Balance)
	}
	if !po.IsPaid {
		t.Error("po is_paid = false after full payment, want true")
	}
	if !project.FullyPaid {
		t.Error("project fully_paid = false after full payment, want true")
	}
}

func TestApplyTransaction_BalanceInvariant(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "2500.00"))

	payments := []string{"100.00", "0.01", "1199.99", "700.00", "500.00"}
	for _, raw := range payments {
		if err := ApplyTransaction(&project, nil, amount(t, raw)); err != nil {
			t.Fatalf("ApplyTransaction(%s) error = %v", raw, err)
		}
		want := project.TotalPOAmount.Sub(project.TotalPaid)
		if !project.Balance.Equal(want) {
			t.Errorf("after %s: balance = %s, want %s", raw, project.Balance, want)
		}
		if project.FullyPaid != project.Balance.IsZero() {
			t.Errorf("after %s: fully_paid = %v with balance %s", raw, project.FullyPaid, project.Balance)
		}
	}
	if !project.FullyPaid {
		t.Error("fully_paid = false after paying the full amount")
	}
}

func TestApplyTransaction_FullyPaidFlipsBack(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "100.00"))

	if err := ApplyTransaction(&project, nil, amount(t, "100.00")); err != nil {
		t.Fatalf("ApplyTransaction error = %v", err)
	}
	if !project.FullyPaid {
		t.Fatal("fully_paid = false at zero balance, want true")
	}

	// An overpayment moves the balance away from zero again
	if err := ApplyTransaction(&project, nil, amount(t, "10.00")); err != nil {
		t.Fatalf("ApplyTransaction error = %v", err)
	}
	if project.FullyPaid {
		t.Error("fully_paid = true with non-zero balance, want false")
	}
}

func TestApplyTransaction_NonPositiveAmount(t *testing.T) {
	project, _ := NewProject("Acme", "QT-2024-0001-XX", "AC-2024-0001-X", "USD", amount(t, "100.00"))

	err := ApplyTransaction(&project, nil, amount(t, "-5.00"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ApplyTransaction(-5.00) error = %v, want ErrInvalidAmount", err)
	}
	if !project.TotalPaid.IsZero() {
		t.Errorf("total_paid mutated on rejected transaction: %s", project.TotalPaid)
	}
}

func TestRecompute(t *testing.T) {
	project := Models.Project{
		TotalPOAmount: amount(t, "1000.00"),
		TotalPaid:     amount(t, "999.00"), // stale
		Balance:       amount(t, "1.00"),   // stale
	}
	poID := uint(3)
	transactions := []Models.Transaction{
		{TransactionAmount: amount(t, "600.00"), VendorPurchaseOrderID: &poID},
		{TransactionAmount: amount(t, "400.00"), VendorPurchaseOrderID: &poID},
	}

	recomputed := Recompute(project, transactions)
	if !recomputed.TotalPaid.Equal(amount(t, "1000.00")) {
		t.Errorf("total_paid = %s, want 1000.00", recomputed.TotalPaid)
	}
	if !recomputed.Balance.IsZero() || !recomputed.FullyPaid {
		t.Errorf("balance = %s fully_paid = %v, want 0.00/true", recomputed.Balance, recomputed.FullyPaid)
	}

	po := Models.VendorPurchaseOrder{ID: 3, POAmount: amount(t, "1000.00"), Balance: amount(t, "1000.00")}
	recomputedPO := RecomputePO(po, transactions)
	if !recomputedPO.Balance.IsZero() || !recomputedPO.IsPaid {
		t.Errorf("po balance = %s is_paid = %v, want 0.00/true", recomputedPO.Balance, recomputedPO.IsPaid)
	}
}
