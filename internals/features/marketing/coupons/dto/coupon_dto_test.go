package dto

import (
	"testing"
	"time"

	"storeadmin_backend/internals/features/marketing/coupons/model"
)

func TestCreateValidateDates(t *testing.T) {
	now := time.Now()

	ok := CreateCouponRequest{CouponStartDate: now, CouponEndDate: now.Add(24 * time.Hour)}
	if err := ok.ValidateDates(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := CreateCouponRequest{CouponStartDate: now, CouponEndDate: now.Add(-time.Hour)}
	err := bad.ValidateDates()
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "End date must be later than start date" {
		t.Errorf("message = %q", err.Error())
	}

	equal := CreateCouponRequest{CouponStartDate: now, CouponEndDate: now}
	if equal.ValidateDates() == nil {
		t.Error("equal dates should be rejected")
	}
}

func TestUpdateValidateDatesAgainstStored(t *testing.T) {
	now := time.Now()
	current := model.CouponModel{
		CouponStartDate: now,
		CouponEndDate:   now.Add(48 * time.Hour),
	}

	// Moving only the start date past the stored end date must fail.
	late := now.Add(72 * time.Hour)
	req := UpdateCouponRequest{CouponStartDate: &late}
	if err := req.ValidateDates(current); err == nil {
		t.Error("expected error when start passes stored end")
	}

	// Extending only the end date is fine.
	req = UpdateCouponRequest{CouponEndDate: &late}
	if err := req.ValidateDates(current); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// No date fields keeps the stored, valid range.
	if err := (UpdateCouponRequest{}).ValidateDates(current); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateCouponToModel(t *testing.T) {
	now := time.Now()
	req := CreateCouponRequest{
		CouponCode:          "  summer24  ",
		CouponDiscountType:  "percentage",
		CouponDiscountValue: 15,
		CouponStartDate:     now,
		CouponEndDate:       now.Add(time.Hour),
	}
	m := req.ToModel()
	if m.CouponCode != "SUMMER24" {
		t.Errorf("code = %q, want uppercased and trimmed", m.CouponCode)
	}
	if m.CouponStatus != "active" {
		t.Errorf("status = %q, want default active", m.CouponStatus)
	}
}

func TestUpdateCouponApplyTo(t *testing.T) {
	now := time.Now()
	m := model.CouponModel{
		CouponCode:          "OLD",
		CouponDiscountType:  "flat",
		CouponDiscountValue: 5,
		CouponStartDate:     now,
		CouponEndDate:       now.Add(time.Hour),
		CouponStatus:        "active",
	}

	code := "new-code"
	value := 20.0
	req := UpdateCouponRequest{CouponCode: &code, CouponDiscountValue: &value}
	req.ApplyTo(&m)

	if m.CouponCode != "NEW-CODE" {
		t.Errorf("code = %q", m.CouponCode)
	}
	if m.CouponDiscountValue != 20 {
		t.Errorf("value = %v", m.CouponDiscountValue)
	}
	if m.CouponDiscountType != "flat" {
		t.Errorf("untouched field changed: %q", m.CouponDiscountType)
	}
}
