package services

import (
	"errors"
	"testing"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/models"
)

func TestCreateFormWithDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)

	user := seedUser(t, db, "owner@b.com")
	mixer := seedStock(t, db, "mixer", 2, models.StockTypeSound)
	cable := seedStock(t, db, "cable", 30, models.StockTypeSound)

	form, err := svc.Create(&dto.CreateFormRequest{
		InitialDate: "2026-09-01",
		FinalDate:   "2026-09-03",
		UserID:      user.ID,
		Details: []dto.CreateDetailRequest{
			{StockID: mixer.ID, Description: "main mixer", Quantity: 1, Type: "checkout"},
			{StockID: cable.ID, Description: "xlr cables", Quantity: 10, Type: "checkout"},
		},
	})
	if err != nil {
		t.Fatalf("form creation failed: %v", err)
	}
	if form.ID == 0 {
		t.Fatalf("expected generated form id")
	}
	if len(form.Details) != 2 {
		t.Fatalf("expected 2 details on response, got %d", len(form.Details))
	}

	var details []models.DetailForm
	if err := db.Where("form_id = ?", form.ID).Find(&details).Error; err != nil {
		t.Fatalf("detail reload failed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 stored details, got %d", len(details))
	}
	for _, d := range details {
		if d.FormID != form.ID {
			t.Errorf("detail %d references form %d, want %d", d.ID, d.FormID, form.ID)
		}
	}
}

func TestCreateFormInvalidDetailLeavesNothingBehind(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)

	user := seedUser(t, db, "owner@b.com")
	mixer := seedStock(t, db, "mixer", 2, models.StockTypeSound)

	_, err := svc.Create(&dto.CreateFormRequest{
		InitialDate: "2026-09-01",
		FinalDate:   "2026-09-03",
		UserID:      user.ID,
		Details: []dto.CreateDetailRequest{
			{StockID: mixer.ID, Description: "ok line", Quantity: 1, Type: "checkout"},
			{StockID: mixer.ID, Description: "bad line", Quantity: 1, Type: "bogus"},
		},
	})
	if !errors.Is(err, ErrInvalidDetailType) {
		t.Fatalf("expected ErrInvalidDetailType, got %v", err)
	}

	var formCount, detailCount int64
	db.Model(&models.Form{}).Count(&formCount)
	db.Model(&models.DetailForm{}).Count(&detailCount)
	if formCount != 0 {
		t.Errorf("expected 0 forms after rollback, got %d", formCount)
	}
	if detailCount != 0 {
		t.Errorf("expected 0 details after rollback, got %d", detailCount)
	}
}

func TestCreateFormUnknownUserOrStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	user := seedUser(t, db, "owner@b.com")

	_, err := svc.Create(&dto.CreateFormRequest{
		InitialDate: "2026-09-01", FinalDate: "2026-09-03", UserID: 999,
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	_, err = svc.Create(&dto.CreateFormRequest{
		InitialDate: "2026-09-01", FinalDate: "2026-09-03", UserID: user.ID,
		Details: []dto.CreateDetailRequest{
			{StockID: 999, Quantity: 1, Type: "checkout"},
		},
	})
	if !errors.Is(err, ErrStockNotFound) {
		t.Fatalf("expected ErrStockNotFound, got %v", err)
	}

	var formCount int64
	db.Model(&models.Form{}).Count(&formCount)
	if formCount != 0 {
		t.Errorf("expected no forms persisted, got %d", formCount)
	}
}

func TestCreateFormValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)

	cases := []struct {
		name string
		req  dto.CreateFormRequest
		want error
	}{
		{"missing initialDate", dto.CreateFormRequest{FinalDate: "2026-09-03", UserID: 1}, ErrInitialDateRequired},
		{"missing finalDate", dto.CreateFormRequest{InitialDate: "2026-09-01", UserID: 1}, ErrFinalDateRequired},
		{"missing userId", dto.CreateFormRequest{InitialDate: "2026-09-01", FinalDate: "2026-09-03"}, ErrUserIDRequired},
		{"malformed date", dto.CreateFormRequest{InitialDate: "01/09/2026", FinalDate: "2026-09-03", UserID: 1}, ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(&tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestListFormsReturnsDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)

	user := seedUser(t, db, "owner@b.com")
	stock := seedStock(t, db, "mixer", 2, models.StockTypeSound)

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(&dto.CreateFormRequest{
			InitialDate: "2026-09-01", FinalDate: "2026-09-03", UserID: user.ID,
			Details: []dto.CreateDetailRequest{
				{StockID: stock.ID, Quantity: 1, Type: "checkout"},
			},
		}); err != nil {
			t.Fatalf("form creation failed: %v", err)
		}
	}

	forms, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}
	for _, f := range forms {
		if len(f.Details) != 1 {
			t.Errorf("form %d: expected 1 preloaded detail, got %d", f.ID, len(f.Details))
		}
	}
}
