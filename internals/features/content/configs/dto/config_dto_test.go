package dto

import (
	"testing"

	helper "storeadmin_backend/internals/helpers"

	"storeadmin_backend/internals/features/content/configs/model"
)

func TestCreateConfigToModel(t *testing.T) {
	req := CreateConfigRequest{
		ConfigName: "Shipping",
		ConfigOptions: []ConfigOption{
			{Key: "flat_rate", Value: "10"},
			{Key: "free_above", Value: "100"},
		},
	}
	m := req.ToModel()

	if m.ConfigStatus != "active" {
		t.Errorf("status = %q, want default active", m.ConfigStatus)
	}

	got := optionsFromJSON(m.ConfigOptions)
	if len(got) != 2 || got[0].Key != "flat_rate" || got[1].Value != "100" {
		t.Errorf("options round-trip failed: %+v", got)
	}
}

func TestCreateConfigToModelNilOptions(t *testing.T) {
	m := CreateConfigRequest{ConfigName: "Empty"}.ToModel()
	if string(m.ConfigOptions) != "[]" {
		t.Errorf("nil options should marshal to [], got %s", m.ConfigOptions)
	}
}

func TestToConfigDTOOptionsNeverNil(t *testing.T) {
	dto := ToConfigDTO(model.ConfigModel{ConfigName: "X", ConfigSlug: "x"})
	if dto.ConfigOptions == nil {
		t.Error("options should be an empty slice, not nil")
	}
}

func TestConfigOptionValidation(t *testing.T) {
	req := CreateConfigRequest{
		ConfigName:    "Shipping",
		ConfigOptions: []ConfigOption{{Key: "", Value: "10"}},
	}
	if err := helper.ValidateStruct(req); err == nil {
		t.Error("empty option key should fail validation")
	}

	req.ConfigOptions = []ConfigOption{{Key: "rate", Value: ""}}
	if err := helper.ValidateStruct(req); err == nil {
		t.Error("empty option value should fail validation")
	}

	req.ConfigOptions = []ConfigOption{{Key: "rate", Value: "10"}}
	if err := helper.ValidateStruct(req); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateConfigApplyTo(t *testing.T) {
	m := CreateConfigRequest{
		ConfigName:    "Shipping",
		ConfigOptions: []ConfigOption{{Key: "flat_rate", Value: "10"}},
	}.ToModel()
	m.ConfigSlug = "shipping"

	name := "Payments"
	req := UpdateConfigRequest{ConfigName: &name}
	req.ApplyTo(&m)

	if m.ConfigName != "Payments" {
		t.Errorf("name = %q", m.ConfigName)
	}
	// Options untouched when the request omits them.
	got := optionsFromJSON(m.ConfigOptions)
	if len(got) != 1 || got[0].Key != "flat_rate" {
		t.Errorf("options changed unexpectedly: %+v", got)
	}

	req = UpdateConfigRequest{ConfigOptions: []ConfigOption{{Key: "provider", Value: "stripe"}}}
	req.ApplyTo(&m)
	got = optionsFromJSON(m.ConfigOptions)
	if len(got) != 1 || got[0].Key != "provider" {
		t.Errorf("options not replaced: %+v", got)
	}
}
