package validation

import (
	"testing"

	"trailrelief/entities"
)

func validConfig() entities.Config {
	cfg := entities.DefaultConfig()
	cfg.Projection = ""
	return cfg
}

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	if err := ValidateConfig(validConfig()); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateConfigRejectsVerticalBelowOne(t *testing.T) {
	cfg := validConfig()
	cfg.Vertical = 0.5
	assertFieldError(t, cfg, "vertical")
}

func TestValidateConfigRejectsSmallBed(t *testing.T) {
	cfg := validConfig()
	cfg.BedX = 10
	assertFieldError(t, cfg, "bedx")
}

func TestValidateConfigRejectsSmallBuffer(t *testing.T) {
	cfg := validConfig()
	cfg.Buffer = 0.1
	assertFieldError(t, cfg, "buffer")
}

func TestValidateConfigRejectsEmptyCustomProjection(t *testing.T) {
	cfg := validConfig()
	cfg.ProjSource = entities.ProjCustom
	cfg.Projection = ""
	assertFieldError(t, cfg, "projection")
}

func TestValidateConfigAcceptsNonEmptyCustomProjection(t *testing.T) {
	cfg := validConfig()
	cfg.ProjSource = entities.ProjCustom
	cfg.Projection = "GOOGLE"
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("expected a non-empty custom projection to validate, got %v", err)
	}
}

func TestValidateConfigRejectsInvertedRegionFit(t *testing.T) {
	cfg := validConfig()
	cfg.RegionFit = true
	cfg.RegionMinX, cfg.RegionMaxX = 10, 5
	cfg.RegionMinY, cfg.RegionMaxY = 0, 10
	assertFieldError(t, cfg, "regionfit")
}

func assertFieldError(t *testing.T, cfg entities.Config, field string) {
	t.Helper()
	err := ValidateConfig(cfg)
	if err == nil {
		t.Fatalf("expected an error for invalid %s", field)
	}
	multi, ok := err.(*entities.MultiFieldError)
	if !ok {
		t.Fatalf("expected *entities.MultiFieldError, got %T", err)
	}
	for _, e := range multi.Errors {
		if e.Field == field {
			return
		}
	}
	t.Fatalf("expected an error for field %q, got %v", field, multi.Errors)
}
