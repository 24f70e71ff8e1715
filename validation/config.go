// Package validation checks a Config against its documented option
// ranges before a generation runs: accumulate every violation, then
// report them together.
package validation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"trailrelief/entities"
)

// ValidateConfig validates cfg against its documented option ranges.
// It returns a populated *entities.MultiFieldError when any field is
// out of range, or nil when cfg is usable as-is.
func ValidateConfig(cfg entities.Config) error {
	errs := entities.NewMultiFieldError()

	checkMin(errs, "vertical", cfg.Vertical, 1.0)
	checkMin(errs, "bedx", cfg.BedX, 20.0)
	checkMin(errs, "bedy", cfg.BedY, 20.0)
	checkMin(errs, "buffer", cfg.Buffer, 0.5)
	checkMin(errs, "base", cfg.Base, 0.0)
	checkMin(errs, "markerheight", cfg.MarkerHeight, 0.0)
	checkMin(errs, "markerinterval", cfg.MarkerInterval, 0.0)

	if cfg.ProjSource == entities.ProjCustom && cfg.Projection == "" {
		errs.Add("projection", "custom projection string must not be empty when projtype=1")
	}
	if cfg.SmoothType == entities.SmoothSpan {
		checkMin(errs, "smoothspan", cfg.SmoothSpan, 0.0)
	}
	if cfg.RegionFit {
		if cfg.RegionMaxX <= cfg.RegionMinX {
			errs.Add("regionfit", "region_maxx must be greater than region_minx")
		}
		if cfg.RegionMaxY <= cfg.RegionMinY {
			errs.Add("regionfit", "region_maxy must be greater than region_miny")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func checkMin(errs *entities.MultiFieldError, field string, value, min float64) {
	// ozzo's threshold rules skip zero values, so a positive minimum
	// also needs Required to reject a zero.
	rules := []validation.Rule{validation.Min(min)}
	if min > 0 {
		rules = append([]validation.Rule{validation.Required}, rules...)
	}
	if err := validation.Validate(value, rules...); err != nil {
		errs.Add(field, err.Error())
	}
}
