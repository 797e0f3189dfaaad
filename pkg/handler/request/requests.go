package request

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yumyai/seqspec/pkg/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(regionStructLevel, model.Region{})
	validate.RegisterStructValidation(readStructLevel, model.Read{})
	validate.RegisterStructValidation(regionUpdateStructLevel, model.RegionUpdate{})
}

// Body of POST /api/v1/assays/{assay_id}/regions
type InsertRegionsRequest struct {
	Modality string          `json:"modality" validate:"required"`
	After    string          `json:"after"`
	Regions  []*model.Region `json:"regions" validate:"required,min=1,dive,required"`
}

// Body of POST /api/v1/assays/{assay_id}/reads
type InsertReadsRequest struct {
	Modality string        `json:"modality" validate:"required"`
	After    string        `json:"after"`
	Reads    []*model.Read `json:"reads" validate:"required,min=1,dive,required"`
}

func (r *InsertRegionsRequest) Validate() error {
	return validate.Struct(r)
}

func (r *InsertReadsRequest) Validate() error {
	return validate.Struct(r)
}

// ValidateRegionUpdate checks the bounds carried by a PATCH body.
func ValidateRegionUpdate(upd *model.RegionUpdate) error {
	return validate.Struct(upd)
}

func regionStructLevel(sl validator.StructLevel) {
	r := sl.Current().Interface().(model.Region)
	checkRegion(sl, &r, "")
}

// checkRegion reports on r and its whole subtree. Nested fields are named by
// their path, e.g. "regions[1].region_id".
func checkRegion(sl validator.StructLevel, r *model.Region, prefix string) {
	if r.RegionID == "" {
		sl.ReportError(r.RegionID, prefix+"region_id", "RegionID", "required", "")
	}
	if r.MinLen < 0 {
		sl.ReportError(r.MinLen, prefix+"min_len", "MinLen", "gte", "0")
	}
	if r.MinLen > r.MaxLen {
		sl.ReportError(r.MaxLen, prefix+"max_len", "MaxLen", "gtefield", "MinLen")
	}
	for i, child := range r.Regions {
		childPrefix := fmt.Sprintf("%sregions[%d].", prefix, i)
		if child == nil {
			sl.ReportError(child, strings.TrimSuffix(childPrefix, "."), "Regions", "required", "")
			continue
		}
		checkRegion(sl, child, childPrefix)
	}
}

func readStructLevel(sl validator.StructLevel) {
	rd := sl.Current().Interface().(model.Read)
	if rd.ReadID == "" {
		sl.ReportError(rd.ReadID, "read_id", "ReadID", "required", "")
	}
	if rd.Strand != model.StrandPos && rd.Strand != model.StrandNeg {
		sl.ReportError(rd.Strand, "strand", "Strand", "oneof", "pos neg")
	}
	if rd.MinLen < 0 {
		sl.ReportError(rd.MinLen, "min_len", "MinLen", "gte", "0")
	}
	if rd.MinLen > rd.MaxLen {
		sl.ReportError(rd.MaxLen, "max_len", "MaxLen", "gtefield", "MinLen")
	}
}

func regionUpdateStructLevel(sl validator.StructLevel) {
	upd := sl.Current().Interface().(model.RegionUpdate)
	if upd.RegionID != nil && *upd.RegionID == "" {
		sl.ReportError(*upd.RegionID, "region_id", "RegionID", "required", "")
	}
	if upd.MinLen != nil && *upd.MinLen < 0 {
		sl.ReportError(*upd.MinLen, "min_len", "MinLen", "gte", "0")
	}
	if upd.MinLen != nil && upd.MaxLen != nil && *upd.MinLen > *upd.MaxLen {
		sl.ReportError(*upd.MaxLen, "max_len", "MaxLen", "gtefield", "MinLen")
	}
}
