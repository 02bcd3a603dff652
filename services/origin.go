package services

import (
	"github.com/stitchline/stitchline-api/models"
)

// findSamplingItem locates a job-scoped sampling item by its origin ids.
// Returns a pointer into cols so callers can patch it in place.
func findSamplingItem(cols *models.Collections, origin RowOrigin) *models.SamplingItem {
	for ji := range cols.Jobs {
		if cols.Jobs[ji].ID != origin.JobID {
			continue
		}
		styles := cols.Jobs[ji].Styles
		for si := range styles {
			if styles[si].ID != origin.StyleID {
				continue
			}
			items := styles[si].SamplingItems
			for ii := range items {
				if items[ii].ID == origin.ItemID {
					return &items[ii]
				}
			}
		}
	}
	return nil
}

func findBOMItem(cols *models.Collections, origin RowOrigin) *models.BOMItem {
	for ji := range cols.Jobs {
		if cols.Jobs[ji].ID != origin.JobID {
			continue
		}
		styles := cols.Jobs[ji].Styles
		for si := range styles {
			if styles[si].ID != origin.StyleID {
				continue
			}
			items := styles[si].BOMItems
			for ii := range items {
				if items[ii].ID == origin.ItemID {
					return &items[ii]
				}
			}
		}
	}
	return nil
}

func findDevSample(cols *models.Collections, origin RowOrigin) *models.DevelopmentSample {
	for di := range cols.DevSamples {
		if cols.DevSamples[di].ID == origin.ItemID {
			return &cols.DevSamples[di]
		}
	}
	return nil
}

func findStyle(cols *models.Collections, jobID, styleID uint) *models.Style {
	for ji := range cols.Jobs {
		if cols.Jobs[ji].ID != jobID {
			continue
		}
		styles := cols.Jobs[ji].Styles
		for si := range styles {
			if styles[si].ID == styleID {
				return &styles[si]
			}
		}
	}
	return nil
}

func findParcel(cols *models.Collections, parcelID uint) *models.Parcel {
	for pi := range cols.Parcels {
		if cols.Parcels[pi].ID == parcelID {
			return &cols.Parcels[pi]
		}
	}
	return nil
}
