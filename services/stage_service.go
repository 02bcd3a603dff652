package services

import (
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// AdvanceStage moves a sampling item or development sample to the target
// WIP stage and returns the replacement collections. Jumps are free except:
// Ready for Dispatch requires the quality-check confirmation, Dispatched
// is set only by a parcel dispatch, and a dispatched item rejects every
// further transition until it is externally reset. A rejected transition
// leaves the stage unchanged.
func AdvanceStage(cols models.Collections, origin RowOrigin, target string, qualityConfirmed bool, now time.Time) (models.Collections, error) {
	if !validStage(target) {
		return models.Collections{}, validationErr(CodeUnknownStage, "Unknown WIP stage: "+target)
	}
	if target == models.StageDispatched {
		return models.Collections{}, validationErr(CodeStageLocked, "Dispatched is set by parcel dispatch, not by stage selection")
	}

	out := cols.Clone()

	current, commit, err := stageAccessor(&out, origin)
	if err != nil {
		return models.Collections{}, err
	}
	if current == models.StageDispatched {
		return models.Collections{}, validationErr(CodeStageLocked, "Item has been dispatched; its stage is read-only")
	}
	if target == models.StageReadyForDispatch && !qualityConfirmed {
		return models.Collections{}, validationErr(CodeQualityGate, "Quality check must be confirmed before Ready for Dispatch")
	}

	commit(target, now)
	return out, nil
}

// stageAccessor resolves the stage-bearing record behind an origin. BOM
// lines carry no WIP stage, so only sampling and development rows resolve.
func stageAccessor(cols *models.Collections, origin RowOrigin) (string, func(string, time.Time), error) {
	switch origin.Kind {
	case KindSampling:
		item := findSamplingItem(cols, origin)
		if item == nil {
			return "", nil, validationErr(CodeRowNotFound, "Sampling item not found for stage transition")
		}
		return item.CurrentStage, func(stage string, now time.Time) {
			item.CurrentStage = stage
			item.UpdatedAt = now
		}, nil
	case KindDevelopment:
		item := findDevSample(cols, origin)
		if item == nil {
			return "", nil, validationErr(CodeRowNotFound, "Development sample not found for stage transition")
		}
		return item.CurrentStage, func(stage string, now time.Time) {
			item.CurrentStage = stage
			item.UpdatedAt = now
		}, nil
	default:
		return "", nil, validationErr(CodeRowNotFound, "Row kind carries no WIP stage")
	}
}

func validStage(stage string) bool {
	for _, s := range models.WIPStages {
		if s == stage {
			return true
		}
	}
	return false
}
