package services

import (
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// StatusKind selects which traffic-light rule set applies to a row.
type StatusKind string

const (
	StatusKindApproval StatusKind = "approval"
	StatusKindLab      StatusKind = "lab"
)

// Traffic-light colors
const (
	ColorGray   = "gray"
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// Traffic-light labels
const (
	LabelNotApplicable   = "N/A"
	LabelApproved        = "APPROVED"
	LabelWaitingFeedback = "WAITING FEEDBACK"
	LabelSent            = "SENT"
	LabelPending         = "PENDING"
)

// Status is a derived traffic-light state shown on tracker rows.
type Status struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// StatusInput carries the raw flags the derivation reads. Status is the
// item's lifecycle status for the approval kind and its lab status for
// the lab kind.
type StatusInput struct {
	Required   bool
	Status     string
	SentOn     *time.Time
	ReceivedOn *time.Time
}

// DeriveStatus maps raw flags to a traffic-light state. Precedence is
// fixed, first match wins. The approval and lab branches are deliberately
// asymmetric: lab only waits on feedback while its status is Testing,
// approval waits whenever a receipt timestamp exists.
func DeriveStatus(kind StatusKind, in StatusInput) Status {
	if !in.Required {
		return Status{Color: ColorGray, Label: LabelNotApplicable}
	}

	if kind == StatusKindLab {
		switch {
		case in.Status == models.LabApproved:
			return Status{Color: ColorGreen, Label: LabelApproved}
		case in.ReceivedOn != nil && in.Status == models.LabTesting:
			return Status{Color: ColorOrange, Label: LabelWaitingFeedback}
		case in.Status == models.LabTesting || in.Status == models.LabSent:
			return Status{Color: ColorYellow, Label: LabelSent}
		default:
			return Status{Color: ColorRed, Label: LabelPending}
		}
	}

	switch {
	case in.Status == models.StatusApproved:
		return Status{Color: ColorGreen, Label: LabelApproved}
	case in.ReceivedOn != nil:
		return Status{Color: ColorOrange, Label: LabelWaitingFeedback}
	case in.SentOn != nil || in.Status == models.StatusSubmitted:
		return Status{Color: ColorYellow, Label: LabelSent}
	default:
		return Status{Color: ColorRed, Label: LabelPending}
	}
}
