package models

// Collections bundles the four top-level record collections the tracking
// engine operates on. Engine operations receive a Collections value and
// return a brand-new one; the caller commits the replacement wholesale.
// The engine never mutates the input in place and never aliases its
// slices in the output.
type Collections struct {
	Jobs       []Job
	DevSamples []DevelopmentSample
	Parcels    []Parcel
	WorkOrders []IssuedWorkOrder
}

// cloneSlice copies a slice of value records. Nil stays nil so a clone
// compares and marshals identically to its source.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// cloneWith is cloneSlice with a per-element deep copy.
func cloneWith[T any](s []T, fn func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i := range s {
		out[i] = fn(s[i])
	}
	return out
}

// Clone returns a deep copy of the collections. Association slices are
// copied element by element so a mutation on the copy can never reach the
// caller's snapshot.
func (c Collections) Clone() Collections {
	return Collections{
		Jobs:       cloneWith(c.Jobs, cloneJob),
		DevSamples: cloneSlice(c.DevSamples),
		Parcels:    cloneWith(c.Parcels, cloneParcel),
		WorkOrders: cloneWith(c.WorkOrders, cloneWorkOrder),
	}
}

func cloneJob(j Job) Job {
	out := j
	out.Styles = cloneWith(j.Styles, cloneStyle)
	out.WorkOrderRequests = cloneSlice(j.WorkOrderRequests)
	return out
}

func cloneStyle(s Style) Style {
	out := s
	out.SamplingItems = cloneSlice(s.SamplingItems)
	out.BOMItems = cloneSlice(s.BOMItems)
	if s.PPMeeting != nil {
		m := *s.PPMeeting
		m.Sections = cloneSlice(s.PPMeeting.Sections)
		out.PPMeeting = &m
	}
	return out
}

func cloneParcel(p Parcel) Parcel {
	out := p
	out.Items = cloneSlice(p.Items)
	return out
}

func cloneWorkOrder(w IssuedWorkOrder) IssuedWorkOrder {
	out := w
	out.Items = cloneSlice(w.Items)
	return out
}
