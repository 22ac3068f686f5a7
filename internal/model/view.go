package model

import (
	"fmt"
	"strings"
)

type ViewState int

const (
	ViewIdle ViewState = iota
	ViewLoading
	ViewResults
	ViewDetail
)

var viewStateNames = map[ViewState]string{
	ViewIdle:    "idle",
	ViewLoading: "loading",
	ViewResults: "results",
	ViewDetail:  "detail",
}

var viewTransitions = map[ViewState][]ViewState{
	ViewIdle:    {ViewLoading},
	ViewLoading: {ViewLoading, ViewResults},
	ViewResults: {ViewLoading, ViewDetail},
	ViewDetail:  {ViewResults, ViewLoading},
}

func (s ViewState) String() string {
	if name, ok := viewStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ViewState(%d)", int(s))
}

func (s ViewState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ViewState) UnmarshalText(text []byte) error {
	for state, name := range viewStateNames {
		if strings.EqualFold(name, string(text)) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("%w: unknown view state %q", ErrValidation, text)
}

// CanTransition reports whether to is reachable from s. Every state may
// return to Idle.
func (s ViewState) CanTransition(to ViewState) bool {
	if to == ViewIdle {
		return true
	}
	for _, next := range viewTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// View is the snapshot handed to the presentation layer.
type View struct {
	State         ViewState
	Query         string
	Mode          Mode
	Location      LocationFilter
	Page          int
	PageSize      int
	TotalPages    int
	TotalResults  int64
	FilteredCount int
	Products      []Product
	Facets        FacetSet
	Filters       ActiveFilterState
	Selected      *Product
	Vehicle       *VehicleInfo
	Error         string
}

func (v View) IsLoading() bool { return v.State == ViewLoading }
