package rate

import (
	"maps"
	"slices"
)

// Option is one carrier quote for a package.
type Option struct {
	ServiceID  string  `json:"service_id"`
	CarrierID  string  `json:"carrier_id,omitempty"`
	Title      string  `json:"title"`
	Rate       float64 `json:"rate"`
	IsSelected bool    `json:"is_selected,omitempty"`
}

// PackageRates are the quotes available for a single package.
type PackageRates struct {
	Rates []Option `json:"rates"`
}

// Selected returns the first option flagged as selected.
func (p PackageRates) Selected() (Option, bool) {
	for _, o := range p.Rates {
		if o.IsSelected {
			return o, true
		}
	}
	return Option{}, false
}

// State is the rates step of the label form.
type State struct {
	Values              map[string]string       `json:"values"`
	Available           map[string]PackageRates `json:"available"`
	RetrievalInProgress bool                    `json:"retrievalInProgress"`
	Expanded            bool                    `json:"expanded"`
}

// NewState returns a rates step with an empty selection for every package.
func NewState(packageIDs []string) State {
	return State{}.Reset(packageIDs)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	next := s
	next.Values = maps.Clone(s.Values)
	if s.Available != nil {
		next.Available = make(map[string]PackageRates, len(s.Available))
		for id, pr := range s.Available {
			next.Available[id] = PackageRates{Rates: slices.Clone(pr.Rates)}
		}
	}
	return next
}

// SetRates stores freshly fetched quotes and derives the selection of each
// quoted package from its selected option, or "" if none is selected.
// Packages missing from available lose their selection entry.
func (s State) SetRates(available map[string]PackageRates) State {
	next := s.Clone()
	next.Available = make(map[string]PackageRates, len(available))
	next.Values = make(map[string]string, len(available))
	for id, pr := range available {
		next.Available[id] = PackageRates{Rates: slices.Clone(pr.Rates)}
		if selected, ok := pr.Selected(); ok {
			next.Values[id] = selected.ServiceID
		} else {
			next.Values[id] = ""
		}
	}
	return next
}

// ClearAvailable drops every quote but keeps the selection.
func (s State) ClearAvailable() State {
	next := s.Clone()
	next.Available = map[string]PackageRates{}
	return next
}

// Reset clears the selection of every package in packageIDs and drops all
// quotes. Entries for packages not in packageIDs are removed.
func (s State) Reset(packageIDs []string) State {
	next := s.Clone()
	next.Values = make(map[string]string, len(packageIDs))
	for _, id := range packageIDs {
		next.Values[id] = ""
	}
	next.Available = map[string]PackageRates{}
	return next
}

// Update sets the selected service of a package.
func (s State) Update(packageID, serviceID string) State {
	next := s.Clone()
	if next.Values == nil {
		next.Values = make(map[string]string)
	}
	next.Values[packageID] = serviceID
	return next
}

// WithRetrievalInProgress returns a copy of s with the retrieval flag set.
func (s State) WithRetrievalInProgress(inProgress bool) State {
	next := s.Clone()
	next.RetrievalInProgress = inProgress
	return next
}

// ToggleExpanded returns a copy of s with the expanded flag flipped.
func (s State) ToggleExpanded() State {
	next := s.Clone()
	next.Expanded = !next.Expanded
	return next
}
