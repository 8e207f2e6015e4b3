package address

import "maps"

// Role names one of the address groups of a label form.
type Role string

const (
	Origin      Role = "origin"
	Destination Role = "destination"
)

// Field names with special handling.
const (
	FieldCountry = "country"
	FieldState   = "state"
)

// IsValid reports whether r is one of the known address roles.
func (r Role) IsValid() bool {
	return r == Origin || r == Destination
}

// Values maps address field names (name, address, city, state, postcode,
// country, ...) to the text entered for them.
type Values map[string]string

// Clone returns an independent copy; a nil map stays nil.
func (v Values) Clone() Values {
	return maps.Clone(v)
}

// Group is the state of one address group.
//
// Normalized is nil when no suggestion is held. IgnoreValidation is nil when
// validation has never been overridden for the group.
type Group struct {
	Values                  Values          `json:"values"`
	Normalized              Values          `json:"normalized"`
	IsNormalized            bool            `json:"isNormalized"`
	NormalizationInProgress bool            `json:"normalizationInProgress"`
	SelectNormalized        bool            `json:"selectNormalized"`
	IgnoreValidation        map[string]bool `json:"ignoreValidation"`
	Expanded                bool            `json:"expanded"`
}

// NewGroup returns a group in the Editing state holding values.
func NewGroup(values Values) Group {
	if values == nil {
		values = Values{}
	}
	return Group{
		Values:           values.Clone(),
		SelectNormalized: true,
		Expanded:         true,
	}
}

// Clone returns a deep copy of g.
func (g Group) Clone() Group {
	g.Values = g.Values.Clone()
	g.Normalized = g.Normalized.Clone()
	g.IgnoreValidation = maps.Clone(g.IgnoreValidation)
	return g
}

// UpdateValue overwrites one field and drops any normalization result.
// A country change resets the state field through the same rule, since
// states are only meaningful within a country.
func (g Group) UpdateValue(name, value string) Group {
	next := g.Clone()
	next.setValue(name, value)
	if name == FieldCountry {
		next.setValue(FieldState, "")
	}
	return next
}

func (g *Group) setValue(name, value string) {
	if g.Values == nil {
		g.Values = Values{}
	}
	g.Values[name] = value
	g.IsNormalized = false
	g.Normalized = nil
	if g.IgnoreValidation != nil {
		g.IgnoreValidation[name] = false
	}
}

// RemoveIgnoreValidation forgets every validation override of the group.
func (g Group) RemoveIgnoreValidation() Group {
	next := g.Clone()
	next.IgnoreValidation = nil
	return next
}

// BeginNormalization marks a normalization request as in flight.
func (g Group) BeginNormalization() Group {
	next := g.Clone()
	next.NormalizationInProgress = true
	return next
}

// SetNormalized stores the suggested address and preselects it. A trivial
// normalization differs from the input only cosmetically and is applied to
// Values immediately.
func (g Group) SetNormalized(normalized Values, trivial bool) Group {
	next := g.Clone()
	next.Normalized = normalized.Clone()
	next.SelectNormalized = true
	if trivial {
		next.Values = normalized.Clone()
	}
	return next
}

// CompleteNormalization marks the in-flight normalization as finished.
func (g Group) CompleteNormalization() Group {
	next := g.Clone()
	next.IsNormalized = true
	next.NormalizationInProgress = false
	return next
}

// WithSelectNormalized chooses between the suggested (true) and typed (false) address.
func (g Group) WithSelectNormalized(selectNormalized bool) Group {
	next := g.Clone()
	next.SelectNormalized = selectNormalized
	return next
}

// Edit returns the group to the Editing state.
func (g Group) Edit() Group {
	next := g.Clone()
	next.SelectNormalized = false
	next.Normalized = nil
	next.IsNormalized = false
	return next
}

// ConfirmSuggestion makes Values and Normalized agree on the chosen version
// and collapses the group. Without a held suggestion the typed address wins.
func (g Group) ConfirmSuggestion() Group {
	next := g.Clone()
	next.Expanded = false
	if next.SelectNormalized && next.Normalized != nil {
		next.Values = next.Normalized.Clone()
	} else {
		next.Normalized = next.Values.Clone()
	}
	return next
}

// ToggleExpanded flips the group's expanded flag.
func (g Group) ToggleExpanded() Group {
	next := g.Clone()
	next.Expanded = !next.Expanded
	return next
}
