package packaging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"shippinglabel/internal/core/domain/model/kernel"
)

// Set is the collection of packages selected for an order, keyed by package
// ID and ordered by insertion.
//
// The zero value is an empty, unsaved set ready for use.
type Set struct {
	order []string
	byID  map[string]Package

	// Saved is false while the set has edits not yet confirmed by the user.
	Saved bool
	// IsPacked reports whether the server pre-packed the items.
	IsPacked bool
	// Expanded is the UI state of the packages step.
	Expanded bool
}

// NewSet builds a set from pkgs in the given order. A later package with the
// same ID replaces an earlier one but keeps its position.
func NewSet(pkgs ...Package) Set {
	var s Set
	for _, p := range pkgs {
		s.put(p.Clone())
	}
	return s
}

// Len returns the number of packages.
func (s Set) Len() int {
	return len(s.order)
}

// IDs returns the package IDs in order.
func (s Set) IDs() []string {
	return slices.Clone(s.order)
}

// Has reports whether a package with the given ID exists.
func (s Set) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns a copy of the package with the given ID.
func (s Set) Get(id string) (Package, bool) {
	p, ok := s.byID[id]
	if !ok {
		return Package{}, false
	}
	return p.Clone(), true
}

// Packages returns copies of all packages in order.
func (s Set) Packages() []Package {
	out := make([]Package, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	next := s
	next.order = slices.Clone(s.order)
	if s.byID == nil {
		return next
	}
	next.byID = make(map[string]Package, len(s.byID))
	for id, p := range s.byID {
		next.byID[id] = p.Clone()
	}
	return next
}

// WithSaved returns a copy of s with the saved flag set.
func (s Set) WithSaved(saved bool) Set {
	next := s.Clone()
	next.Saved = saved
	return next
}

// ToggleExpanded returns a copy of s with the expanded flag flipped.
func (s Set) ToggleExpanded() Set {
	next := s.Clone()
	next.Expanded = !next.Expanded
	return next
}

func (s *Set) put(p Package) {
	if s.byID == nil {
		s.byID = make(map[string]Package)
	}
	if _, ok := s.byID[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.byID[p.ID] = p
}

func (s *Set) remove(id string) {
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool { return existing == id })
}

// UpdateWeight records a weight typed by the user. The value becomes
// authoritative and survives later box changes.
func (s Set) UpdateWeight(id string, weight float64) (Set, bool) {
	p, ok := s.Get(id)
	if !ok {
		return s, false
	}

	next := s.Clone()
	p.Weight = weight
	p.IsUserSpecifiedWeight = true
	next.put(p)
	next.Saved = false
	return next, true
}

// AddPackage appends an empty, unboxed package and returns its generated ID.
func (s Set) AddPackage() (Set, string) {
	next := s.Clone()
	id := GenerateUniqueBoxID(CustomPackagePrefix, next.order)
	next.put(Package{
		ID:    id,
		BoxID: BoxNotSelected,
		Items: []Item{},
	})
	next.Saved = false
	return next, id
}

// RemovePackage deletes a package and moves its items, with their weight,
// to the first remaining package. It returns the ID of that package. A
// receiver whose weight the user entered keeps that weight.
//
// Removing an unknown package or the only package is a no-op.
func (s Set) RemovePackage(id string) (Set, string, bool) {
	removed, ok := s.Get(id)
	if !ok || s.Len() < 2 {
		return s, "", false
	}

	next := s.Clone()
	next.remove(id)

	receiverID := next.order[0]
	receiver := next.byID[receiverID]
	receiver.Items = append(receiver.Items, removed.Items...)
	if !receiver.IsUserSpecifiedWeight {
		receiver.Weight = kernel.AddWeight(receiver.Weight, removed.ItemsWeight())
	}
	next.put(receiver)
	next.Saved = false
	return next, receiverID, true
}

// SetPackageType assigns a box profile to a package.
//
// Unless the weight was typed by the user, it is recomputed as the box tare
// plus the items' weight; boxTypeID BoxNotSelected (or a nil box) counts as
// no tare and zero dimensions. Any carried-over rate selection is dropped.
func (s Set) SetPackageType(id, boxTypeID string, box *Box) (Set, bool) {
	p, ok := s.Get(id)
	if !ok {
		return s, false
	}

	hasBox := box != nil && boxTypeID != BoxNotSelected

	if p.IsUserSpecifiedWeight {
		p.Weight = kernel.RoundWeight(p.Weight)
	} else {
		tare := 0.0
		if hasBox {
			tare = box.BoxWeight
		}
		p.Weight = kernel.AddWeight(tare, p.ItemsWeight())
	}

	var dims kernel.Dimensions
	if hasBox {
		dims = box.Dimensions()
	}
	p.Length, p.Width, p.Height = dims.Length, dims.Width, dims.Height
	p.BoxID = boxTypeID
	p.ServiceID = ""

	next := s.Clone()
	next.put(p)
	next.Saved = false
	return next, true
}

// Move target sentinels accepted by MoveItem in place of a package ID.
const (
	TargetNew        = "new"
	TargetIndividual = "individual"
)

// MoveResult describes the outcome of a successful MoveItem.
type MoveResult struct {
	// AddedPackageID is the ID of the package created for the item, if any.
	AddedPackageID string
	// OriginRemoved is true when the move emptied, and so deleted, the origin.
	OriginRemoved bool
}

// MoveItem moves the item at index of the origin package to target, which is
// an existing package ID, TargetNew or TargetIndividual.
//
// TargetNew creates an unboxed zero-dimension package weighing as much as the
// item; TargetIndividual creates a package shaped exactly like the item.
//
// The move is a no-op when index is -1, origin is empty, origin equals target,
// origin or an existing-package target is unknown, or index is out of range.
func (s Set) MoveItem(originID string, index int, targetID string) (Set, MoveResult, bool) {
	if index == -1 || originID == "" || originID == targetID {
		return s, MoveResult{}, false
	}

	origin, ok := s.Get(originID)
	if !ok || index < 0 || index >= len(origin.Items) {
		return s, MoveResult{}, false
	}
	if targetID != TargetNew && targetID != TargetIndividual && !s.Has(targetID) {
		return s, MoveResult{}, false
	}

	next := s.Clone()
	item := origin.Items[index]
	origin.Items = slices.Delete(origin.Items, index, index+1)
	origin.Weight = kernel.SubWeight(origin.Weight, item.Weight)
	next.put(origin)

	var result MoveResult
	switch targetID {
	case TargetIndividual:
		result.AddedPackageID = GenerateUniqueBoxID(IndividualPackagePrefix, next.order)
		next.put(Package{
			ID:     result.AddedPackageID,
			BoxID:  BoxIndividual,
			Height: item.Height,
			Length: item.Length,
			Width:  item.Width,
			Weight: item.Weight,
			Items:  []Item{item},
		})
	case TargetNew:
		result.AddedPackageID = GenerateUniqueBoxID(CustomPackagePrefix, next.order)
		next.put(Package{
			ID:     result.AddedPackageID,
			BoxID:  BoxNotSelected,
			Weight: item.Weight,
			Items:  []Item{item},
		})
	default:
		target := next.byID[targetID]
		target.Items = append(target.Items, item)
		target.Weight = kernel.AddWeight(target.Weight, item.Weight)
		next.put(target)
	}

	if len(origin.Items) == 0 {
		next.remove(originID)
		result.OriginRemoved = true
	}

	next.Saved = false
	return next, result, true
}

// QueuedMove is one item move of a batch.
type QueuedMove struct {
	OriginID string
	Index    int
}

// PlanBatchMove flattens a queue of item indices per origin package into the
// order the moves must be applied in.
//
// Origins are visited in set order (unknown origins last, by ID). Within an
// origin, indices are de-duplicated and applied in descending order: removing
// a lower index first would shift every higher, still queued index.
func (s Set) PlanBatchMove(queue map[string][]int) []QueuedMove {
	origins := make([]string, 0, len(queue))
	for _, id := range s.order {
		if _, ok := queue[id]; ok {
			origins = append(origins, id)
		}
	}
	var unknown []string
	for id := range queue {
		if !s.Has(id) {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	origins = append(origins, unknown...)

	var moves []QueuedMove
	for _, originID := range origins {
		indices := slices.Clone(queue[originID])
		slices.Sort(indices)
		indices = slices.Compact(indices)
		slices.Reverse(indices)
		for _, index := range indices {
			moves = append(moves, QueuedMove{OriginID: originID, Index: index})
		}
	}
	return moves
}

type setJSON struct {
	Selected json.RawMessage `json:"selected"`
	Saved    bool            `json:"saved"`
	IsPacked bool            `json:"isPacked"`
	Expanded bool            `json:"expanded"`
}

// MarshalJSON encodes the set with "selected" as a JSON object whose keys
// appear in package order.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return json.Marshal(setJSON{
		Selected: buf.Bytes(),
		Saved:    s.Saved,
		IsPacked: s.IsPacked,
		Expanded: s.Expanded,
	})
}

// UnmarshalJSON decodes a set, keeping the key order of "selected".
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw setJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	next := Set{Saved: raw.Saved, IsPacked: raw.IsPacked, Expanded: raw.Expanded}
	if len(raw.Selected) > 0 && !bytes.Equal(raw.Selected, []byte("null")) {
		pkgs, err := decodeOrderedPackages(raw.Selected)
		if err != nil {
			return err
		}
		for _, p := range pkgs {
			next.put(p.Clone())
		}
	}

	*s = next
	return nil
}

// decodeOrderedPackages reads a JSON object of packages in key order. A
// package without an "id" takes its key as ID.
func decodeOrderedPackages(data []byte) ([]Package, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("selected packages: expected object, got %v", tok)
	}

	var pkgs []Package
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return nil, keyErr
		}
		key, _ := keyTok.(string)

		var p Package
		if err = dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("selected packages: package %q: %w", key, err)
		}
		if p.ID == "" {
			p.ID = key
		}
		pkgs = append(pkgs, p)
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	return pkgs, nil
}
