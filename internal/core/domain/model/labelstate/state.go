package labelstate

import (
	"slices"

	"shippinglabel/internal/core/domain/model/address"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/packaging"
	"shippinglabel/internal/core/domain/model/rate"
)

// NoItem is the MovedItemIndex value when no item is being moved.
const NoItem = -1

// Step names a collapsible section of the label form.
type Step string

const (
	StepOrigin      Step = "origin"
	StepDestination Step = "destination"
	StepPackages    Step = "packages"
	StepRates       Step = "rates"
)

// IsValid reports whether s names a known form section.
func (s Step) IsValid() bool {
	switch s {
	case StepOrigin, StepDestination, StepPackages, StepRates:
		return true
	}
	return false
}

// StoreOptions are the store settings the form is rendered with.
type StoreOptions struct {
	CurrencySymbol string `json:"currency_symbol"`
	DimensionUnit  string `json:"dimension_unit"`
	WeightUnit     string `json:"weight_unit"`
	OriginCountry  string `json:"origin_country"`
}

// Form is the label purchase form.
type Form struct {
	Origin                 address.Group `json:"origin"`
	Destination            address.Group `json:"destination"`
	Packages               packaging.Set `json:"packages"`
	Rates                  rate.State    `json:"rates"`
	IsSubmitting           bool          `json:"isSubmitting"`
	NeedsPrintConfirmation bool          `json:"needsPrintConfirmation"`
	FileData               string        `json:"fileData,omitempty"`
}

// Clone returns a deep copy of f.
func (f Form) Clone() Form {
	f.Origin = f.Origin.Clone()
	f.Destination = f.Destination.Clone()
	f.Packages = f.Packages.Clone()
	f.Rates = f.Rates.Clone()
	return f
}

// Group returns the address group for role, or nil for an unknown role.
func (f *Form) Group(role address.Role) *address.Group {
	switch role {
	case address.Origin:
		return &f.Origin
	case address.Destination:
		return &f.Destination
	}
	return nil
}

// State is the shipping label workflow state of one order.
type State struct {
	IsFetching bool   `json:"isFetching"`
	Error      string `json:"error,omitempty"`
	Loaded     bool   `json:"loaded"`

	ShowPurchaseDialog bool   `json:"showPurchaseDialog"`
	OpenedPackageID    string `json:"openedPackageId"`
	AddedPackageID     string `json:"addedPackageId"`

	ShowItemMoveDialog bool   `json:"showItemMoveDialog"`
	MovedItemIndex     int    `json:"movedItemIndex"`
	TargetPackageID    string `json:"targetPackageId"`

	// AddedItems queues item indices per origin package for the add-item
	// dialog, in the order they were picked.
	ShowAddItemDialog bool             `json:"showAddItemDialog"`
	AddedItems        map[string][]int `json:"addedItems"`

	PaperSize    string `json:"paperSize"`
	EmailDetails bool   `json:"emailDetails"`
	FulfillOrder bool   `json:"fulfillOrder"`

	Labels               []label.Record       `json:"labels"`
	RefundDialog         *label.RefundDialog  `json:"refundDialog"`
	ReprintDialog        *label.ReprintDialog `json:"reprintDialog"`
	DetailsDialog        *label.DetailsDialog `json:"detailsDialog"`
	RefreshedLabelStatus bool                 `json:"refreshedLabelStatus"`

	StoreOptions      StoreOptions `json:"storeOptions"`
	PaymentMethod     string       `json:"paymentMethod,omitempty"`
	NumPaymentMethods int          `json:"numPaymentMethods"`
	Enabled           bool         `json:"enabled"`

	Form Form `json:"form"`
}

// Empty returns the state of an order nothing is known about yet.
func Empty() *State {
	return &State{
		MovedItemIndex: NoItem,
		AddedItems:     map[string][]int{},
		Labels:         []label.Record{},
		Form: Form{
			Origin:      address.NewGroup(address.Values{}),
			Destination: address.NewGroup(address.Values{}),
			Rates:       rate.NewState(nil),
		},
	}
}

// Clone returns a deep copy of s. Cloning nil yields nil.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	next := *s
	if s.AddedItems != nil {
		next.AddedItems = make(map[string][]int, len(s.AddedItems))
		for id, indices := range s.AddedItems {
			next.AddedItems[id] = slices.Clone(indices)
		}
	}
	next.Labels = label.CloneAll(s.Labels)
	if s.RefundDialog != nil {
		d := *s.RefundDialog
		next.RefundDialog = &d
	}
	if s.ReprintDialog != nil {
		d := *s.ReprintDialog
		next.ReprintDialog = &d
	}
	if s.DetailsDialog != nil {
		d := *s.DetailsDialog
		next.DetailsDialog = &d
	}
	next.Form = s.Form.Clone()
	return &next
}

// ChangedLabels returns the labels of next that are new or differ from the
// label with the same ID in prev. StatusUpdated is session state and does
// not count as a change.
func ChangedLabels(prev, next *State) []label.Record {
	if next == nil {
		return nil
	}

	known := make(map[string]label.Record)
	if prev != nil {
		for _, r := range prev.Labels {
			known[r.LabelID] = r
		}
	}

	var changed []label.Record
	for _, r := range next.Labels {
		old, ok := known[r.LabelID]
		if !ok || !sameRecord(old, r) {
			changed = append(changed, r.Clone())
		}
	}
	return changed
}

func sameRecord(a, b label.Record) bool {
	if !slices.Equal(a.ProductNames, b.ProductNames) {
		return false
	}
	if (a.Refund == nil) != (b.Refund == nil) || (a.Refund != nil && *a.Refund != *b.Refund) {
		return false
	}
	return a.LabelID == b.LabelID &&
		a.CarrierID == b.CarrierID &&
		a.ServiceName == b.ServiceName &&
		a.PackageName == b.PackageName &&
		a.Tracking == b.Tracking &&
		a.Rate == b.Rate &&
		a.Currency == b.Currency &&
		a.Status == b.Status &&
		a.CreatedDate == b.CreatedDate &&
		a.RefundableAmount == b.RefundableAmount
}

// QueuedItems returns a copy of the add-item queue.
func (s *State) QueuedItems() map[string][]int {
	out := make(map[string][]int, len(s.AddedItems))
	for id, indices := range s.AddedItems {
		out[id] = slices.Clone(indices)
	}
	return out
}

// PackageIDs lists the IDs of the form's packages in order.
func (s *State) PackageIDs() []string {
	return s.Form.Packages.IDs()
}
