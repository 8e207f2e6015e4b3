package labelstate

import (
	"cmp"
	"slices"

	"shippinglabel/internal/core/domain/model/address"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/packaging"
	"shippinglabel/internal/core/domain/model/rate"
)

// FormData is the server-supplied snapshot the label form starts from.
type FormData struct {
	Origin                address.Values      `json:"origin"`
	OriginNormalized      bool                `json:"origin_normalized"`
	Destination           address.Values      `json:"destination"`
	DestinationNormalized bool                `json:"destination_normalized"`
	SelectedPackages      []packaging.Package `json:"selected_packages"`
	IsPacked              bool                `json:"is_packed"`
}

// InitParams carries everything an Initializer needs to build an order's
// state.
type InitParams struct {
	FormData          *FormData      `json:"formData"`
	LabelsData        []label.Record `json:"labelsData"`
	PaperSize         string         `json:"paperSize"`
	StoreOptions      StoreOptions   `json:"storeOptions"`
	PaymentMethod     string         `json:"paymentMethod"`
	NumPaymentMethods int            `json:"numPaymentMethods"`
	Enabled           bool           `json:"enabled"`
}

// Initializer builds the initial state of an order from server data.
type Initializer interface {
	Initialize(params InitParams) *State
}

// DefaultInitializer is the stock Initializer.
//
// Without form data it yields Empty(). Otherwise address groups start
// expanded unless the server already normalized them, the package set starts
// saved, every package has an empty rate selection, and labels are ordered
// most-recent-first.
type DefaultInitializer struct{}

var _ Initializer = DefaultInitializer{}

// Initialize implements Initializer.
func (DefaultInitializer) Initialize(params InitParams) *State {
	if params.FormData == nil {
		return Empty()
	}
	fd := params.FormData

	packages := packaging.NewSet(fd.SelectedPackages...).WithSaved(true)
	packages.IsPacked = fd.IsPacked
	packages.Expanded = true

	rates := rate.NewState(packages.IDs())
	rates.Expanded = true

	labels := label.CloneAll(params.LabelsData)
	if labels == nil {
		labels = []label.Record{}
	}
	slices.SortStableFunc(labels, func(a, b label.Record) int {
		return cmp.Compare(b.CreatedDate, a.CreatedDate)
	})

	return &State{
		Loaded:            true,
		MovedItemIndex:    NoItem,
		AddedItems:        map[string][]int{},
		PaperSize:         params.PaperSize,
		EmailDetails:      true,
		FulfillOrder:      true,
		Labels:            labels,
		StoreOptions:      params.StoreOptions,
		PaymentMethod:     params.PaymentMethod,
		NumPaymentMethods: params.NumPaymentMethods,
		Enabled:           params.Enabled,
		Form: Form{
			Origin:      initialGroup(fd.Origin, fd.OriginNormalized),
			Destination: initialGroup(fd.Destination, fd.DestinationNormalized),
			Packages:    packages,
			Rates:       rates,
		},
	}
}

func initialGroup(values address.Values, normalized bool) address.Group {
	g := address.NewGroup(values)
	if normalized {
		g.IsNormalized = true
		g.Normalized = g.Values.Clone()
		g.Expanded = false
	}
	return g
}
