package packaging

import (
	"slices"

	"shippinglabel/internal/core/domain/model/kernel"
)

// Box type sentinels stored in Package.BoxID.
const (
	BoxNotSelected = "not_selected"
	BoxIndividual  = "individual"
)

// Item is one shippable unit of an order line.
type Item struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Height    float64 `json:"height"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Weight    float64 `json:"weight"`
}

// Package is a physical shipping container holding zero or more items.
//
// ServiceID carries a rate selection over from the server-supplied form data;
// it is dropped whenever the package's physical profile changes.
type Package struct {
	ID                    string  `json:"id"`
	BoxID                 string  `json:"box_id"`
	Height                float64 `json:"height"`
	Length                float64 `json:"length"`
	Width                 float64 `json:"width"`
	Weight                float64 `json:"weight"`
	IsUserSpecifiedWeight bool    `json:"isUserSpecifiedWeight,omitempty"`
	ServiceID             string  `json:"service_id,omitempty"`
	Items                 []Item  `json:"items"`
}

// Clone returns a copy of p that shares no item storage with it.
func (p Package) Clone() Package {
	p.Items = slices.Clone(p.Items)
	if p.Items == nil {
		p.Items = []Item{}
	}
	return p
}

// ItemsWeight is the rounded sum of the weights of p's items.
func (p Package) ItemsWeight() float64 {
	return itemsWeight(p.Items)
}

func itemsWeight(items []Item) float64 {
	weights := make([]float64, len(items))
	for i, item := range items {
		weights[i] = item.Weight
	}
	return kernel.SumWeights(weights...)
}

// Box is a predefined container profile a package can be set to.
//
// Dimensions come from OuterDimensions when present, then InnerDimensions
// (both "L x W x H" strings), then the explicit Length/Width/Height fields.
type Box struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BoxWeight       float64 `json:"box_weight"`
	OuterDimensions string  `json:"outer_dimensions,omitempty"`
	InnerDimensions string  `json:"inner_dimensions,omitempty"`
	Length          float64 `json:"length,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Height          float64 `json:"height,omitempty"`
	IsLetter        bool    `json:"is_letter,omitempty"`
}

// Dimensions returns the box's external size.
func (b Box) Dimensions() kernel.Dimensions {
	switch {
	case b.OuterDimensions != "":
		return kernel.ParseDimensions(b.OuterDimensions)
	case b.InnerDimensions != "":
		return kernel.ParseDimensions(b.InnerDimensions)
	default:
		return kernel.Dimensions{Length: b.Length, Width: b.Width, Height: b.Height}
	}
}
