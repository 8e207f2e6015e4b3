package action

import (
	"shippinglabel/internal/core/domain/model/address"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/model/packaging"
	"shippinglabel/internal/core/domain/model/rate"
)

// Action is a discrete event applied to an order's label state.
type Action interface {
	Type() Type
	sealed()
}

// Init replaces the order's state with one built from server data.
type Init struct {
	Params labelstate.InitParams `json:"params"`
}

type SetIsFetching struct {
	IsFetching bool `json:"isFetching"`
}

type SetFetchError struct {
	Error string `json:"error"`
}

// OpenPrintingFlow opens the purchase dialog.
type OpenPrintingFlow struct{}

// ExitPrintingFlow closes the purchase dialog. Without Force it is ignored
// while a purchase is being submitted.
type ExitPrintingFlow struct {
	Force bool `json:"force"`
}

type ToggleStep struct {
	Step labelstate.Step `json:"step"`
}

type UpdateAddressValue struct {
	Group address.Role `json:"group"`
	Name  string       `json:"name"`
	Value string       `json:"value"`
}

type RemoveIgnoreValidation struct {
	Group address.Role `json:"group"`
}

type AddressNormalizationInProgress struct {
	Group address.Role `json:"group"`
}

// SetNormalizedAddress delivers the normalization service's suggestion.
type SetNormalizedAddress struct {
	Group                  address.Role   `json:"group"`
	Normalized             address.Values `json:"normalized"`
	IsTrivialNormalization bool           `json:"isTrivialNormalization"`
}

type AddressNormalizationCompleted struct {
	Group address.Role `json:"group"`
}

type SelectNormalizedAddress struct {
	Group            address.Role `json:"group"`
	SelectNormalized bool         `json:"selectNormalized"`
}

type EditAddress struct {
	Group address.Role `json:"group"`
}

type ConfirmAddressSuggestion struct {
	Group address.Role `json:"group"`
}

// UpdatePackageWeight carries the weight text typed by the user.
type UpdatePackageWeight struct {
	PackageID string `json:"packageId"`
	Value     string `json:"value"`
}

type OpenPackage struct {
	OpenedPackageID string `json:"openedPackageId"`
}

type OpenItemMove struct {
	MovedItemIndex int `json:"movedItemIndex"`
}

// MoveItem moves one item between packages. TargetPackageID may be
// packaging.TargetNew or packaging.TargetIndividual.
type MoveItem struct {
	OriginPackageID string `json:"originPackageId"`
	MovedItemIndex  int    `json:"movedItemIndex"`
	TargetPackageID string `json:"targetPackageId"`
}

type CloseItemMove struct{}

type SetTargetPackage struct {
	TargetPackageID string `json:"targetPackageId"`
}

type OpenAddItem struct{}

type CloseAddItem struct{}

// SetAddedItem queues (Added) or unqueues an item for AddItems.
type SetAddedItem struct {
	SourcePackageID string `json:"sourcePackageId"`
	MovedItemIndex  int    `json:"movedItemIndex"`
	Added           bool   `json:"added"`
}

// AddItems moves every queued item into TargetPackageID.
type AddItems struct {
	TargetPackageID string `json:"targetPackageId"`
}

type AddPackage struct{}

type RemovePackage struct {
	PackageID string `json:"packageId"`
}

// SetPackageType puts a package into a box. Box is the profile of
// BoxTypeID, or nil when BoxTypeID is packaging.BoxNotSelected.
type SetPackageType struct {
	PackageID string         `json:"packageId"`
	BoxTypeID string         `json:"boxTypeId"`
	Box       *packaging.Box `json:"box"`
}

type SavePackages struct{}

type UpdateRate struct {
	PackageID string `json:"packageId"`
	Value     string `json:"value"`
}

type UpdatePaperSize struct {
	Value string `json:"value"`
}

type SetEmailDetails struct {
	Value bool `json:"value"`
}

type SetFulfillOrder struct {
	Value bool `json:"value"`
}

type PurchaseRequest struct{}

// PurchaseResponse carries the labels bought, most recent first.
type PurchaseResponse struct {
	Response []label.Record `json:"response"`
	Err      error          `json:"-"`
}

type ShowPrintConfirmation struct {
	FileData string `json:"fileData"`
}

type RatesRetrievalInProgress struct{}

// SetRates carries the quotes fetched per package ID.
type SetRates struct {
	Rates map[string]rate.PackageRates `json:"rates"`
}

type RatesRetrievalCompleted struct{}

type ClearAvailableRates struct{}

type OpenRefundDialog struct {
	LabelID string `json:"labelId"`
}

type CloseRefundDialog struct{}

type RefundRequest struct{}

// RefundResponse answers the refund of the label the refund dialog is
// open for.
type RefundResponse struct {
	Response label.Refund `json:"response"`
	Err      error        `json:"-"`
}

type StatusResponse struct {
	LabelID  string             `json:"labelId"`
	Response label.StatusUpdate `json:"response"`
	Err      error              `json:"-"`
}

type OpenReprintDialog struct {
	LabelID string `json:"labelId"`
}

// ReprintDialogReady delivers the reprint file for LabelID. It may arrive
// after the dialog moved on to another label.
type ReprintDialogReady struct {
	LabelID  string `json:"labelId"`
	FileData string `json:"fileData"`
}

type CloseReprintDialog struct{}

type ConfirmReprint struct{}

type OpenDetailsDialog struct {
	LabelID string `json:"labelId"`
}

type CloseDetailsDialog struct{}

func (Init) Type() Type { return TypeInit }
func (Init) sealed() {}

func (SetIsFetching) Type() Type { return TypeSetIsFetching }
func (SetIsFetching) sealed() {}

func (SetFetchError) Type() Type { return TypeSetFetchError }
func (SetFetchError) sealed() {}

func (OpenPrintingFlow) Type() Type { return TypeOpenPrintingFlow }
func (OpenPrintingFlow) sealed() {}

func (ExitPrintingFlow) Type() Type { return TypeExitPrintingFlow }
func (ExitPrintingFlow) sealed() {}

func (ToggleStep) Type() Type { return TypeToggleStep }
func (ToggleStep) sealed() {}

func (UpdateAddressValue) Type() Type { return TypeUpdateAddressValue }
func (UpdateAddressValue) sealed() {}

func (RemoveIgnoreValidation) Type() Type { return TypeRemoveIgnoreValidation }
func (RemoveIgnoreValidation) sealed() {}

func (AddressNormalizationInProgress) Type() Type { return TypeAddressNormalizationInProgress }
func (AddressNormalizationInProgress) sealed() {}

func (SetNormalizedAddress) Type() Type { return TypeSetNormalizedAddress }
func (SetNormalizedAddress) sealed() {}

func (AddressNormalizationCompleted) Type() Type { return TypeAddressNormalizationCompleted }
func (AddressNormalizationCompleted) sealed() {}

func (SelectNormalizedAddress) Type() Type { return TypeSelectNormalizedAddress }
func (SelectNormalizedAddress) sealed() {}

func (EditAddress) Type() Type { return TypeEditAddress }
func (EditAddress) sealed() {}

func (ConfirmAddressSuggestion) Type() Type { return TypeConfirmAddressSuggestion }
func (ConfirmAddressSuggestion) sealed() {}

func (UpdatePackageWeight) Type() Type { return TypeUpdatePackageWeight }
func (UpdatePackageWeight) sealed() {}

func (OpenPackage) Type() Type { return TypeOpenPackage }
func (OpenPackage) sealed() {}

func (OpenItemMove) Type() Type { return TypeOpenItemMove }
func (OpenItemMove) sealed() {}

func (MoveItem) Type() Type { return TypeMoveItem }
func (MoveItem) sealed() {}

func (CloseItemMove) Type() Type { return TypeCloseItemMove }
func (CloseItemMove) sealed() {}

func (SetTargetPackage) Type() Type { return TypeSetTargetPackage }
func (SetTargetPackage) sealed() {}

func (OpenAddItem) Type() Type { return TypeOpenAddItem }
func (OpenAddItem) sealed() {}

func (CloseAddItem) Type() Type { return TypeCloseAddItem }
func (CloseAddItem) sealed() {}

func (SetAddedItem) Type() Type { return TypeSetAddedItem }
func (SetAddedItem) sealed() {}

func (AddItems) Type() Type { return TypeAddItems }
func (AddItems) sealed() {}

func (AddPackage) Type() Type { return TypeAddPackage }
func (AddPackage) sealed() {}

func (RemovePackage) Type() Type { return TypeRemovePackage }
func (RemovePackage) sealed() {}

func (SetPackageType) Type() Type { return TypeSetPackageType }
func (SetPackageType) sealed() {}

func (SavePackages) Type() Type { return TypeSavePackages }
func (SavePackages) sealed() {}

func (UpdateRate) Type() Type { return TypeUpdateRate }
func (UpdateRate) sealed() {}

func (UpdatePaperSize) Type() Type { return TypeUpdatePaperSize }
func (UpdatePaperSize) sealed() {}

func (SetEmailDetails) Type() Type { return TypeSetEmailDetails }
func (SetEmailDetails) sealed() {}

func (SetFulfillOrder) Type() Type { return TypeSetFulfillOrder }
func (SetFulfillOrder) sealed() {}

func (PurchaseRequest) Type() Type { return TypePurchaseRequest }
func (PurchaseRequest) sealed() {}

func (PurchaseResponse) Type() Type { return TypePurchaseResponse }
func (PurchaseResponse) sealed() {}

func (ShowPrintConfirmation) Type() Type { return TypeShowPrintConfirmation }
func (ShowPrintConfirmation) sealed() {}

func (RatesRetrievalInProgress) Type() Type { return TypeRatesRetrievalInProgress }
func (RatesRetrievalInProgress) sealed() {}

func (SetRates) Type() Type { return TypeSetRates }
func (SetRates) sealed() {}

func (RatesRetrievalCompleted) Type() Type { return TypeRatesRetrievalCompleted }
func (RatesRetrievalCompleted) sealed() {}

func (ClearAvailableRates) Type() Type { return TypeClearAvailableRates }
func (ClearAvailableRates) sealed() {}

func (OpenRefundDialog) Type() Type { return TypeOpenRefundDialog }
func (OpenRefundDialog) sealed() {}

func (CloseRefundDialog) Type() Type { return TypeCloseRefundDialog }
func (CloseRefundDialog) sealed() {}

func (RefundRequest) Type() Type { return TypeRefundRequest }
func (RefundRequest) sealed() {}

func (RefundResponse) Type() Type { return TypeRefundResponse }
func (RefundResponse) sealed() {}

func (StatusResponse) Type() Type { return TypeStatusResponse }
func (StatusResponse) sealed() {}

func (OpenReprintDialog) Type() Type { return TypeOpenReprintDialog }
func (OpenReprintDialog) sealed() {}

func (ReprintDialogReady) Type() Type { return TypeReprintDialogReady }
func (ReprintDialogReady) sealed() {}

func (CloseReprintDialog) Type() Type { return TypeCloseReprintDialog }
func (CloseReprintDialog) sealed() {}

func (ConfirmReprint) Type() Type { return TypeConfirmReprint }
func (ConfirmReprint) sealed() {}

func (OpenDetailsDialog) Type() Type { return TypeOpenDetailsDialog }
func (OpenDetailsDialog) sealed() {}

func (CloseDetailsDialog) Type() Type { return TypeCloseDetailsDialog }
func (CloseDetailsDialog) sealed() {}
