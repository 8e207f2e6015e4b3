package action

import (
	"fmt"
)

// Type identifies an action on the wire.
type Type int

const (
	TypeUnknown Type = iota
	TypeInit
	TypeSetIsFetching
	TypeSetFetchError
	TypeOpenPrintingFlow
	TypeExitPrintingFlow
	TypeToggleStep
	TypeUpdateAddressValue
	TypeRemoveIgnoreValidation
	TypeAddressNormalizationInProgress
	TypeSetNormalizedAddress
	TypeAddressNormalizationCompleted
	TypeSelectNormalizedAddress
	TypeEditAddress
	TypeConfirmAddressSuggestion
	TypeUpdatePackageWeight
	TypeOpenPackage
	TypeOpenItemMove
	TypeMoveItem
	TypeCloseItemMove
	TypeSetTargetPackage
	TypeOpenAddItem
	TypeCloseAddItem
	TypeSetAddedItem
	TypeAddItems
	TypeAddPackage
	TypeRemovePackage
	TypeSetPackageType
	TypeSavePackages
	TypeUpdateRate
	TypeUpdatePaperSize
	TypeSetEmailDetails
	TypeSetFulfillOrder
	TypePurchaseRequest
	TypePurchaseResponse
	TypeShowPrintConfirmation
	TypeRatesRetrievalInProgress
	TypeSetRates
	TypeRatesRetrievalCompleted
	TypeClearAvailableRates
	TypeOpenRefundDialog
	TypeCloseRefundDialog
	TypeRefundRequest
	TypeRefundResponse
	TypeStatusResponse
	TypeOpenReprintDialog
	TypeReprintDialogReady
	TypeCloseReprintDialog
	TypeConfirmReprint
	TypeOpenDetailsDialog
	TypeCloseDetailsDialog
)

var typeNames = map[Type]string{
	TypeInit:                           "init",
	TypeSetIsFetching:                  "setIsFetching",
	TypeSetFetchError:                  "setFetchError",
	TypeOpenPrintingFlow:               "openPrintingFlow",
	TypeExitPrintingFlow:               "exitPrintingFlow",
	TypeToggleStep:                     "toggleStep",
	TypeUpdateAddressValue:             "updateAddressValue",
	TypeRemoveIgnoreValidation:         "removeIgnoreValidation",
	TypeAddressNormalizationInProgress: "addressNormalizationInProgress",
	TypeSetNormalizedAddress:           "setNormalizedAddress",
	TypeAddressNormalizationCompleted:  "addressNormalizationCompleted",
	TypeSelectNormalizedAddress:        "selectNormalizedAddress",
	TypeEditAddress:                    "editAddress",
	TypeConfirmAddressSuggestion:       "confirmAddressSuggestion",
	TypeUpdatePackageWeight:            "updatePackageWeight",
	TypeOpenPackage:                    "openPackage",
	TypeOpenItemMove:                   "openItemMove",
	TypeMoveItem:                       "moveItem",
	TypeCloseItemMove:                  "closeItemMove",
	TypeSetTargetPackage:               "setTargetPackage",
	TypeOpenAddItem:                    "openAddItem",
	TypeCloseAddItem:                   "closeAddItem",
	TypeSetAddedItem:                   "setAddedItem",
	TypeAddItems:                       "addItems",
	TypeAddPackage:                     "addPackage",
	TypeRemovePackage:                  "removePackage",
	TypeSetPackageType:                 "setPackageType",
	TypeSavePackages:                   "savePackages",
	TypeUpdateRate:                     "updateRate",
	TypeUpdatePaperSize:                "updatePaperSize",
	TypeSetEmailDetails:                "setEmailDetails",
	TypeSetFulfillOrder:                "setFulfillOrder",
	TypePurchaseRequest:                "purchaseRequest",
	TypePurchaseResponse:               "purchaseResponse",
	TypeShowPrintConfirmation:          "showPrintConfirmation",
	TypeRatesRetrievalInProgress:       "ratesRetrievalInProgress",
	TypeSetRates:                       "setRates",
	TypeRatesRetrievalCompleted:        "ratesRetrievalCompleted",
	TypeClearAvailableRates:            "clearAvailableRates",
	TypeOpenRefundDialog:               "openRefundDialog",
	TypeCloseRefundDialog:              "closeRefundDialog",
	TypeRefundRequest:                  "refundRequest",
	TypeRefundResponse:                 "refundResponse",
	TypeStatusResponse:                 "statusResponse",
	TypeOpenReprintDialog:              "openReprintDialog",
	TypeReprintDialogReady:             "reprintDialogReady",
	TypeCloseReprintDialog:             "closeReprintDialog",
	TypeConfirmReprint:                 "confirmReprint",
	TypeOpenDetailsDialog:              "openDetailsDialog",
	TypeCloseDetailsDialog:             "closeDetailsDialog",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// String returns the wire name of t.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType returns the type with the given wire name.
func ParseType(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// Types returns every known type in declaration order.
func Types() []Type {
	out := make([]Type, 0, len(typeNames))
	for t := TypeInit; t <= TypeCloseDetailsDialog; t++ {
		out = append(out, t)
	}
	return out
}
