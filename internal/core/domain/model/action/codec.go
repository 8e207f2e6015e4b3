package action

import (
	"encoding/json"
	"errors"
	"fmt"

	"shippinglabel/internal/pkg/errs"
)

// ErrUnknownType is returned by Decode for a type name outside the action
// vocabulary.
var ErrUnknownType = errors.New("unknown action type")

// envelope is the wire form of an action: its camelCase type name next to
// the action's own fields.
type envelope struct {
	Type string `json:"type"`
}

// wireError is how response actions report a failed call on the wire.
type wireError struct {
	Error string `json:"error,omitempty"`
}

// RemoteError is the error carried by a response action decoded from the
// wire.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

var decoders = map[Type]func(data []byte) (Action, error){
	TypeInit:                           decodeAs[Init],
	TypeSetIsFetching:                  decodeAs[SetIsFetching],
	TypeSetFetchError:                  decodeAs[SetFetchError],
	TypeOpenPrintingFlow:               decodeAs[OpenPrintingFlow],
	TypeExitPrintingFlow:               decodeAs[ExitPrintingFlow],
	TypeToggleStep:                     decodeAs[ToggleStep],
	TypeUpdateAddressValue:             decodeAs[UpdateAddressValue],
	TypeRemoveIgnoreValidation:         decodeAs[RemoveIgnoreValidation],
	TypeAddressNormalizationInProgress: decodeAs[AddressNormalizationInProgress],
	TypeSetNormalizedAddress:           decodeAs[SetNormalizedAddress],
	TypeAddressNormalizationCompleted:  decodeAs[AddressNormalizationCompleted],
	TypeSelectNormalizedAddress:        decodeAs[SelectNormalizedAddress],
	TypeEditAddress:                    decodeAs[EditAddress],
	TypeConfirmAddressSuggestion:       decodeAs[ConfirmAddressSuggestion],
	TypeUpdatePackageWeight:            decodeAs[UpdatePackageWeight],
	TypeOpenPackage:                    decodeAs[OpenPackage],
	TypeOpenItemMove:                   decodeAs[OpenItemMove],
	TypeMoveItem:                       decodeAs[MoveItem],
	TypeCloseItemMove:                  decodeAs[CloseItemMove],
	TypeSetTargetPackage:               decodeAs[SetTargetPackage],
	TypeOpenAddItem:                    decodeAs[OpenAddItem],
	TypeCloseAddItem:                   decodeAs[CloseAddItem],
	TypeSetAddedItem:                   decodeAs[SetAddedItem],
	TypeAddItems:                       decodeAs[AddItems],
	TypeAddPackage:                     decodeAs[AddPackage],
	TypeRemovePackage:                  decodeAs[RemovePackage],
	TypeSetPackageType:                 decodeAs[SetPackageType],
	TypeSavePackages:                   decodeAs[SavePackages],
	TypeUpdateRate:                     decodeAs[UpdateRate],
	TypeUpdatePaperSize:                decodeAs[UpdatePaperSize],
	TypeSetEmailDetails:                decodeAs[SetEmailDetails],
	TypeSetFulfillOrder:                decodeAs[SetFulfillOrder],
	TypePurchaseRequest:                decodeAs[PurchaseRequest],
	TypePurchaseResponse:               decodePurchaseResponse,
	TypeShowPrintConfirmation:          decodeAs[ShowPrintConfirmation],
	TypeRatesRetrievalInProgress:       decodeAs[RatesRetrievalInProgress],
	TypeSetRates:                       decodeAs[SetRates],
	TypeRatesRetrievalCompleted:        decodeAs[RatesRetrievalCompleted],
	TypeClearAvailableRates:            decodeAs[ClearAvailableRates],
	TypeOpenRefundDialog:               decodeAs[OpenRefundDialog],
	TypeCloseRefundDialog:              decodeAs[CloseRefundDialog],
	TypeRefundRequest:                  decodeAs[RefundRequest],
	TypeRefundResponse:                 decodeRefundResponse,
	TypeStatusResponse:                 decodeStatusResponse,
	TypeOpenReprintDialog:              decodeAs[OpenReprintDialog],
	TypeReprintDialogReady:             decodeAs[ReprintDialogReady],
	TypeCloseReprintDialog:             decodeAs[CloseReprintDialog],
	TypeConfirmReprint:                 decodeAs[ConfirmReprint],
	TypeOpenDetailsDialog:              decodeAs[OpenDetailsDialog],
	TypeCloseDetailsDialog:             decodeAs[CloseDetailsDialog],
}

// Decode reads one action from its wire form, a JSON object whose "type"
// member names the action and whose other members are its fields. Response
// actions report a failed call with an "error" message.
//
// Example:
//
//	a, err := action.Decode([]byte(`{"type":"moveItem","originPackageId":"box_1","movedItemIndex":0,"targetPackageId":"new"}`))
func Decode(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("action", err)
	}
	if env.Type == "" {
		return nil, errs.NewValueIsRequiredError("type")
	}

	t, ok := ParseType(env.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}

	a, err := decoders[t](data)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(env.Type, err)
	}
	return a, nil
}

func decodeAs[A Action](data []byte) (Action, error) {
	var a A
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeWireError(data []byte) (error, error) {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Error == "" {
		return nil, nil
	}
	return &RemoteError{Message: w.Error}, nil
}

func decodePurchaseResponse(data []byte) (Action, error) {
	a, err := decodeAs[PurchaseResponse](data)
	if err != nil {
		return nil, err
	}
	resp := a.(PurchaseResponse)
	if resp.Err, err = decodeWireError(data); err != nil {
		return nil, err
	}
	return resp, nil
}

func decodeRefundResponse(data []byte) (Action, error) {
	a, err := decodeAs[RefundResponse](data)
	if err != nil {
		return nil, err
	}
	resp := a.(RefundResponse)
	if resp.Err, err = decodeWireError(data); err != nil {
		return nil, err
	}
	return resp, nil
}

func decodeStatusResponse(data []byte) (Action, error) {
	a, err := decodeAs[StatusResponse](data)
	if err != nil {
		return nil, err
	}
	resp := a.(StatusResponse)
	if resp.Err, err = decodeWireError(data); err != nil {
		return nil, err
	}
	return resp, nil
}
