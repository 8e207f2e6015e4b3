package label

// RefundDialog is open while the user reviews or submits a refund.
type RefundDialog struct {
	LabelID      string `json:"labelId"`
	IsSubmitting bool   `json:"isSubmitting"`
}

// ReprintDialog is open while the reprint file is fetched or shown.
type ReprintDialog struct {
	LabelID    string `json:"labelId"`
	IsFetching bool   `json:"isFetching"`
	FileData   string `json:"fileData,omitempty"`
}

// DetailsDialog shows the details of one label.
type DetailsDialog struct {
	LabelID string `json:"labelId"`
}

// OpenReprint starts fetching the reprint file of a label.
func OpenReprint(labelID string) *ReprintDialog {
	return &ReprintDialog{LabelID: labelID, IsFetching: true}
}

// Ready returns the dialog with the fetched file. It reports false when the
// dialog is closed or open for another label, in which case the file is
// stale and must be dropped.
func (d *ReprintDialog) Ready(labelID, fileData string) (*ReprintDialog, bool) {
	if d == nil || d.LabelID != labelID {
		return d, false
	}
	return &ReprintDialog{LabelID: labelID, FileData: fileData}, true
}
