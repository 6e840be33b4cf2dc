package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/jobpdf/internal/model"
)

// RecordRow represents one produced PDF in the list.
// Tap selects, double tap opens, secondary tap shows the context menu.
type RecordRow struct {
	widget.BaseWidget

	record       *model.DownloadRecord
	localization *Localization
	selected     bool

	// UI components
	titleLabel *widget.Label
	infoLabel  *widget.Label
	menuBtn    *widget.Button

	// Callbacks
	onSelect func(recordID string)
	onOpen   func(recordID string)
	onMenu   func(recordID string, pos fyne.Position)
}

// NewRecordRow creates a new record row widget
func NewRecordRow(record *model.DownloadRecord, localization *Localization) *RecordRow {
	rr := &RecordRow{
		record:       record,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromRecord()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *RecordRow) SetCallbacks(
	onSelect func(recordID string),
	onOpen func(recordID string),
	onMenu func(recordID string, pos fyne.Position),
) {
	rr.onSelect = onSelect
	rr.onOpen = onOpen
	rr.onMenu = onMenu
}

// SetRecord rebinds the row to another record (list item reuse)
func (rr *RecordRow) SetRecord(record *model.DownloadRecord, selected bool) {
	rr.record = record
	rr.selected = selected
	rr.updateFromRecord()
	rr.Refresh()
}

// Record returns the record shown by the row
func (rr *RecordRow) Record() *model.DownloadRecord {
	return rr.record
}

// createUI creates the row components
func (rr *RecordRow) createUI() {
	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	rr.infoLabel = widget.NewLabel("")
	rr.infoLabel.Importance = widget.LowImportance

	rr.menuBtn = widget.NewButton(IconMenu, func() {
		if rr.record == nil || rr.onMenu == nil {
			return
		}
		pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(rr.menuBtn)
		rr.onMenu(rr.record.ID, pos.Add(fyne.NewPos(0, rr.menuBtn.Size().Height)))
	})
	rr.menuBtn.Importance = widget.LowImportance
}

// updateFromRecord copies record fields into the labels
func (rr *RecordRow) updateFromRecord() {
	if rr.record == nil {
		rr.titleLabel.SetText(DashPlaceholder)
		rr.infoLabel.SetText("")
		return
	}

	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: rr.selected}
	rr.titleLabel.SetText(IconFile + " " + rr.record.FileName())

	info := rr.record.GetSizeString()
	if bucket := rr.record.Bucket(); bucket != "" {
		info = bucket + MiddleDotSeparator + info
	}
	if !rr.record.CreatedAt.IsZero() {
		info += MiddleDotSeparator + rr.record.CreatedAt.Format(CreatedTimeLayout)
	}
	rr.infoLabel.SetText(info)
}

// Tapped selects the record
func (rr *RecordRow) Tapped(_ *fyne.PointEvent) {
	if rr.record != nil && rr.onSelect != nil {
		rr.onSelect(rr.record.ID)
	}
}

// DoubleTapped opens the record's file
func (rr *RecordRow) DoubleTapped(_ *fyne.PointEvent) {
	if rr.record == nil {
		return
	}
	if rr.onSelect != nil {
		rr.onSelect(rr.record.ID)
	}
	if rr.onOpen != nil {
		log.Printf("Open requested by double tap: ID=%s", rr.record.ID)
		rr.onOpen(rr.record.ID)
	}
}

// TappedSecondary selects the record and shows the context menu at the pointer
func (rr *RecordRow) TappedSecondary(e *fyne.PointEvent) {
	if rr.record == nil {
		return
	}
	if rr.onSelect != nil {
		rr.onSelect(rr.record.ID)
	}
	if rr.onMenu != nil {
		rr.onMenu(rr.record.ID, e.AbsolutePosition)
	}
}

// CreateRenderer creates the widget renderer
func (rr *RecordRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(rr.titleLabel, rr.infoLabel)
	content := container.NewBorder(nil, widget.NewSeparator(), nil, rr.menuBtn, text)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in a narrow window
func (rr *RecordRow) MinSize() fyne.Size {
	size := rr.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}
