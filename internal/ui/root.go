package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/jobpdf/internal/config"
	"github.com/ytget/jobpdf/internal/download"
	"github.com/ytget/jobpdf/internal/model"
	"github.com/ytget/jobpdf/internal/organize"
	"github.com/ytget/jobpdf/internal/session"
)

// TitleFetcher looks up a human title for a page
type TitleFetcher interface {
	FetchTitle(ctx context.Context, url string) (string, error)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      session.Session
	titles       TitleFetcher
	settings     *config.Settings
	localization *Localization

	// Inputs
	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	filenameLabel *widget.Label
	filenameEntry *widget.Entry
	downloadBtn   *widget.Button
	suggestBtn    *widget.Button
	quitBtn       *widget.Button

	// Record list
	listTitle  *widget.Label
	emptyLabel *widget.Label
	recordList *widget.List
	records    []*model.DownloadRecord
	selectedID string

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int

	// In-flight work
	busy   bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sess session.Session, titles TitleFetcher, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      sess,
		titles:       titles,
		settings:     settings,
		localization: localization,
		ctx:          ctx,
		cancel:       cancel,
	}

	log.Printf("RootUI initialized: engine=%s, output=%s", sess.EngineName(), settings.GetOutputDirectory())

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Session callbacks may arrive from the conversion goroutine
	ui.session.SetUpdateCallback(func() {
		fyne.Do(ui.refreshRecords)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger download when user presses Enter in either field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.filenameLabel = widget.NewLabel(ui.localization.GetText(KeyFilenameLabel))
	ui.filenameEntry = widget.NewEntry()
	ui.filenameEntry.SetPlaceHolder(organize.DefaultFilename)
	ui.filenameEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.suggestBtn = widget.NewButton(IconSuggest+" "+ui.localization.GetText(KeySuggestName), ui.onSuggestClick)
	ui.suggestBtn.Importance = widget.LowImportance

	ui.quitBtn = widget.NewButton(ui.localization.GetText(KeyQuit), ui.onQuit)

	var logo fyne.CanvasObject = widget.NewLabel("")
	if res, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(res)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		logo = img
	}

	form := container.NewVBox(
		ui.urlLabel,
		container.NewBorder(nil, nil, logo, ui.downloadBtn, ui.urlEntry),
		ui.filenameLabel,
		container.NewBorder(nil, nil, nil, ui.suggestBtn, ui.filenameEntry),
	)

	// Notification panel under the inputs (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(form, ui.notificationContainer, widget.NewSeparator())

	ui.listTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyDownloadedFiles), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoFiles))
	ui.emptyLabel.Importance = widget.LowImportance

	ui.recordList = widget.NewList(
		func() int {
			return len(ui.records)
		},
		func() fyne.CanvasObject { return ui.createRecordItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateRecordItem(id, obj) },
	)

	center := container.NewBorder(ui.listTitle, nil, nil, nil, container.NewStack(ui.emptyLabel, ui.recordList))
	bottom := container.NewBorder(nil, nil, nil, ui.quitBtn)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, center))
	ui.refreshRecords()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), ui.onQuit)
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), quitItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlLabel.SetText(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.filenameLabel.SetText(ui.localization.GetText(KeyFilenameLabel))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.suggestBtn.SetText(IconSuggest + " " + ui.localization.GetText(KeySuggestName))
	ui.quitBtn.SetText(ui.localization.GetText(KeyQuit))
	ui.listTitle.SetText(ui.localization.GetText(KeyDownloadedFiles))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoFiles))

	ui.recordList.Refresh()
}

// validateURL flags entries that are not http(s) URLs. It only drives the
// entry's hint; any non-empty URL is handed to the rendering engine.
func (ui *RootUI) validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil // Empty is allowed
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsed.Scheme != SchemeHTTP && parsed.Scheme != SchemeHTTPS {
		return errors.New(ui.localization.GetText(KeyInvalidURL))
	}
	return nil
}

// onDownloadClick handles the download button and Enter in either entry
func (ui *RootUI) onDownloadClick() {
	if ui.busy {
		return
	}

	req := model.NewConversionRequest(ui.urlEntry.Text, ui.filenameEntry.Text)
	if !req.HasURL() {
		ui.showFailure(model.NewFailure(model.FailureUserInput, download.OpConvert, "", download.ErrEmptyURL))
		return
	}

	log.Printf("Processing URL: %s (filename=%q)", req.URL, req.DesiredFilename)

	ui.setBusy(true)
	ui.showNotification(ui.localization.Format(KeyConverting, req.URL), true)

	go func() {
		record, err := ui.session.Submit(ui.ctx, req)
		fyne.Do(func() {
			ui.setBusy(false)
			if err != nil {
				ui.showFailure(err)
				return
			}
			ui.onConversionDone(record)
		})
	}()
}

// onConversionDone reports a saved PDF and selects it
func (ui *RootUI) onConversionDone(record *model.DownloadRecord) {
	message := ui.localization.Format(KeyPDFSaved, record.Path)
	ui.showNotification(message, false)
	ui.selectedID = record.ID
	ui.refreshRecords()

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: record.GetDisplayTitle(),
	})
	dialog.ShowInformation(ui.localization.GetText(KeySuccess), message, ui.window)
}

// onSuggestClick fills the filename entry from the page title
func (ui *RootUI) onSuggestClick() {
	if ui.titles == nil {
		return
	}
	pageURL := strings.TrimSpace(ui.urlEntry.Text)
	if pageURL == "" {
		ui.showFailure(model.NewFailure(model.FailureUserInput, download.OpConvert, "", download.ErrEmptyURL))
		return
	}

	ui.suggestBtn.Disable()
	ui.showNotification(ui.localization.GetText(KeyFetchingTitle), true)

	go func() {
		title, err := ui.titles.FetchTitle(ui.ctx, pageURL)
		fyne.Do(func() {
			ui.suggestBtn.Enable()
			ui.applySuggestion(title, err)
		})
	}()
}

// applySuggestion puts a sanitized title into the filename entry
func (ui *RootUI) applySuggestion(title string, err error) {
	if err != nil {
		log.Printf("Title lookup failed: %v", err)
		ui.showNotification(ui.localization.Format(KeyTitleNotFound, err.Error()), false)
		return
	}
	stem := organize.SuggestFilename(title)
	if stem == "" {
		ui.showNotification(ui.localization.Format(KeyTitleNotFound, DashPlaceholder), false)
		return
	}
	ui.filenameEntry.SetText(organize.NormalizeFilename(stem))
	ui.hideNotification()
}

// setBusy toggles the in-flight state; at most one conversion runs at a time
func (ui *RootUI) setBusy(busy bool) {
	ui.busy = busy
	if busy {
		ui.downloadBtn.Disable()
	} else {
		ui.downloadBtn.Enable()
	}
}

// showNotification displays a message in the notification panel under the inputs.
// When spinning is true, a spinner is shown to indicate background activity.
// Messages without a spinner hide themselves after NotificationAutoHide.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	if spinning {
		return
	}
	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// showFailure shows a localized message for err in the panel. Anything beyond
// a rejected input also gets a dialog.
func (ui *RootUI) showFailure(err error) {
	message := ui.failureMessage(err)
	log.Printf("Showing failure to user: %v", err)
	ui.showNotification(message, false)

	if kind, ok := model.KindOf(err); ok && kind.IsLocal() {
		return
	}
	dialog.ShowInformation(ui.localization.GetText(KeyError), message, ui.window)
}

// failureMessage maps a service error to the text shown to the user
func (ui *RootUI) failureMessage(err error) string {
	var f *model.Failure
	if !errors.As(err, &f) {
		return ui.localization.Format(KeyErrorOccurred, err.Error())
	}

	switch f.Kind {
	case model.FailureUserInput:
		switch {
		case errors.Is(err, organize.ErrInvalidFilename):
			return ui.localization.Format(KeyInvalidFilename, f.Message())
		case errors.Is(err, session.ErrNoSelection):
			return ui.localization.GetText(KeyNoSelection)
		default:
			return ui.localization.GetText(KeyPleaseEnterURL)
		}
	case model.FailureToolUnavailable:
		return ui.localization.Format(KeyToolUnavailable, ui.session.EngineName())
	case model.FailureConversionFailed:
		return ui.localization.Format(KeyErrorOccurred, f.Message())
	case model.FailureFilesystem:
		if session.IsMissingFile(err) {
			return ui.localization.GetText(KeyFileDoesNotExist)
		}
		if f.Op == session.OpDelete {
			return ui.localization.Format(KeyCouldNotDelete, f.Message())
		}
		return ui.localization.Format(KeyCouldNotOpen, f.Message())
	}
	return ui.localization.Format(KeyErrorOccurred, f.Message())
}

// createRecordItem creates a reusable list row
func (ui *RootUI) createRecordItem() fyne.CanvasObject {
	row := NewRecordRow(nil, ui.localization)
	row.SetCallbacks(ui.onSelectRecord, ui.onOpenRecord, ui.showRecordMenu)
	return row
}

// updateRecordItem binds a list row to the record at id
func (ui *RootUI) updateRecordItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*RecordRow)
	if !ok || id < 0 || id >= len(ui.records) {
		return
	}
	record := ui.records[id]
	row.SetRecord(record, record.ID == ui.selectedID)
}

// refreshRecords reloads the session snapshot into the list
func (ui *RootUI) refreshRecords() {
	ui.records = ui.session.Records()

	if ui.selectedID != "" {
		if _, ok := ui.session.Record(ui.selectedID); !ok {
			ui.selectedID = ""
		}
	}

	if len(ui.records) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.recordList.Refresh()
}

// onSelectRecord marks a record as the target of keyboard-less actions
func (ui *RootUI) onSelectRecord(recordID string) {
	if ui.selectedID == recordID {
		return
	}
	ui.selectedID = recordID
	ui.recordList.Refresh()
}

// showRecordMenu shows the context menu for a record at pos
func (ui *RootUI) showRecordMenu(recordID string, pos fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(ui.localization.GetText(KeyOpen), func() { ui.onOpenRecord(recordID) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyReveal), func() { ui.onRevealRecord(recordID) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopyPath), func() { ui.onCopyPath(recordID) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyViewProperties), func() { ui.onShowProperties(recordID) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyDelete), func() { ui.onDeleteRecord(recordID) }),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// onOpenRecord opens the record's file with the default application
func (ui *RootUI) onOpenRecord(recordID string) {
	if err := ui.session.Open(recordID); err != nil {
		ui.showFailure(err)
	}
}

// onRevealRecord shows the record's file in the file manager
func (ui *RootUI) onRevealRecord(recordID string) {
	if err := ui.session.Reveal(recordID); err != nil {
		ui.showFailure(err)
	}
}

// onCopyPath copies the absolute file path to the clipboard
func (ui *RootUI) onCopyPath(recordID string) {
	record, ok := ui.session.Record(recordID)
	if !ok {
		ui.showFailure(model.NewFailure(model.FailureUserInput, "copy", "", session.ErrNoSelection))
		return
	}
	path := record.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	ui.app.Clipboard().SetContent(path)
	ui.showNotification(ui.localization.GetText(KeyPathCopied), false)
}

// onShowProperties shows size and location of the record's file
func (ui *RootUI) onShowProperties(recordID string) {
	props, err := ui.session.Properties(recordID)
	if err != nil {
		ui.showFailure(err)
		return
	}
	log.Printf("Properties: path=%s, size=%d bytes, location=%s", props.Path, props.SizeBytes, props.AbsolutePath)
	text := ui.localization.Format(KeyPropertiesFormat, props.Path, props.SizeKB(), props.AbsolutePath)
	dialog.ShowInformation(ui.localization.GetText(KeyProperties), text, ui.window)
}

// onDeleteRecord asks for confirmation and deletes the record's file
func (ui *RootUI) onDeleteRecord(recordID string) {
	record, ok := ui.session.Record(recordID)
	if !ok {
		ui.showFailure(model.NewFailure(model.FailureUserInput, session.OpDelete, "", session.ErrNoSelection))
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyConfirmDeleteTitle),
		ui.localization.Format(KeyConfirmDelete, record.FileName()),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.deleteRecord(recordID, record.FileName())
		},
		ui.window,
	)
}

// deleteRecord removes the file and reports the outcome
func (ui *RootUI) deleteRecord(recordID, name string) {
	if err := ui.session.Delete(recordID); err != nil {
		ui.showFailure(err)
		return
	}
	ui.showNotification(ui.localization.Format(KeyFileDeleted, name), false)
}

// onQuit cancels in-flight work and exits
func (ui *RootUI) onQuit() {
	log.Printf("Quit requested: %s", ui)
	ui.Shutdown()
	ui.app.Quit()
}

// Shutdown cancels any running conversion or title lookup
func (ui *RootUI) Shutdown() {
	if ui.cancel != nil {
		ui.cancel()
	}
}

// String describes the UI state for logs
func (ui *RootUI) String() string {
	return fmt.Sprintf("RootUI{records=%d, selected=%q, busy=%t}", len(ui.records), ui.selectedID, ui.busy)
}
