package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// ProjectRow renders one project: logo, name, DAW and demo clip, and actions
type ProjectRow struct {
	widget.BaseWidget

	project      *model.ProjectRecord
	localization *Localization

	// UI components
	logo        *canvas.Image
	nameLabel   *widget.Label
	detailLabel *widget.Label
	statusLabel *widget.Label

	// Action buttons
	playBtn   *widget.Button
	openBtn   *widget.Button
	revealBtn *widget.Button

	// Callbacks
	onPlay   func(*model.ProjectRecord)
	onOpen   func(*model.ProjectRecord)
	onReveal func(*model.ProjectRecord)
}

// NewProjectRow creates an empty row; call Update to bind a project
func NewProjectRow(localization *Localization) *ProjectRow {
	r := &ProjectRow{localization: localization}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// SetCallbacks sets the action callbacks
func (r *ProjectRow) SetCallbacks(onPlay, onOpen, onReveal func(*model.ProjectRecord)) {
	r.onPlay = onPlay
	r.onOpen = onOpen
	r.onReveal = onReveal
}

// Update binds the row to project; logo may be nil
func (r *ProjectRow) Update(project *model.ProjectRecord, logo fyne.Resource) {
	r.project = project
	r.updateFromProject(logo)
	r.Refresh()
}

// Project returns the bound project
func (r *ProjectRow) Project() *model.ProjectRecord {
	return r.project
}

func (r *ProjectRow) createUI() {
	r.logo = canvas.NewImageFromResource(nil)
	r.logo.FillMode = canvas.ImageFillContain
	r.logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.detailLabel = widget.NewLabel("")
	r.detailLabel.Truncation = fyne.TextTruncateEllipsis
	r.detailLabel.SizeName = theme.SizeNameCaptionText

	r.statusLabel = widget.NewLabel("")
	r.statusLabel.Alignment = fyne.TextAlignTrailing

	r.playBtn = widget.NewButton(IconPlay, func() {
		if r.onPlay != nil && r.project != nil {
			r.onPlay(r.project)
		}
	})
	r.playBtn.Importance = widget.MediumImportance

	r.openBtn = widget.NewButton(r.localization.GetText(KeyOpenInDAW), func() {
		if r.onOpen != nil && r.project != nil {
			r.onOpen(r.project)
		}
	})

	r.revealBtn = widget.NewButton(IconFolder, func() {
		if r.onReveal != nil && r.project != nil {
			r.onReveal(r.project)
		}
	})
	r.revealBtn.Importance = widget.LowImportance
}

func (r *ProjectRow) updateFromProject(logo fyne.Resource) {
	if r.project == nil {
		r.nameLabel.SetText("")
		r.detailLabel.SetText("")
		r.statusLabel.SetText("")
		r.logo.Resource = nil
		r.logo.Refresh()
		r.playBtn.Disable()
		r.openBtn.Disable()
		r.revealBtn.Disable()
		return
	}

	r.logo.Resource = logo
	r.logo.Refresh()

	r.nameLabel.SetText(r.project.Name)

	detail := r.project.Kind.String() + MiddleDotSeparator
	if r.project.HasDemoClip() {
		detail += r.project.DemoClipName()
	} else {
		detail += r.localization.GetText(KeyNoDemoClip)
	}
	r.detailLabel.SetText(detail)

	if r.project.IsPlaying() {
		r.statusLabel.Importance = widget.SuccessImportance
		r.statusLabel.SetText(IconMusic)
		r.playBtn.SetText(IconStop)
	} else {
		r.statusLabel.Importance = widget.MediumImportance
		r.statusLabel.SetText("")
		r.playBtn.SetText(IconPlay)
	}

	if r.project.HasDemoClip() {
		r.playBtn.Enable()
	} else {
		r.playBtn.Disable()
	}
	r.openBtn.SetText(r.localization.GetText(KeyOpenInDAW))
	r.openBtn.Enable()
	r.revealBtn.Enable()
}

// CreateRenderer implements fyne.Widget
func (r *ProjectRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.nameLabel, r.detailLabel)
	actions := container.NewHBox(r.statusLabel, r.playBtn, r.openBtn, r.revealBtn)
	content := container.NewBorder(nil, nil, container.NewCenter(r.logo), actions, text)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (r *ProjectRow) MinSize() fyne.Size {
	min := r.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, RowMinWidth), fyne.Max(min.Height, RowMinHeight))
}

var _ fyne.Widget = (*ProjectRow)(nil)
