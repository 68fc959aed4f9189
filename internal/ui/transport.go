package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dawbrowser/daw-browser/internal/controller"
	"github.com/dawbrowser/daw-browser/internal/model"
)

// TransportBar shows the clip being auditioned with play/pause, stop and a seek slider
type TransportBar struct {
	localization  *Localization
	audioDisabled bool

	toggleBtn  *widget.Button
	pauseBtn   *widget.Button
	stopBtn    *widget.Button
	slider     *widget.Slider
	timeLabel  *widget.Label
	nowPlaying *widget.Label
	container  *fyne.Container

	onToggle func()
	onPause  func()
	onStop   func()
	onSeek   func(time.Duration)
}

// NewTransportBar creates the bar; callbacks run on the UI thread
func NewTransportBar(localization *Localization, onToggle, onPause, onStop func(), onSeek func(time.Duration)) *TransportBar {
	t := &TransportBar{
		localization: localization,
		onToggle:     onToggle,
		onPause:      onPause,
		onStop:       onStop,
		onSeek:       onSeek,
	}

	t.toggleBtn = widget.NewButton(IconPlay, func() {
		if t.onToggle != nil {
			t.onToggle()
		}
	})
	t.toggleBtn.Importance = widget.HighImportance

	t.pauseBtn = widget.NewButton(IconPause, func() {
		if t.onPause != nil {
			t.onPause()
		}
	})

	t.stopBtn = widget.NewButton(IconStop, func() {
		if t.onStop != nil {
			t.onStop()
		}
	})

	t.slider = widget.NewSlider(0, 1)
	t.slider.Step = 0.1
	t.slider.OnChangeEnded = func(value float64) {
		if t.onSeek != nil && !t.audioDisabled {
			t.onSeek(time.Duration(value * float64(time.Second)))
		}
	}

	t.timeLabel = widget.NewLabel(model.FormatClock(0) + TimeSeparator + model.FormatClock(0))
	t.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	t.nowPlaying = widget.NewLabel(localization.GetText(KeyNothingPlaying))
	t.nowPlaying.Truncation = fyne.TextTruncateEllipsis

	buttons := container.NewHBox(t.toggleBtn, t.pauseBtn, t.stopBtn)
	seekRow := container.NewBorder(nil, nil, nil, t.timeLabel, t.slider)
	t.container = container.NewBorder(nil, nil, buttons, nil, container.NewVBox(t.nowPlaying, seekRow))

	t.Update(controller.Snapshot{State: model.PlaybackStopped})
	return t
}

// Container returns the bar's canvas object
func (t *TransportBar) Container() fyne.CanvasObject {
	return t.container
}

// Update renders a controller snapshot. Must run on the UI thread.
func (t *TransportBar) Update(s controller.Snapshot) {
	switch s.State {
	case model.PlaybackPlaying:
		t.toggleBtn.SetText(IconStop)
	case model.PlaybackPaused:
		t.toggleBtn.SetText(IconPlay)
	default:
		t.toggleBtn.SetText(IconPlay)
	}

	if s.State == model.PlaybackPlaying {
		t.pauseBtn.Enable()
	} else {
		t.pauseBtn.Disable()
	}

	active := s.State.IsActive()
	if active {
		t.stopBtn.Enable()
		t.slider.Enable()
	} else {
		t.stopBtn.Disable()
		t.slider.Disable()
	}

	if t.audioDisabled {
		t.nowPlaying.SetText(t.localization.GetText(KeyAudioUnavailable))
	} else if s.NowPlaying != nil && active {
		title := s.Clip.DisplayName()
		if title == "" {
			title = s.NowPlaying.DemoClipName()
		}
		t.nowPlaying.SetText(s.NowPlaying.Name + MiddleDotSeparator + title)
	} else {
		t.nowPlaying.SetText(t.localization.GetText(KeyNothingPlaying))
	}

	maxValue := s.Duration.Seconds()
	if maxValue <= 0 {
		maxValue = 1
	}
	t.slider.Max = maxValue
	// SetValue fires OnChanged only; seeking is bound to OnChangeEnded
	t.slider.SetValue(s.Position.Seconds())

	t.timeLabel.SetText(model.FormatClock(s.Position) + TimeSeparator + model.FormatClock(s.Duration))
}

// SetAudioAvailable disables the transport when there is no audio output
func (t *TransportBar) SetAudioAvailable(available bool) {
	t.audioDisabled = !available
	if available {
		t.toggleBtn.Enable()
		return
	}
	t.toggleBtn.Disable()
	t.pauseBtn.Disable()
	t.nowPlaying.SetText(t.localization.GetText(KeyAudioUnavailable))
}
