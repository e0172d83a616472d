package main

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const maxLogLines = 8

// editorLog collects recent messages for the log panel. logf is called
// from the UI goroutine and from the watcher goroutine, hence the lock.
type editorLog struct {
	mu    sync.Mutex
	lines []string
	label *widget.Label
}

var messages editorLog

// logf records a message in the log panel and mirrors it to stderr.
func logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)

	messages.mu.Lock()
	messages.lines = append(messages.lines, msg)
	if len(messages.lines) > maxLogLines {
		messages.lines = messages.lines[len(messages.lines)-maxLogLines:]
	}
	messages.mu.Unlock()
}

// text returns the joined recent lines.
func (l *editorLog) text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := ""
	for i, line := range l.lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// syncLabel pushes the recent lines into the panel label. Called once
// per frame from Update.
func (l *editorLog) syncLabel() {
	l.mu.Lock()
	label := l.label
	l.mu.Unlock()
	if label == nil {
		return
	}
	label.Label = l.text()
}

func buildLogPanel(fontFace *text.Face) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(400, 120),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{28, 28, 32, 230})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	title := widget.NewLabel(
		widget.LabelOpts.Text("Log", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	body := widget.NewLabel(
		widget.LabelOpts.Text("", fontFace, &widget.LabelColor{Idle: color.Gray{Y: 200}, Disabled: color.Gray{Y: 100}}),
	)
	panel.AddChild(title)
	panel.AddChild(body)

	messages.mu.Lock()
	messages.label = body
	messages.mu.Unlock()
	return panel
}
