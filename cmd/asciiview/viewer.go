package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wbrown/img2ascii"
)

// Ramps cycled by the 'r' key, darkest glyph first.
var presetRamps = []string{
	img2ascii.DefaultRamp,
	"@%#*+=-:.",
	"█▓▒░",
	"@o.",
}

// edit is a converted art waiting to replace gallery entry index.
type edit struct {
	index int
	art   *img2ascii.Art
}

// applyDone is posted back to the event loop when a background conversion
// finishes.
type applyDone struct {
	edits   []edit
	elapsed time.Duration
}

type viewer struct {
	screen  tcell.Screen
	gallery *img2ascii.Gallery
	log     *slog.Logger

	current   int
	rampIdx   int
	playing   bool
	interval  time.Duration
	exportDir string

	// renaming routes key presses to the name prompt.
	renaming bool
	input    []rune

	// busy is set while an Art is being converted in the background. The
	// Art must not be touched until the applyDone event arrives, so frame
	// keeps the last text that was drawn.
	busy   bool
	frame  string
	status string

	artStyle    tcell.Style
	statusStyle tcell.Style
}

func newViewer(screen tcell.Screen, gallery *img2ascii.Gallery, interval time.Duration, exportDir string, log *slog.Logger) *viewer {
	return &viewer{
		screen:      screen,
		gallery:     gallery,
		log:         log,
		interval:    interval,
		exportDir:   exportDir,
		artStyle:    tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !v.playing || v.busy || v.renaming {
				continue
			}
			v.step(1)
		}
		v.draw()
	}
}

// handleEvent returns false when the viewer should exit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if v.renaming {
			v.handlePrompt(ev)
			return true
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		case tcell.KeyRight:
			v.step(1)
		case tcell.KeyLeft:
			v.step(-1)
		}

	case *tcell.EventResize:
		v.screen.Sync()

	case *tcell.EventInterrupt:
		if done, ok := ev.Data().(applyDone); ok {
			v.finish(done)
		}
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	if r == 'q' {
		return false
	}
	if v.busy {
		return true
	}

	switch r {
	case 'n':
		v.step(1)
	case 'p':
		v.step(-1)
	case ' ':
		v.playing = !v.playing
	case 'c':
		v.update(func(s *img2ascii.FilterSettings) { s.Contrast = !s.Contrast })
	case 'i':
		v.update(func(s *img2ascii.FilterSettings) { s.Negative = !s.Negative })
	case 's':
		v.update(func(s *img2ascii.FilterSettings) { s.Sharpen = !s.Sharpen })
	case 'e':
		v.update(func(s *img2ascii.FilterSettings) { s.Emboss = !s.Emboss })
	case 'r':
		v.rampIdx = (v.rampIdx + 1) % len(presetRamps)
		ramp := presetRamps[v.rampIdx]
		v.updateAll(func(s *img2ascii.FilterSettings) { s.Ramp = ramp })
	case 'd':
		v.remove()
	case 'x':
		v.export()
	case 'm':
		if art, ok := v.gallery.Get(v.current); ok {
			v.renaming = true
			v.input = []rune(art.Name())
		}
	}
	return true
}

// handlePrompt edits the pending name. Enter renames the current art and
// Escape discards the edit.
func (v *viewer) handlePrompt(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		v.renaming = false
		name := strings.TrimSpace(string(v.input))
		art, ok := v.gallery.Get(v.current)
		if !ok || name == "" {
			return
		}
		v.log.Debug("asciiview: renamed", "from", art.Name(), "to", name)
		art.SetName(name)
		v.status = ""
	case tcell.KeyEscape:
		v.renaming = false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.input) > 0 {
			v.input = v.input[:len(v.input)-1]
		}
	case tcell.KeyRune:
		v.input = append(v.input, ev.Rune())
	}
}

// remove deletes the current art and keeps the selection on its successor,
// or on the new last art.
func (v *viewer) remove() {
	art, ok := v.gallery.Get(v.current)
	if !ok {
		return
	}
	if err := v.gallery.Delete(v.current); err != nil {
		v.log.Error("asciiview: remove failed", "error", err)
		return
	}
	v.current = max(min(v.current, v.gallery.Len()-1), 0)
	if v.gallery.Len() < 2 {
		v.playing = false
	}
	v.status = fmt.Sprintf("removed %s", art.Name())
}

// export writes the current art at native resolution to <name>.txt in the
// export directory.
func (v *viewer) export() {
	art, ok := v.gallery.Get(v.current)
	if !ok {
		return
	}
	path := filepath.Join(v.exportDir, filepath.Base(art.Name())+".txt")
	if err := img2ascii.ExportText(art, path); err != nil {
		v.log.Error("asciiview: export failed", "path", path, "error", err)
		v.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	v.status = fmt.Sprintf("exported %s", path)
}

func (v *viewer) step(delta int) {
	n := v.gallery.Len()
	if n == 0 || v.busy {
		return
	}
	v.current = ((v.current+delta)%n + n) % n
	v.status = ""
}

// update changes the settings of the current art and converts it again in
// the background.
func (v *viewer) update(change func(*img2ascii.FilterSettings)) {
	if _, ok := v.gallery.Get(v.current); ok {
		v.convert([]int{v.current}, change)
	}
}

// updateAll applies change to every art in the gallery.
func (v *viewer) updateAll(change func(*img2ascii.FilterSettings)) {
	indices := make([]int, 0, v.gallery.Len())
	for i := range v.gallery.All() {
		indices = append(indices, i)
	}
	v.convert(indices, change)
}

// convert derives a new art for each index in the background. The gallery
// entries are replaced once applyDone arrives; until then the viewer is
// busy and draws the last frame.
func (v *viewer) convert(indices []int, change func(*img2ascii.FilterSettings)) {
	type job struct {
		index    int
		src      *img2ascii.Art
		name     string
		settings img2ascii.FilterSettings
	}
	var jobs []job
	for _, i := range indices {
		art, ok := v.gallery.Get(i)
		if !ok {
			continue
		}
		settings := art.Settings()
		change(&settings)
		jobs = append(jobs, job{index: i, src: art, name: art.Name(), settings: settings})
	}
	if len(jobs) == 0 {
		return
	}

	v.busy = true
	if len(jobs) == 1 {
		v.status = fmt.Sprintf("converting %s...", jobs[0].name)
	} else {
		v.status = fmt.Sprintf("converting %d arts...", len(jobs))
	}
	go func() {
		start := time.Now()
		edits := make([]edit, len(jobs))
		for i, j := range jobs {
			edits[i] = edit{index: j.index, art: j.src.Derive(j.name, j.settings)}
		}
		// Fails only if the event queue is full or the screen is gone.
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(applyDone{edits: edits, elapsed: time.Since(start)}))
	}()
}

// finish stores the converted arts in the gallery.
func (v *viewer) finish(done applyDone) {
	v.busy = false
	for _, e := range done.edits {
		if err := v.gallery.Set(e.index, e.art); err != nil {
			v.log.Error("asciiview: replace failed", "art", e.art.Name(), "error", err)
			continue
		}
		v.log.Debug("asciiview: converted", "art", e.art.Name(), "filters", e.art.Settings().String())
	}
	v.status = fmt.Sprintf("converted in %v", done.elapsed.Round(time.Millisecond))
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	if rows < 1 {
		v.screen.Show()
		return
	}

	art, ok := v.gallery.Get(v.current)
	if ok && !v.busy {
		v.frame = art.Render(cols, rows-1)
	}
	if !ok {
		v.frame = ""
	}

	lines := strings.Split(v.frame, "\n")
	width := 0
	if v.frame != "" {
		width = len([]rune(lines[0]))
	} else {
		lines = nil
	}
	offX := max((cols-width)/2, 0)
	offY := max((rows-1-len(lines))/2, 0)
	for y, line := range lines {
		for x, r := range []rune(line) {
			v.screen.SetContent(offX+x, offY+y, r, nil, v.artStyle)
		}
	}

	v.drawStatus(cols, rows-1, art)
	v.screen.Show()
}

func (v *viewer) drawStatus(cols, row int, art *img2ascii.Art) {
	var text string
	switch {
	case art == nil:
		text = "no images loaded, q to quit"
	case v.renaming:
		text = fmt.Sprintf("[%d/%d] rename: %s", v.current+1, v.gallery.Len(), string(v.input))
	case v.busy:
		text = fmt.Sprintf("[%d/%d] %s", v.current+1, v.gallery.Len(), v.status)
	default:
		w, h := art.RenderSize(cols, row)
		text = fmt.Sprintf("[%d/%d] %s  %dx%d  filters: %s",
			v.current+1, v.gallery.Len(), art.Name(), w, h, art.Settings())
		if v.playing {
			text += "  playing"
		}
		if v.status != "" {
			text += "  " + v.status
		}
	}

	runes := []rune(text)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, row, r, nil, v.statusStyle)
	}
}
