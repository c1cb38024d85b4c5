//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"unicode"

	"gridlines/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the canvas preview.
type HUD struct {
	sketch     core.Sketch
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	textSetter   core.TextParameterSetter
	panelOffsetX int
	title        string

	editing int
	runes   []rune
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided sketch and panel width.
func NewHUD(s core.Sketch, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sketch: s, width: width, editing: -1}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(s)
	if provider, ok := s.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := s.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := s.(core.TextParameterSetter); ok {
		h.textSetter = setter
	}
	return h
}

// Editing reports whether a text field currently owns keyboard input.
func (h *HUD) Editing() bool {
	return h != nil && h.editing >= 0
}

// Update refreshes the cached parameter snapshot, handles HUD interactions and
// reports whether any parameter changed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sketch.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	changed := h.handleMouse()
	if h.handleTyping() {
		changed = true
	}
	if changed {
		h.snapshot = provider.Parameters()
		h.refreshControlValues()
	}
	return changed
}

// Draw paints the HUD panel anchored to the right edge of the preview.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(s core.Sketch) string {
	if s == nil || s.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s controls", s.Name())
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeText:
			state.value = param.Value
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleMouse() bool {
	if len(h.controls) == 0 {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		h.stopEditing()
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if state.control.Type == core.ParamTypeText {
			if pointInRect(px, my, state.fieldRect) {
				h.startEditing(i)
				return false
			}
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			return h.applyAdjustment(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			return h.applyAdjustment(state, 1)
		}
	}
	h.stopEditing()
	return false
}

func (h *HUD) startEditing(i int) {
	h.editing = i
	h.runes = []rune(h.controls[i].value)
}

func (h *HUD) stopEditing() {
	h.editing = -1
	h.runes = nil
}

// handleTyping applies keystrokes to the focused text field. Every edit is
// pushed to the sketch immediately.
func (h *HUD) handleTyping() bool {
	if h.editing < 0 || h.editing >= len(h.controls) || h.textSetter == nil {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.stopEditing()
		return false
	}
	before := len(h.runes)
	edited := false
	for _, r := range ebiten.AppendInputChars(nil) {
		if unicode.IsPrint(r) {
			h.runes = append(h.runes, r)
		}
	}
	if len(h.runes) != before {
		edited = true
	}
	if repeatingKey(ebiten.KeyBackspace) && len(h.runes) > 0 {
		h.runes = h.runes[:len(h.runes)-1]
		edited = true
	}
	if !edited {
		return false
	}
	state := &h.controls[h.editing]
	return h.textSetter.SetTextParameter(state.control.Key, string(h.runes))
}

func repeatingKey(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || state.control.Type != core.ParamTypeInt || h.intSetter == nil {
		return false
	}
	target := state.control.ClampInt(state.intValue + direction*intStep(state.control))
	if target == state.intValue {
		return false
	}
	if !h.intSetter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		if state.control.Type == core.ParamTypeText {
			h.drawField(state, i == h.editing)
			continue
		}

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		value := state.value
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
	helpY := h.lastHeight - panelPadding
	text.Draw(h.panel, "R redraw  S new seed  1/2 overlay", face, panelPadding, helpY, color.RGBA{R: 120, G: 120, B: 130, A: 255})
}

func (h *HUD) drawField(state *hudControlState, focused bool) {
	bg := color.RGBA{R: 32, G: 34, B: 40, A: 255}
	if focused {
		bg = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	}
	h.fillRect(state.fieldRect, bg)

	face := basicfont.Face7x13
	value := state.value
	if focused {
		value = string(h.runes) + "_"
	}
	if value == "" {
		value = "(empty)"
	}
	maxChars := (state.fieldRect.Dx() - 2*fieldPadding) / glyphWidth
	if maxChars > 0 && len([]rune(value)) > maxChars {
		r := []rune(value)
		value = string(r[len(r)-maxChars:])
	}
	y := state.fieldRect.Min.Y + (state.fieldRect.Dy()+glyphHeight)/2 - 2
	text.Draw(h.panel, value, face, state.fieldRect.Min.X+fieldPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || state.control.Type != core.ParamTypeInt || h.intSetter == nil {
		return false
	}
	target := state.intValue + direction*intStep(state.control)
	return state.control.ClampInt(target) == target
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	top := controlsTop
	for i := range h.controls {
		state := &h.controls[i]
		state.top = top
		if state.control.Type == core.ParamTypeText {
			fieldY := top + labelBaseline + 6
			state.fieldRect = image.Rect(panelPadding, fieldY, h.width-panelPadding, fieldY+fieldHeight)
			top += lineHeight + fieldHeight
			continue
		}
		buttonY := top + (lineHeight-buttonSize)/2
		state.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		state.minusRect = image.Rect(state.plusRect.Min.X-buttonGap-buttonSize, buttonY, state.plusRect.Min.X-buttonGap, buttonY+buttonSize)
		top += lineHeight
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
	fieldRect image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	fieldHeight    = 24
	fieldPadding   = 6
	glyphWidth     = 7
	glyphHeight    = 13
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
