package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/nyampire/Rapid/internal/geo"
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
	styleMenu     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

func (a *App) render() {
	a.screen.Clear()

	selected := make(map[string]bool)
	for _, id := range a.modes.SelectedIDs() {
		selected[id] = true
	}

	for _, id := range a.scene.ways {
		a.drawWay(id, selected)
	}
	for _, m := range a.scene.markers {
		style := styleDefault
		if selected[m.target.ID] {
			style = styleSelected
		}
		a.setCell(m.loc, m.glyph, style)
	}

	a.drawMenus()
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawWay(id string, selected map[string]bool) {
	style := styleDefault
	if selected[id] {
		style = styleSelected
	}

	nodes, _ := a.scene.graph.SegmentNodes(id)
	for i := 1; i < len(nodes); i++ {
		a.drawLine(nodes[i-1].Loc, nodes[i].Loc, style)
	}
	for _, n := range nodes {
		nodeStyle := style
		if selected[n.ID] {
			nodeStyle = styleSelected
		}
		a.setCell(n.Loc, 'o', nodeStyle)
	}
}

// drawLine samples the segment between two vertices.
func (a *App) drawLine(from, to geo.Point, style tcell.Style) {
	steps := int(from.Distance(to)) * 2
	if steps < 1 {
		steps = 1
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		a.setCell(geo.Point{
			X: from.X + t*(to.X-from.X),
			Y: from.Y + t*(to.Y-from.Y),
		}, '.', style)
	}
}

func (a *App) drawMenus() {
	a.mu.Lock()
	editAnchor, provAnchor := a.editAnchor, a.provAnchor
	a.mu.Unlock()

	if a.menus.EditMenuOpen() {
		a.drawText(int(editAnchor.X)+1, int(editAnchor.Y)+1, "[edit menu]", styleMenu)
	}
	if a.menus.ProviderMenuOpen() {
		a.drawText(int(provAnchor.X)+1, int(provAnchor.Y)+1, "[osmose menu]", styleMenu)
	}
}

func (a *App) drawStatus() {
	_, height := a.screen.Size()

	a.mu.Lock()
	gesture := a.lastGesture
	zoomOff := a.zoomOff
	photo := a.photo
	a.mu.Unlock()

	parts := []string{"mode: " + a.modes.CurrentName()}
	if ids := a.modes.SelectedIDs(); len(ids) > 0 {
		parts = append(parts, "selected: "+strings.Join(ids, ","))
	}
	if gesture != "" {
		parts = append(parts, "last: "+gesture)
	}
	if zoomOff {
		parts = append(parts, "zoom guarded")
	}
	if photo != "" {
		parts = append(parts, "photo: "+photo)
	}
	if n := len(a.history.Changes()); n > 0 {
		parts = append(parts, fmt.Sprintf("edits: %d", n))
	}

	a.drawText(0, height-2, strings.Join(parts, " | "), styleStatus)
	a.drawText(0, height-1,
		"click to select, Shift+click to multi-select, double-click a way to add a vertex, "+
			"right-click/F2 for menus, Esc to browse, Space clicks in place, q quits",
		styleDefault)
}

func (a *App) setCell(loc geo.Point, r rune, style tcell.Style) {
	a.screen.SetContent(int(loc.X), int(loc.Y), r, nil, style)
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
