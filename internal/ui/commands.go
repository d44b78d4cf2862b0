package ui

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/mobile/event/key"

	"github.com/example/layerpaint/internal/colorparse"
	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/export"
	"github.com/example/layerpaint/internal/shape"
)

// Command is an action the user can trigger from a key or a button.
type Command func(a *App)

type command struct {
	help string
	keys []KeyShortcut
	run  Command
}

func (a *App) register(name, help string, keys KeyboardShortcuts, fn Command) {
	if a.commands == nil {
		a.commands = make(map[string]*command)
		a.keymap = make(map[KeyShortcut]string)
	}
	cmd := &command{help: help, run: fn}
	if keys != nil {
		cmd.keys = keys.KeyboardShortcuts()
	}
	for _, k := range cmd.keys {
		a.keymap[k] = name
	}
	a.commands[name] = cmd
	a.order = append(a.order, name)
}

// Exec runs the named command. It reports false for unknown names.
func (a *App) Exec(name string) bool {
	cmd, ok := a.commands[name]
	if !ok {
		return false
	}
	cmd.run(a)
	return true
}

// Commands lists the registered command names in registration order.
func (a *App) Commands() []string { return append([]string(nil), a.order...) }

// Shortcuts returns the keys bound to a command.
func (a *App) Shortcuts(name string) []KeyShortcut {
	if cmd, ok := a.commands[name]; ok {
		return append([]KeyShortcut(nil), cmd.keys...)
	}
	return nil
}

func keys(runes ...rune) shortcutList {
	l := make(shortcutList, len(runes))
	for i, r := range runes {
		l[i] = KeyShortcut{Rune: r}
	}
	return l
}

func (l shortcutList) with(code key.Code, mods key.Modifiers) shortcutList {
	return append(l, KeyShortcut{Code: code, Modifiers: mods})
}

func (a *App) registerCommands() {
	for _, t := range []struct {
		tool document.Tool
		key  rune
	}{
		{document.ToolRectangle, 'r'},
		{document.ToolEllipse, 'e'},
		{document.ToolBrush, 'b'},
		{document.ToolEraser, 'x'},
	} {
		tool := t.tool
		a.register(tool.String(), "Tool: "+tool.String(), keys(t.key), func(a *App) {
			a.doc.SetTool(tool)
			a.status = "tool: " + tool.String()
		})
	}
	a.register("fill", "Toggle filled shapes", keys('f'), func(a *App) {
		a.doc.ToggleFill()
		a.status = fmt.Sprintf("fill: %s", onOff(a.doc.Filled))
	})
	for i, p := range a.palette {
		var k KeyboardShortcuts
		if i < 9 {
			k = keys('1' + rune(i))
		}
		c := p
		a.register(paletteAction(i), "Colour: "+p.Name, k, func(a *App) {
			a.doc.PickColor(c.Color)
			a.status = fmt.Sprintf("%s colour: %s", a.doc.Target, c.Name)
		})
	}
	a.register("target", "Switch colour target (brush/background)", keys('g'), func(a *App) {
		a.doc.ToggleTarget()
		a.status = "colour target: " + a.doc.Target.String()
	})
	a.register("color-dialog", "Enter a custom colour", keys('k'), func(a *App) {
		initial := colorparse.Hex(a.doc.Color)
		if a.doc.Target == document.TargetBackground {
			if bg, ok := a.doc.ActiveLayer().Background(); ok {
				initial = colorparse.Hex(bg)
			}
		}
		a.dialog.Open("Custom "+a.doc.Target.String()+" colour", initial)
		a.dialog.Layout(image.Rectangle{Max: a.size})
		a.dialogOpen = true
	})
	a.register("thicker", "Increase thickness", keys('+', '='), func(a *App) {
		a.doc.SetThickness(a.doc.Thickness() + 1)
		a.status = fmt.Sprintf("thickness: %d", a.doc.Thickness())
	})
	a.register("thinner", "Decrease thickness", keys('-'), func(a *App) {
		a.doc.SetThickness(a.doc.Thickness() - 1)
		a.status = fmt.Sprintf("thickness: %d", a.doc.Thickness())
	})

	a.register("undo", "Undo on the active layer", keys('z').with(key.CodeZ, key.ModControl), func(a *App) {
		if a.doc.Undo() {
			a.status = "undo"
		} else {
			a.status = "nothing to undo"
		}
	})
	a.register("redo", "Redo on the active layer", keys('y').with(key.CodeY, key.ModControl), func(a *App) {
		if a.doc.Redo() {
			a.status = "redo"
		} else {
			a.status = "nothing to redo"
		}
	})
	a.register("clear", "Clear the active layer", keys('c'), func(a *App) {
		a.doc.Clear()
		a.status = "cleared " + a.doc.ActiveLayer().Name
	})

	a.register("save", "Save PNG", keys('s').with(key.CodeS, key.ModControl), (*App).save)
	a.register("load", "Load PNG into the base layer", keys('l'), (*App).load)
	a.register("export", "Export PDF", keys('p'), (*App).exportPDF)
	a.register("copy", "Copy canvas to clipboard", shortcutList{}.with(key.CodeC, key.ModControl), (*App).copyCanvas)
	a.register("paste", "Paste clipboard image onto the active layer", shortcutList{}.with(key.CodeV, key.ModControl), (*App).paste)

	a.register("layer-new", "New layer", keys('n'), func(a *App) {
		l := a.doc.AddLayer()
		a.status = "added " + l.Name
	})
	a.register("layer-delete", "Remove active layer", shortcutList{}.with(key.CodeDeleteForward, 0), func(a *App) {
		name := a.doc.ActiveLayer().Name
		if err := a.doc.RemoveActiveLayer(); err != nil {
			a.notice("remove layer: %v", err)
			return
		}
		a.status = "removed " + name
	})
	a.register("layer-next", "Next layer", shortcutList{}.with(key.CodeTab, 0), func(a *App) {
		a.doc.CycleLayer(1)
		a.status = "active: " + a.doc.ActiveLayer().Name
	})
	a.register("layer-prev", "Previous layer", shortcutList{}.with(key.CodeTab, key.ModShift), func(a *App) {
		a.doc.CycleLayer(-1)
		a.status = "active: " + a.doc.ActiveLayer().Name
	})
	a.register("layer-visibility", "Show or hide active layer", keys('v'), func(a *App) {
		a.doc.ToggleVisibility()
		l := a.doc.ActiveLayer()
		a.status = fmt.Sprintf("%s visible: %s", l.Name, onOff(l.Visible))
	})
	a.register("layer-down", "Move active layer down", keys('['), func(a *App) { a.moveLayer(-1) })
	a.register("layer-up", "Move active layer up", keys(']'), func(a *App) { a.moveLayer(1) })

	a.register("help", "Show this help", keys('h').with(key.CodeF1, 0), func(a *App) {
		a.helpOpen = true
	})
	a.register("quit", "Quit", keys('q').with(key.CodeEscape, 0), func(a *App) {
		a.quit = true
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) moveLayer(delta int) {
	if !a.doc.MoveActiveLayer(delta) {
		a.status = "layer is already at the edge"
		return
	}
	a.status = fmt.Sprintf("%s is now layer %d", a.doc.ActiveLayer().Name, a.doc.ActiveIndex()+1)
}

func (a *App) save() {
	if err := a.doc.Save(a.output); err != nil {
		a.notice("save failed: %v", err)
		return
	}
	a.status = "saved " + a.output
	a.notifier.Save(a.output)
}

func (a *App) load() {
	if err := a.doc.Load(a.output); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.notice("no such file: %s", a.output)
			return
		}
		a.notice("load failed: %v", err)
		return
	}
	a.status = "loaded " + a.output
}

func (a *App) exportPDF() {
	path := a.PDFPath()
	if err := export.WritePDF(path, a.doc.Render(), filepath.Base(a.output)); err != nil {
		a.notice("export failed: %v", err)
		return
	}
	a.status = "exported " + path
	a.notifier.Export(path)
}

func (a *App) copyCanvas() {
	img := a.doc.Render()
	if err := a.copyImage(img); err != nil {
		a.notice("copy failed: %v", err)
		return
	}
	a.status = "copied canvas to clipboard"
	a.notifier.Copy("canvas", img)
}

func (a *App) paste() {
	img, err := a.pasteImage()
	if err != nil {
		a.notice("paste failed: %v", err)
		return
	}
	r := shape.NewRaster(img, image.Point{})
	a.doc.Commit(r)
	b := r.Bounds()
	a.status = fmt.Sprintf("pasted %dx%d image onto %s", b.Dx(), b.Dy(), a.doc.ActiveLayer().Name)
}

func (a *App) helpLines() []string {
	lines := make([]string, 0, len(a.order)+1)
	for _, name := range a.order {
		cmd := a.commands[name]
		if len(cmd.keys) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-16s %s", joinShortcuts(cmd.keys), cmd.help))
	}
	return append(lines, fmt.Sprintf("%-16s %s", "drag", "Draw on the canvas"))
}

func (a *App) describe(action string) string {
	cmd, ok := a.commands[action]
	if !ok {
		return action
	}
	if len(cmd.keys) == 0 {
		return cmd.help
	}
	return cmd.help + " (" + joinShortcuts(cmd.keys) + ")"
}
