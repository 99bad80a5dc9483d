package app

import (
	"context"
	"fmt"

	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/library"
)

// LibraryScreen lists the saved clips and supports multi-select deletion.
type LibraryScreen struct {
	app      *App
	items    []library.AudioItem
	selected map[string]bool
}

// LibraryScreen opens the library screen.
func (a *App) LibraryScreen(ctx context.Context) *LibraryScreen {
	l := &LibraryScreen{app: a, selected: make(map[string]bool)}
	l.Refresh(ctx)
	return l
}

// Refresh reloads the items and drops selections of removed items.
func (l *LibraryScreen) Refresh(ctx context.Context) {
	l.items = l.app.Library.GetAll(ctx)
	present := make(map[string]bool, len(l.items))
	for _, it := range l.items {
		present[it.ID] = true
	}
	for id := range l.selected {
		if !present[id] {
			delete(l.selected, id)
		}
	}
}

// Items returns the listed clips, newest first.
func (l *LibraryScreen) Items() []library.AudioItem { return l.items }

// Search lists the items matching q.
func (l *LibraryScreen) Search(ctx context.Context, q string) []library.AudioItem {
	l.items = l.app.Library.Search(ctx, q)
	return l.items
}

// Play opens the player on item.
func (l *LibraryScreen) Play(item library.AudioItem) { l.app.playItem(item) }

// Toggle flips the selection of id.
func (l *LibraryScreen) Toggle(id string) {
	if l.selected[id] {
		delete(l.selected, id)
		return
	}
	l.selected[id] = true
}

// SelectAll selects every listed item.
func (l *LibraryScreen) SelectAll() {
	for _, it := range l.items {
		l.selected[it.ID] = true
	}
}

// ClearSelection deselects everything.
func (l *LibraryScreen) ClearSelection() {
	l.selected = make(map[string]bool)
}

// IsSelected reports whether id is selected.
func (l *LibraryScreen) IsSelected(id string) bool { return l.selected[id] }

// Selected returns the selected ids in list order.
func (l *LibraryScreen) Selected() []string {
	var ids []string
	for _, it := range l.items {
		if l.selected[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Delete removes one recording.
func (l *LibraryScreen) Delete(ctx context.Context, id string) error {
	return l.delete(ctx, []string{id})
}

// DeleteSelected removes every selected recording in one sync.
func (l *LibraryScreen) DeleteSelected(ctx context.Context) error {
	ids := l.Selected()
	if len(ids) == 0 {
		return nil
	}
	return l.delete(ctx, ids)
}

func (l *LibraryScreen) delete(ctx context.Context, ids []string) error {
	a := l.app
	if err := a.Library.DeleteItems(ctx, ids); err != nil {
		if !isCancel(err) {
			a.Nav.ShowMessage(err.Error())
		}
		return err
	}

	t := a.translations(ctx)
	if len(ids) == 1 {
		a.Nav.ShowMessage(t.Message(i18n.MsgRecordingDeleted))
	} else {
		a.Nav.ShowMessage(fmt.Sprintf(t.Message(i18n.MsgRecordingsDeleted), len(ids)))
	}
	for _, id := range ids {
		delete(l.selected, id)
	}
	l.Refresh(ctx)
	return nil
}
