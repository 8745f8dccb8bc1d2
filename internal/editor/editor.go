// Package editor runs the interactive list editing session.
//
// The Editor reads a menu choice, gathers the parameters for it through a
// prompt.Prompter, applies the change to a liststore.Store and, for Open and
// Save, moves the list to and from disk through a stores.ListRepo.
//
// List errors (nothing to move, already empty) and file errors are reported
// to the user and the session continues. Only a failure to read input ends
// the session early; a closed input ends it like Quit.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/listmaker/internal/liststore"
	"github.com/danieljhkim/listmaker/internal/logging"
	"github.com/danieljhkim/listmaker/internal/prompt"
	"github.com/danieljhkim/listmaker/internal/stores"
)

// Editor is one interactive session over a single list.
type Editor struct {
	store  *liststore.Store
	repo   stores.ListRepo
	input  *prompt.Prompter
	out    *Console
	logger *log.Logger
}

// New creates an Editor. A nil logger discards diagnostics.
func New(store *liststore.Store, repo stores.ListRepo, input *prompt.Prompter, out io.Writer, logger *log.Logger) *Editor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Editor{
		store:  store,
		repo:   repo,
		input:  input,
		out:    NewConsole(out),
		logger: logger,
	}
}

// Store returns the list being edited.
func (e *Editor) Store() *liststore.Store {
	return e.store
}

// Run shows the menu and executes commands until the user quits or the
// input is closed.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.printMenu()
		choice, err := e.input.NonEmptyString("Enter option")
		if err != nil {
			return endOfInput(err)
		}

		done, err := e.dispatch(ctx, choice)
		if err != nil {
			return endOfInput(err)
		}
		if done {
			e.out.Info("Goodbye!")
			return nil
		}
	}
}

func (e *Editor) dispatch(ctx context.Context, choice string) (bool, error) {
	switch strings.ToUpper(choice[:1]) {
	case "A":
		return false, e.add()
	case "D":
		return false, e.delete()
	case "I":
		return false, e.insert()
	case "M":
		return false, e.move()
	case "V":
		e.view()
		return false, nil
	case "C":
		return false, e.clear()
	case "O":
		return false, e.open(ctx)
	case "S":
		_, err := e.save(ctx)
		return false, err
	case "Q":
		return e.quit(ctx)
	default:
		e.out.Warning("Invalid option. Please try again.")
		return false, nil
	}
}

func (e *Editor) printMenu() {
	e.out.Section("File List Maker Menu")
	for _, line := range []string{
		"A - Add an item",
		"D - Delete an item",
		"I - Insert an item",
		"M - Move an item",
		"V - View the list",
		"O - Open a list file from disk",
		"S - Save the current list to disk",
		"C - Clear the current list",
		"Q - Quit",
	} {
		e.out.Info(line)
	}
}

func (e *Editor) view() {
	title := "Current List"
	switch name := e.store.FileName(); {
	case name != "" && e.store.Dirty():
		title = fmt.Sprintf("%s (%s, unsaved changes)", title, name)
	case name != "":
		title = fmt.Sprintf("%s (%s)", title, name)
	case e.store.Dirty():
		title += " (unsaved changes)"
	}
	e.out.Section(title)

	if e.store.IsEmpty() {
		e.out.Empty("[The list is empty]")
		return
	}
	e.out.Items(e.store.Items())
}

func (e *Editor) add() error {
	item, err := e.input.NonEmptyString("Enter item to add")
	if err != nil {
		return err
	}
	if err := e.store.Add(item); err != nil {
		e.out.Warning(capitalize(err.Error()))
		return nil
	}
	e.logger.Debug("item added", "item", item, "len", e.store.Len())
	return nil
}

func (e *Editor) delete() error {
	if e.store.IsEmpty() {
		e.out.Warning("List is empty. Nothing to delete.")
		return nil
	}

	e.view()
	position, err := e.input.RangedInteger("Enter item number to delete", 1, e.store.Len())
	if err != nil {
		return err
	}
	removed, err := e.store.Delete(position)
	if err != nil {
		e.out.Warning(capitalize(err.Error()))
		return nil
	}
	e.out.Success(fmt.Sprintf("Deleted: %s", removed))
	return nil
}

func (e *Editor) insert() error {
	item, err := e.input.NonEmptyString("Enter item to insert")
	if err != nil {
		return err
	}

	position := 1
	if !e.store.IsEmpty() {
		e.view()
		position, err = e.input.RangedInteger("Enter position to insert at", 1, e.store.Len()+1)
		if err != nil {
			return err
		}
	}

	if err := e.store.Insert(item, position); err != nil {
		e.out.Warning(capitalize(err.Error()))
	}
	return nil
}

func (e *Editor) move() error {
	if e.store.Len() < 2 {
		e.out.Warning(capitalize(liststore.ErrInsufficientItems.Error()))
		return nil
	}

	e.view()
	from, err := e.input.RangedInteger("Enter number of item to move", 1, e.store.Len())
	if err != nil {
		return err
	}
	to, err := e.input.RangedInteger("Enter new position", 1, e.store.Len())
	if err != nil {
		return err
	}

	if err := e.store.Move(from, to); err != nil {
		e.out.Warning(capitalize(err.Error()))
	}
	return nil
}

func (e *Editor) clear() error {
	if e.store.IsEmpty() {
		e.out.Warning(capitalize(liststore.ErrAlreadyEmpty.Error()))
		return nil
	}

	confirm, err := e.input.YesNo("Are you sure you want to clear the entire list")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := e.store.Clear(); err != nil {
		e.out.Warning(capitalize(err.Error()))
		return nil
	}
	e.out.Success("List cleared.")
	return nil
}

// open replaces the list with one read from disk, offering to save unsaved
// changes first. The current list is kept when saving or loading fails.
func (e *Editor) open(ctx context.Context) error {
	if e.hasUnsavedItems() {
		saveFirst, err := e.input.YesNo("You have unsaved changes. Save current list before loading a new one")
		if err != nil {
			return err
		}
		if saveFirst {
			saved, err := e.save(ctx)
			if err != nil {
				return err
			}
			if !saved {
				e.out.Warning("Open cancelled; the current list was not saved.")
				return nil
			}
		}
	}

	name, err := e.input.NonEmptyString(fmt.Sprintf("Enter base filename to open (without %s)", e.repo.FileName("")))
	if err != nil {
		return err
	}

	if err := e.OpenList(ctx, name); err != nil {
		e.out.Error(fmt.Sprintf("Error opening file: %v", err))
		return nil
	}
	e.view()
	return nil
}

// OpenList loads the saved list with the given base name into the store.
// On failure the store is left untouched.
func (e *Editor) OpenList(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	items, err := e.repo.Load(name)
	if err != nil {
		return err
	}

	e.store.Replace(items, e.repo.FileName(name))
	e.logger.Debug("list loaded", "path", e.repo.Path(name), "items", len(items))
	e.out.Success(fmt.Sprintf("File loaded: %s", e.repo.Path(name)))
	return nil
}

// save writes the list to its file, asking for a name the first time.
// It reports whether the list was written; file errors are shown to the
// user rather than returned.
func (e *Editor) save(ctx context.Context) (bool, error) {
	if e.store.IsEmpty() {
		e.out.Warning("List is empty. Nothing to save.")
		return false, nil
	}

	name := e.repo.BaseName(e.store.FileName())
	if e.store.FileName() == "" {
		var err error
		name, err = e.input.NonEmptyString(fmt.Sprintf("Enter base filename to save as (without %s)", e.repo.FileName("")))
		if err != nil {
			return false, err
		}
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := e.repo.Save(name, e.store.Items()); err != nil {
		e.logger.Warn("save failed", "name", name, "err", err)
		e.out.Error(fmt.Sprintf("Error saving file: %v", err))
		return false, nil
	}

	e.store.SetFileName(e.repo.FileName(name))
	e.store.MarkClean()
	e.logger.Debug("list saved", "path", e.repo.Path(name), "items", e.store.Len())
	e.out.Success(fmt.Sprintf("List saved to: %s", e.repo.Path(name)))
	return true, nil
}

func (e *Editor) quit(ctx context.Context) (bool, error) {
	if e.hasUnsavedItems() {
		save, err := e.input.YesNo("You have unsaved changes. Do you want to save before quitting")
		if err != nil {
			return false, err
		}
		if save {
			if _, err := e.save(ctx); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// hasUnsavedItems reports whether quitting or opening would lose work.
// A dirty but empty list has nothing worth saving.
func (e *Editor) hasUnsavedItems() bool {
	return e.store.Dirty() && !e.store.IsEmpty()
}

// endOfInput turns a closed input into a normal end of session.
func endOfInput(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("failed to read input: %w", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
