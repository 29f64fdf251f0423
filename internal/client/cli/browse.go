package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/fileexplorer/internal/client/api"
)

// List prints the current directory. Folders come first, marked with a
// trailing slash; files show their size in bytes.
func (a *App) List(ctx context.Context) error {
	l, err := a.api.List(ctx, a.nav.Current())
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, e := range l.Files {
		fmt.Println(formatEntry(e))
	}
	return nil
}

func formatEntry(e api.Entry) string {
	if e.Type == "folder" {
		return e.Name + "/"
	}
	size := int64(0)
	if e.Size != nil {
		size = *e.Size
	}
	return fmt.Sprintf("%-40s %10d  %s", e.Name, size, e.Modified.Format("2006-01-02 15:04"))
}

// Cd enters a child folder of the current directory. The target is listed
// first, so a bad name fails without polluting the history.
func (a *App) Cd(ctx context.Context, name string) error {
	target := a.nav.Child(name)
	if _, err := a.api.List(ctx, target); err != nil {
		log.Println(err.Error())
		return err
	}
	a.nav.NavigateTo(target)
	return a.List(ctx)
}

// Back moves one step back in the visit history.
func (a *App) Back(ctx context.Context) error {
	if _, ok := a.nav.Back(); !ok {
		fmt.Println("Already at the beginning of history")
		return nil
	}
	return a.List(ctx)
}

// Forward moves one step forward in the visit history.
func (a *App) Forward(ctx context.Context) error {
	if _, ok := a.nav.Forward(); !ok {
		fmt.Println("Already at the end of history")
		return nil
	}
	return a.List(ctx)
}

// Up navigates to the parent folder.
func (a *App) Up(ctx context.Context) error {
	a.nav.Up()
	return a.List(ctx)
}
