package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// fileTypes fetches and caches the server's category table, so activation
// dispatches exactly the way the server classifies extensions.
func (a *App) fileTypes(ctx context.Context) (map[string][]string, error) {
	if a.types != nil {
		return a.types, nil
	}
	table, err := a.api.FileTypes(ctx)
	if err != nil {
		return nil, err
	}
	a.types = table
	return table, nil
}

func (a *App) classify(ctx context.Context, name string) string {
	table, err := a.fileTypes(ctx)
	if err != nil {
		log.Println(err.Error())
		return "default"
	}
	// The table stores extensions with the leading dot, same shape as
	// filepath.Ext returns.
	ext := strings.ToLower(filepath.Ext(name))
	for category, exts := range table {
		for _, e := range exts {
			if e == ext {
				return category
			}
		}
	}
	return "default"
}

// Open views a file in the current directory: text files print their
// content, viewer types (image, pdf, office) print their metadata, and
// anything else points the user at get.
func (a *App) Open(ctx context.Context, name string) error {
	rel := a.nav.Child(name)

	switch category := a.classify(ctx, name); category {
	case "code":
		f, err := a.api.ReadCode(ctx, rel)
		if err != nil {
			log.Println(err.Error())
			return err
		}
		fmt.Printf("--- %s ---\n%s\n", f.Name, f.Content)
		return nil

	case "image", "pdf":
		return a.printInfo(ctx, category, rel)

	case "word", "excel", "powerpoint":
		return a.printInfo(ctx, "office", rel)

	default:
		fmt.Printf("No viewer for %s; use: get %s\n", name, name)
		return nil
	}
}

func (a *App) printInfo(ctx context.Context, kind, rel string) error {
	info, err := a.api.Info(ctx, kind, rel)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("%s  type=%s  size=%d  modified=%s\n",
		info.Name, info.Type, info.Size, info.Modified.Format("2006-01-02 15:04"))
	return nil
}

// Edit replaces the content of a text file in the current directory.
// Requires a login; the server rejects the save otherwise.
func (a *App) Edit(ctx context.Context, name string) error {
	rel := a.nav.Child(name)

	f, err := a.api.ReadCode(ctx, rel)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("--- current content of %s ---\n%s\n", f.Name, f.Content)

	content, err := GetMultiline(a.reader, "Enter replacement content", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.SaveCode(ctx, rel, content); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Saved")
	return nil
}

// Get downloads a file from the current directory into dest (defaults to
// the file's own name in the working directory).
func (a *App) Get(ctx context.Context, name, dest string) error {
	if dest == "" {
		dest = name
	}

	out, err := os.Create(dest)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	defer out.Close()

	n, err := a.api.Download(ctx, a.nav.Child(name), out)
	if err != nil {
		log.Println(err.Error())
		os.Remove(dest)
		return err
	}
	fmt.Printf("Saved %d bytes to %s\n", n, dest)
	return nil
}

// Types prints the server's file type table.
func (a *App) Types(ctx context.Context) error {
	table, err := a.fileTypes(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	for category, exts := range table {
		fmt.Printf("%-12s %s\n", category, strings.Join(exts, ", "))
	}
	return nil
}
