//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenImage shows the native file picker filtered to common picture
// formats and returns the selected file's bytes.
func OpenImage(title string) (Result, error) {
	path, err := dialog.File().Title(title).
		Filter("Images", "png", "jpg", "jpeg").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}
