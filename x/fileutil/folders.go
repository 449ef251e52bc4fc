package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Vfs is the file system used to read and write files,
// tests may replace it with afero.NewMemMapFs()
var Vfs = afero.NewOsFs()

// FolderExists ensures that folder exists
func FolderExists(dir string) error {
	if dir == "" {
		return errors.Errorf("invalid parameter: dir")
	}

	stat, err := Vfs.Stat(dir)
	if err != nil {
		return errors.WithStack(err)
	}

	if !stat.IsDir() {
		return errors.Errorf("not a folder: %q", dir)
	}

	return nil
}

// FileExists ensures that file exists
func FileExists(file string) error {
	if file == "" {
		return errors.Errorf("invalid parameter: file")
	}

	stat, err := Vfs.Stat(file)
	if err != nil {
		return errors.WithStack(err)
	}

	if stat.IsDir() {
		return errors.Errorf("not a file: %q", file)
	}

	return nil
}

// WriteFile writes data to the file, creating the parent folder if needed
func WriteFile(file string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(file)
	if FolderExists(dir) != nil {
		err := Vfs.MkdirAll(dir, 0755)
		if err != nil {
			return errors.WithStack(err)
		}
	}
	err := afero.WriteFile(Vfs, file, data, perm)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
