package publish

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/storacha/appstore/pkg/model"
)

// MaxPackageSize is the largest package accepted for upload (100 MiB).
const MaxPackageSize = 104857600

// Upload names of the four blobs that make up a listing.
const (
	NamePath        = "AppName.txt"
	DescriptionPath = "Describe.txt"
	IconPath        = "icon.png"
	PackagePath     = "app.zip"
)

var (
	ErrPackageTooLarge = errors.New("package exceeds 100 MiB")
	ErrIncompleteForm  = errors.New("incomplete form")
	ErrNotUpdatable    = errors.New("listing can no longer be updated")
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// File is a chosen file. Size is declared by the caller and drives the
// progress estimate only.
type File struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// OpenFile describes the file at path.
func OpenFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &File{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// CheckPackageSize rejects packages larger than MaxPackageSize.
func CheckPackageSize(size int64) error {
	if size > MaxPackageSize {
		return fmt.Errorf("%d bytes: %w", size, ErrPackageTooLarge)
	}
	return nil
}

// Form is the user input for a create or an update.
type Form struct {
	Name        string
	Description string
	Icon        *File
	Package     *File
}

// SetPackage chooses the package file. An oversized file is refused and the
// previous choice is cleared.
func (f *Form) SetPackage(file *File) error {
	if file != nil {
		if err := CheckPackageSize(file.Size); err != nil {
			f.Package = nil
			return err
		}
	}
	f.Package = file
	return nil
}

// Reset clears the form after a successful submit. An update keeps the text
// fields so the user sees what was saved.
func (f *Form) Reset(mode Mode) {
	if mode != ModeUpdate {
		f.Name = ""
		f.Description = ""
	}
	f.Icon = nil
	f.Package = nil
}

// Existing is the stored state an update starts from.
type Existing struct {
	Listing     model.Listing
	Description string
}

// validate returns changed=false for an update that would not change
// anything.
func (f *Form) validate(mode Mode, existing *Existing) (changed bool, err error) {
	if f.Package != nil {
		if err := CheckPackageSize(f.Package.Size); err != nil {
			return false, err
		}
	}

	switch mode {
	case ModeCreate:
		var merr error
		if strings.TrimSpace(f.Name) == "" {
			merr = multierror.Append(merr, errors.New("name is required"))
		}
		if strings.TrimSpace(f.Description) == "" {
			merr = multierror.Append(merr, errors.New("description is required"))
		}
		if f.Icon == nil {
			merr = multierror.Append(merr, errors.New("icon is required"))
		}
		if f.Package == nil {
			merr = multierror.Append(merr, errors.New("package is required"))
		}
		if merr != nil {
			return false, fmt.Errorf("%w: %w", ErrIncompleteForm, merr)
		}
		return true, nil
	case ModeUpdate:
		if existing == nil {
			return false, fmt.Errorf("%w: no listing to update", ErrIncompleteForm)
		}
		if !existing.Listing.CanUpdate() {
			return false, fmt.Errorf("listing %d is %s: %w", existing.Listing.ID, existing.Listing.Status, ErrNotUpdatable)
		}
		if f.Name == existing.Listing.Name && f.Description == existing.Description && f.Icon == nil && f.Package == nil {
			return false, nil
		}
		var merr error
		if strings.TrimSpace(f.Name) == "" {
			merr = multierror.Append(merr, errors.New("name is required"))
		}
		if strings.TrimSpace(f.Description) == "" {
			merr = multierror.Append(merr, errors.New("description is required"))
		}
		if merr != nil {
			return false, fmt.Errorf("%w: %w", ErrIncompleteForm, merr)
		}
		return true, nil
	}
	return false, fmt.Errorf("unknown mode: %s", mode)
}
