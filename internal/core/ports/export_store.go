package ports

import (
	"io"
)

// ExportStore defines the contract for materializing export files for the
// lifetime of one run. Store writes the content under the given name and
// returns the resulting path; Remove releases the file once dispatch is
// done.
type ExportStore interface {
	// Store materializes a file with the given name, streaming its content
	// through write. Returns the path of the created file.
	Store(name string, write func(io.Writer) error) (string, error)

	// Remove deletes a previously stored file. Removing a missing file is
	// not an error.
	Remove(path string) error
}
