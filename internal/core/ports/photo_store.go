package ports

import "io"

// PhotoStore persists an uploaded pet photo and returns the public path the
// stored file is served under. The original filename is only used for its
// extension; the store picks the final name.
type PhotoStore interface {
	Save(filename string, r io.Reader) (string, error)
}
