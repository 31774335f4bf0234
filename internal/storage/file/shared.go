package file

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/record"
)

// Filer persists simulation records for the presentation layer.
type Filer interface {
	SaveLastRun(r *record.Record) error
	LoadLastRun() (*record.Record, error)
	Export(r *record.Record) (string, error)
	Import(path string) (*record.Record, error)
}

var _ Filer = (*RecordStore)(nil)
