package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/codec"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/record"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

const LastRunFile = "last-simulation.json"

/**
* RecordStore keeps the last run and exported runs under one directory.
* The last run is always plain JSON; exports use the configured compression.
**/
type RecordStore struct {
	Dir         string
	Compression codec.Compression
	log         *slog.Logger
}

func NewRecordStore(dir string, compression codec.Compression, logger *slog.Logger) (*RecordStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("[store] [NewRecordStore] empty directory")
	}
	if logger == nil {
		logger = util.DiscardLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("[store] [NewRecordStore] create %s: %w", dir, err)
	}
	return &RecordStore{Dir: dir, Compression: compression, log: logger}, nil
}

/* LAST RUN */
func (rs *RecordStore) SaveLastRun(r *record.Record) error {
	if rs == nil {
		return util.ErrStoreNil
	}
	data, err := r.Serialize()
	if err != nil {
		return err
	}
	path := filepath.Join(rs.Dir, LastRunFile)
	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("[store] [SaveLastRun] %w", err)
	}
	rs.log.Debug("saved last run", "path", path, "algorithm", r.Algorithm, "states", len(r.States))
	return nil
}

func (rs *RecordStore) LoadLastRun() (*record.Record, error) {
	if rs == nil {
		return nil, util.ErrStoreNil
	}
	path := filepath.Join(rs.Dir, LastRunFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, util.ErrNoLastRun
	}
	if err != nil {
		return nil, fmt.Errorf("[store] [LoadLastRun] read %s: %w", path, err)
	}
	r, err := record.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("[store] [LoadLastRun] %s: %w", path, err)
	}
	return r, nil
}

/* EXPORT */
func (rs *RecordStore) Export(r *record.Record) (string, error) {
	if rs == nil {
		return "", util.ErrStoreNil
	}
	data, err := r.Serialize()
	if err != nil {
		return "", err
	}
	if rs.Compression != codec.CompressionNone {
		if data, err = codec.Encode(data, rs.Compression); err != nil {
			return "", fmt.Errorf("[store] [Export] %w", err)
		}
	}

	path := filepath.Join(rs.Dir, r.Filename(rs.Compression.Ext()))
	if err := writeAtomic(path, data); err != nil {
		return "", fmt.Errorf("[store] [Export] %w", err)
	}
	rs.log.Info("exported simulation", "path", path, "compression", rs.Compression.String(), "bytes", len(data))
	return path, nil
}

// Import reads an exported file, compressed or not.
func (rs *RecordStore) Import(path string) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[store] [Import] read %s: %w", path, err)
	}
	if codec.IsFramed(data) {
		if data, err = codec.Decode(data); err != nil {
			return nil, fmt.Errorf("[store] [Import] %s: %w", path, err)
		}
	}
	r, err := record.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("[store] [Import] %s: %w", path, err)
	}
	return r, nil
}

// ===================== HELPER FUNCTION =====================
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pagesim-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	var werr error
	if _, e := tmp.Write(data); e != nil {
		werr = errors.Join(werr, fmt.Errorf("write: %w", e))
	}
	if e := tmp.Sync(); e != nil {
		werr = errors.Join(werr, fmt.Errorf("sync: %w", e))
	}
	if e := tmp.Close(); e != nil {
		werr = errors.Join(werr, fmt.Errorf("close: %w", e))
	}
	if werr != nil {
		os.Remove(tmpName)
		return werr
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
