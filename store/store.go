package store

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dataset file names inside the data directory.
const (
	productsFile  = "products.csv"
	salesFile     = "sales.csv"
	customersFile = "customers.csv"
	suppliersFile = "suppliers.csv"
	ordersFile    = "orders.csv"
)

// Store persists the five dashboard datasets as flat CSV files, one header
// row plus one row per record. Every mutation rewrites the whole file; a
// missing file is treated as an empty table and created lazily with a header
// only. Writers within this process are serialized by a mutex; there is no
// cross-process locking (single-operator assumption).
type Store struct {
	dataDir string
	mu      sync.Mutex
}

// New opens a store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// loadFile reads all rows of a dataset into out. A missing file is created
// with a header row and yields an empty table.
func loadFile[T any](s *Store, name string, out *[]T) error {
	path := s.path(name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.WithFields(log.Fields{"file": name}).Info("dataset missing, creating empty table")
		return saveFile(s, name, []T{})
	}
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			*out = nil
			return nil
		}
		return errors.Wrapf(err, "parse %s", name)
	}
	return nil
}

// saveFile rewrites a dataset in full. The rows are written to a temp file in
// the same directory and renamed over the target so a crashed write never
// leaves a truncated dataset behind.
func saveFile[T any](s *Store, name string, rows []T) error {
	path := s.path(name)
	tmp, err := os.CreateTemp(s.dataDir, name+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "create temp for %s", name)
	}
	tmpName := tmp.Name()

	if err := gocsv.MarshalFile(&rows, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "write %s", name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close %s", name)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replace %s", name)
	}
	return nil
}

// fileColumns returns the header columns of a dataset, or nil when the file
// does not exist or is empty.
func (s *Store) fileColumns(name string) ([]string, error) {
	f, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s header", name)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, nil
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// nextID implements the max+1 id scheme shared by every dataset.
func nextID[T any](rows []T, id func(T) int) int {
	max := 0
	for _, r := range rows {
		if v := id(r); v > max {
			max = v
		}
	}
	return max + 1
}
