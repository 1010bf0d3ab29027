package pricebook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps the price ledger and the order ledger in two CSV files.
//
// Files are created on first write; an absent file is an empty store.
type FileStore struct {
	PricesFile string
	OrdersFile string
}

// NewFileStore returns a store over the two files.
func NewFileStore(pricesFile, ordersFile string) *FileStore {
	return &FileStore{PricesFile: pricesFile, OrdersFile: ordersFile}
}

// LoadPrices opens and decodes the price file.
func (s *FileStore) LoadPrices() ([]PriceRecord, error) {
	f, err := os.Open(s.PricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "open", Path: s.PricesFile, Err: err}
	}
	defer f.Close()

	records, err := DecodePrices(f)
	if err != nil {
		return nil, &StoreError{Op: "read", Path: s.PricesFile, Err: err}
	}
	return records, nil
}

// SavePrices replaces the price file. The new content is written to a
// temporary file first, then renamed over the store.
func (s *FileStore) SavePrices(records []PriceRecord) error {
	err := writeFileAtomic(s.PricesFile, func(w io.Writer) error {
		return EncodePrices(w, records)
	})
	if err != nil {
		return &StoreError{Op: "write", Path: s.PricesFile, Err: err}
	}
	return nil
}

// LoadOrders opens and decodes the order file.
func (s *FileStore) LoadOrders() ([]OrderRecord, error) {
	f, err := os.Open(s.OrdersFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "open", Path: s.OrdersFile, Err: err}
	}
	defer f.Close()

	records, err := DecodeOrders(f)
	if err != nil {
		return nil, &StoreError{Op: "read", Path: s.OrdersFile, Err: err}
	}
	return records, nil
}

// AppendOrders appends records to the order file, writing the header first
// when the file is new or empty.
func (s *FileStore) AppendOrders(records []OrderRecord) error {
	filename := s.OrdersFile
	header := true
	if info, err := os.Stat(filename); err == nil {
		header = info.Size() == 0
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &StoreError{Op: "open", Path: filename, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return &StoreError{Op: "create", Path: filename, Err: err}
	}
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &StoreError{Op: "open", Path: filename, Err: err}
	}
	if err := EncodeOrders(f, records, header); err != nil {
		f.Close()
		return &StoreError{Op: "write", Path: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StoreError{Op: "write", Path: filename, Err: err}
	}
	return nil
}

// writeFileAtomic writes a file through a temporary file in the same folder.
func writeFileAtomic(filename string, encode func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer func() {
		// no-op once renamed
		if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("cannot remove temporary file %q: %v", tmp.Name(), err)
		}
	}()

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
