package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"fueldelivery/models"
	"fueldelivery/utils"
)

// XLSXTableStore keeps the order table in a local workbook. A missing file
// reads as an empty table.
type XLSXTableStore struct {
	Path  string
	Sheet string
	mu    sync.Mutex
}

func NewXLSXTableStore(path, sheet string) *XLSXTableStore {
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &XLSXTableStore{Path: path, Sheet: sheet}
}

func (s *XLSXTableStore) ReadAll(_ context.Context) ([]models.DeliveryOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, models.StoreError("open workbook", err)
	}
	defer f.Close()

	orders, err := utils.ReadOrdersWorkbook(f, s.Sheet)
	if err != nil {
		return nil, models.StoreError("read workbook", err)
	}
	return orders, nil
}

// ReplaceAll writes to a temp file next to Path and renames it into place.
func (s *XLSXTableStore) ReplaceAll(_ context.Context, orders []models.DeliveryOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wb, err := utils.NewOrdersWorkbook(s.Sheet, orders)
	if err != nil {
		return models.StoreError("build workbook", err)
	}
	defer wb.Close()

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.StoreError("create workbook dir", err)
	}
	tmp, err := os.CreateTemp(dir, ".dbase-*.xlsx")
	if err != nil {
		return models.StoreError("create temp workbook", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := wb.Write(tmp); err != nil {
		tmp.Close()
		return models.StoreError("write workbook", err)
	}
	if err := tmp.Close(); err != nil {
		return models.StoreError("write workbook", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return models.StoreError("replace workbook", err)
	}
	return nil
}
