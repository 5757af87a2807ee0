package repository

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/sheets/v4"

	"fueldelivery/models"
	"fueldelivery/utils"
)

var spreadsheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ParseSpreadsheetID accepts a full Google Sheets URL or a bare ID.
func ParseSpreadsheetID(urlOrID string) (string, error) {
	s := strings.TrimSpace(urlOrID)
	if m := spreadsheetIDRe.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	if s != "" && !strings.ContainsAny(s, "/?#") {
		return s, nil
	}
	return "", errors.Wrapf(models.ErrConfigMissing, "no spreadsheet id in %q", urlOrID)
}

// SheetsTableStore keeps the order table in one worksheet of a Google
// spreadsheet.
type SheetsTableStore struct {
	Service       *sheets.Service
	SpreadsheetID string
	Worksheet     string
}

func NewSheetsTableStore(svc *sheets.Service, spreadsheetID, worksheet string) *SheetsTableStore {
	return &SheetsTableStore{Service: svc, SpreadsheetID: spreadsheetID, Worksheet: worksheet}
}

func (s *SheetsTableStore) sheetRange(cells string) string {
	name := strings.ReplaceAll(s.Worksheet, "'", "''")
	if cells == "" {
		return fmt.Sprintf("'%s'", name)
	}
	return fmt.Sprintf("'%s'!%s", name, cells)
}

// ReadAll loads every row. An empty worksheet gets the header row written
// and reads as an empty table. Date cells are fetched as serial numbers so
// the spreadsheet locale cannot swap day and month.
func (s *SheetsTableStore) ReadAll(ctx context.Context) ([]models.DeliveryOrder, error) {
	lastCol := string(rune('A' + len(models.Columns) - 1))
	resp, err := s.Service.Spreadsheets.Values.Get(s.SpreadsheetID, s.sheetRange("A:"+lastCol)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, models.StoreError("read worksheet", err)
	}

	if len(resp.Values) == 0 {
		log.Info().Str("worksheet", s.Worksheet).Msg("worksheet empty, writing header row")
		if err := s.write(ctx, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}

	dateCols := dateColumns(resp.Values[0])
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		cells := make([]string, len(raw))
		for j, v := range raw {
			if i > 0 && dateCols[j] {
				cells[j] = dateCellText(v)
				continue
			}
			cells[j] = cellText(v)
		}
		rows[i] = cells
	}
	return utils.OrdersFromRows(rows), nil
}

// ReplaceAll clears the worksheet and writes header plus rows.
func (s *SheetsTableStore) ReplaceAll(ctx context.Context, orders []models.DeliveryOrder) error {
	_, err := s.Service.Spreadsheets.Values.Clear(s.SpreadsheetID, s.sheetRange(""), &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return models.StoreError("clear worksheet", err)
	}
	return s.write(ctx, orders)
}

func (s *SheetsTableStore) write(ctx context.Context, orders []models.DeliveryOrder) error {
	values := make([][]interface{}, 0, len(orders)+1)
	header := make([]interface{}, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}
	values = append(values, header)
	for _, o := range orders {
		values = append(values, utils.OrderRowValues(o))
	}

	_, err := s.Service.Spreadsheets.Values.Update(s.SpreadsheetID, s.sheetRange("A1"), &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return models.StoreError("write worksheet", err)
	}
	return nil
}

// dateColumns marks the header positions holding dates.
func dateColumns(header []interface{}) map[int]bool {
	cols := make(map[int]bool, 2)
	for i, h := range header {
		switch strings.TrimSpace(cellText(h)) {
		case models.ColDate, models.ColPOClientDate:
			cols[i] = true
		}
	}
	return cols
}

// dateCellText turns a date serial into YYYY-MM-DD. Text cells are left for
// models.ParseDate.
func dateCellText(v interface{}) string {
	serial, ok := v.(float64)
	if !ok {
		return cellText(v)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return cellText(v)
	}
	return t.Format(models.DateLayout)
}

func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
