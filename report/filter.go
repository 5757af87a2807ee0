package report

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"fueldelivery/models"
)

// MinSearchLen is the shortest search text that filters anything.
const MinSearchLen = 3

// Filter selects orders for the report. An empty slice leaves that
// predicate off.
type Filter struct {
	Years        []int    `json:"years"`
	Transporters []string `json:"transporters"`
	FuelTypes    []string `json:"fuel_types"`
	Search       string   `json:"search"`
}

// Summary is the filtered table with its totals.
type Summary struct {
	Rows     []models.DeliveryOrder `json:"rows"`
	Count    int                    `json:"count"`
	TotalQty float64                `json:"total_qty"`
}

// Options lists the values the filters can take for a table.
type Options struct {
	Years        []int    `json:"years"`
	Transporters []string `json:"transporters"`
	FuelTypes    []string `json:"fuel_types"`
}

// Apply keeps the orders matching every active predicate, in table order.
// The year predicate drops rows without a valid Date.
func Apply(orders []models.DeliveryOrder, f Filter) Summary {
	years := intSet(f.Years)
	transporters := stringSet(f.Transporters)
	fuels := stringSet(f.FuelTypes)
	search := ""
	if s := strings.TrimSpace(f.Search); utf8.RuneCountInString(s) >= MinSearchLen {
		search = strings.ToLower(s)
	}

	out := Summary{Rows: make([]models.DeliveryOrder, 0, len(orders))}
	for _, o := range orders {
		if years != nil && (!o.Date.Valid() || !years[o.Date.Time.Year()]) {
			continue
		}
		if transporters != nil && !transporters[o.Transporter] {
			continue
		}
		if fuels != nil && !fuels[o.FuelType] {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		out.Rows = append(out.Rows, o)
		out.TotalQty += o.Qty.OrZero()
	}
	out.Count = len(out.Rows)
	return out
}

func matchesSearch(o models.DeliveryOrder, lower string) bool {
	return strings.Contains(strings.ToLower(o.DONumber), lower) ||
		strings.Contains(strings.ToLower(o.Client), lower) ||
		strings.Contains(strings.ToLower(o.DriverName), lower)
}

// BuildOptions returns distinct years (newest first, valid dates only) and
// sorted transporters and fuel types.
func BuildOptions(orders []models.DeliveryOrder) Options {
	years := map[int]bool{}
	transporters := map[string]bool{}
	fuels := map[string]bool{}
	for _, o := range orders {
		if o.Date.Valid() {
			years[o.Date.Time.Year()] = true
		}
		transporters[o.Transporter] = true
		fuels[o.FuelType] = true
	}

	opts := Options{
		Years:        make([]int, 0, len(years)),
		Transporters: sortedKeys(transporters),
		FuelTypes:    sortedKeys(fuels),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(opts.Years)))
	return opts
}

// ParseFilter reads year, transporter, fuel_type (repeatable) and q from a
// query string.
func ParseFilter(q url.Values) (Filter, error) {
	f := Filter{
		Transporters: q["transporter"],
		FuelTypes:    q["fuel_type"],
		Search:       q.Get("q"),
	}
	for _, raw := range q["year"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			y, err := strconv.Atoi(part)
			if err != nil {
				return Filter{}, models.ValidationError("year must be a number: " + part)
			}
			f.Years = append(f.Years, y)
		}
	}
	return f, nil
}

func intSet(vals []int) map[int]bool {
	if len(vals) == 0 {
		return nil
	}
	m := make(map[int]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

func stringSet(vals []string) map[string]bool {
	if len(vals) == 0 {
		return nil
	}
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
