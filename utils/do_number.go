package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fueldelivery/models"
)

// DOPrefixLayout formats the day part of a DO number (DDMMYY).
const DOPrefixLayout = "020106"

// NextDONumber returns today's next DO number, e.g. "010125-03" when
// "010125-01" and "010125-02" already exist. Suffixes that do not parse are
// ignored. The suffix is padded to two digits only; a 100th order on the
// same day prints as "-100".
func NextDONumber(orders []models.DeliveryOrder, now time.Time) string {
	prefix := now.Format(DOPrefixLayout)

	maxSeq := 0
	for _, o := range orders {
		id := strings.TrimSpace(o.DONumber)
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		seq, ok := parseSequence(id)
		if ok && seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s-%02d", prefix, maxSeq+1)
}

func parseSequence(id string) (int, bool) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0, false
	}
	tail := strings.TrimSpace(id[i+1:])
	if n, err := strconv.Atoi(tail); err == nil {
		return n, true
	}
	// Suffixes that went through a numeric column, e.g. "3.0".
	if f, err := strconv.ParseFloat(tail, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
