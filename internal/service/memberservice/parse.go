package memberservice

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
)

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

func parseAmount(value dto.Decimal) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(value)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// monthlyFee never goes below MinMonthlyFee; a missing or unreadable fee means the minimum.
func monthlyFee(value dto.Decimal) float64 {
	f, ok := parseAmount(value)
	if !ok {
		return domain.MinMonthlyFee
	}
	return math.Max(domain.MinMonthlyFee, f)
}

func parseBelt(field, value string) (domain.Belt, error) {
	if strings.TrimSpace(value) == "" {
		return domain.BeltWhite, nil
	}
	belt, err := domain.ParseBelt(value)
	if err != nil {
		return 0, domain.NewValidationError(field, "unknown belt")
	}
	return belt, nil
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
