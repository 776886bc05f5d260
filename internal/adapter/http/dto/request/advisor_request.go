package request

import (
	"errors"
	"strings"
	"time"

	"rentpulse/internal/domain/entities"
)

var ErrInvalidStayDates = errors.New("invalid stay dates")

// AdvisorRequest asks for a nightly-price recommendation. Dates accept
// "2006-01-02" or RFC3339; both optional (tomorrow, one night).
type AdvisorRequest struct {
	PropertyID string  `json:"property_id"`
	City       string  `json:"city" binding:"required"`
	BasePrice  float64 `json:"base_price" binding:"required"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
}

func (r AdvisorRequest) ToQuery() (entities.AdvisorQuery, error) {
	checkIn, err := parseStayDate(r.CheckIn)
	if err != nil {
		return entities.AdvisorQuery{}, ErrInvalidStayDates
	}
	checkOut, err := parseStayDate(r.CheckOut)
	if err != nil {
		return entities.AdvisorQuery{}, ErrInvalidStayDates
	}
	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		return entities.AdvisorQuery{}, ErrInvalidStayDates
	}

	return entities.AdvisorQuery{
		PropertyID: strings.TrimSpace(r.PropertyID),
		City:       strings.TrimSpace(r.City),
		BasePrice:  r.BasePrice,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

func parseStayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
