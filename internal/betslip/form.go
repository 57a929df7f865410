package betslip

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"betbuddies/internal/odds"
)

// FormData is the validated result of the details modal.
type FormData struct {
	Title        string
	Description  string
	Units        float64
	AmericanOdds string
	DecimalOdds  float64
	Link         string
}

var (
	errMissingTitle       = errors.New("game/event name is required")
	errMissingDescription = errors.New("a description of the bet is required")
	errInvalidUnits       = errors.New("units must be a positive number")
	errInvalidOdds        = errors.New("invalid American odds, enter a whole number like +150 or -200")
	errInvalidLink        = errors.New("betslip link must start with http")
)

// parseForm validates the raw modal inputs and builds a FormData. The
// returned error carries a user-facing message for the failing field.
func parseForm(title, description, unitsRaw, oddsRaw, link string) (*FormData, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	unitsRaw = strings.TrimSpace(unitsRaw)
	oddsRaw = strings.TrimSpace(oddsRaw)
	link = strings.TrimSpace(link)

	if title == "" {
		return nil, errMissingTitle
	}
	if description == "" {
		return nil, errMissingDescription
	}

	// ParseFloat accepts "NaN" and "Inf", which would poison every profit
	// aggregate downstream.
	units, err := strconv.ParseFloat(unitsRaw, 64)
	if err != nil || math.IsNaN(units) || math.IsInf(units, 0) || units <= 0 {
		return nil, errInvalidUnits
	}

	decimal, err := odds.AmericanToDecimal(oddsRaw)
	if err != nil {
		return nil, errInvalidOdds
	}

	if link != "" && !strings.HasPrefix(link, "http") {
		return nil, errInvalidLink
	}

	return &FormData{
		Title:        title,
		Description:  description,
		Units:        units,
		AmericanOdds: oddsRaw,
		DecimalOdds:  decimal,
		Link:         link,
	}, nil
}
