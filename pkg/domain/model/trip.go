package model

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/types"
)

// TripCategory is the closed set of trip kinds the bot handles
type TripCategory string

const (
	TripCategoryHike     TripCategory = "hike"
	TripCategoryBackpack TripCategory = "backpack"
)

// String returns the string representation
func (c TripCategory) String() string {
	return string(c)
}

// ParseTripCategory maps a menu selection value to a TripCategory
func ParseTripCategory(value string) (TripCategory, error) {
	switch TripCategory(value) {
	case TripCategoryHike:
		return TripCategoryHike, nil
	case TripCategoryBackpack:
		return TripCategoryBackpack, nil
	default:
		return "", goerr.New("unknown trip category", goerr.V("value", value))
	}
}

// TripRequest is the immutable value extracted from a submitted form.
// Category determines which of the category-specific fields are meaningful:
// Date/Distance for hikes, Duration/DateRange/SpotCount for backpack trips.
type TripRequest struct {
	Category TripCategory
	Location string

	// Hike fields
	Date     string
	Distance string // optional

	// Backpack fields
	Duration  string
	DateRange string
	SpotCount string // optional
}

// NewHikeRequest creates a hike TripRequest from form field values
func NewHikeRequest(location, date, distance string) (*TripRequest, error) {
	if location == "" {
		return nil, goerr.New("hike location is required")
	}
	if date == "" {
		return nil, goerr.New("hike date is required")
	}

	return &TripRequest{
		Category: TripCategoryHike,
		Location: location,
		Date:     date,
		Distance: distance,
	}, nil
}

// NewBackpackRequest creates a backpack TripRequest from form field values
func NewBackpackRequest(location, duration, dateRange, spotCount string) (*TripRequest, error) {
	if location == "" {
		return nil, goerr.New("backpack location is required")
	}
	if duration == "" {
		return nil, goerr.New("backpack duration is required")
	}
	if dateRange == "" {
		return nil, goerr.New("backpack date range is required")
	}

	return &TripRequest{
		Category:  TripCategoryBackpack,
		Location:  location,
		Duration:  duration,
		DateRange: dateRange,
		SpotCount: spotCount,
	}, nil
}

// Slug derives the trip's resource-name identifier from its location and
// date range. Only meaningful for backpack trips.
func (r *TripRequest) Slug() types.TripSlug {
	return NewTripSlug(r.Location, r.DateRange)
}

// maxSlugBytes keeps the slug well under Discord's 100-character limit for
// channel and role names, leaving room for the name prefixes.
const maxSlugBytes = 64

var slugHyphenRun = regexp.MustCompile(`-+`)

// NewTripSlug builds a stable identifier from location and date range.
// Lowercased; runs of whitespace, slashes, and dash punctuation collapse to a
// single hyphen; everything else non-alphanumeric is dropped.
func NewTripSlug(location, dateRange string) types.TripSlug {
	var b strings.Builder

	for _, r := range strings.ToLower(location + " " + dateRange) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '/' || r == '_' || unicode.Is(unicode.Pd, r):
			b.WriteRune('-')
		}
	}

	slug := slugHyphenRun.ReplaceAllString(b.String(), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugBytes {
		slug = slug[:maxSlugBytes]
		slug = strings.TrimRight(slug, "-")
	}

	return types.TripSlug(slug)
}
