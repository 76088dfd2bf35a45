package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"

	"github.com/piresc/ridebook/internal/pkg/models"
)

var errInvalidTimestamp = errors.New("invalid timestamp")

// isFalsy reports whether a raw JSON value is absent or one of
// null, false, 0 or "".
func isFalsy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true
	}

	switch string(raw) {
	case "null", "false", `""`:
		return true
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n == 0
	}
	return false
}

// parseCoordinates decodes a {lat, lng} object. Both values must be non-zero
// numbers; 0 is rejected like any other falsy value.
func parseCoordinates(raw json.RawMessage) (models.Coordinates, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return models.Coordinates{}, false
	}

	lat, ok := truthyNumber(fields["lat"])
	if !ok {
		return models.Coordinates{}, false
	}
	lng, ok := truthyNumber(fields["lng"])
	if !ok {
		return models.Coordinates{}, false
	}

	return models.Coordinates{Lat: lat, Lng: lng}, true
}

func truthyNumber(raw json.RawMessage) (float64, bool) {
	if isFalsy(raw) {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// maxUnixMillis bounds numeric timestamps to +-100,000,000 days around the epoch
const maxUnixMillis = 8.64e15

// normalizeTimestamp accepts a date string or a unix-milliseconds number and
// returns the standardized UTC form
func normalizeTimestamp(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		t, err := models.ParseTime(s)
		if err != nil {
			return "", errInvalidTimestamp
		}
		return models.FormatTime(t), nil
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxUnixMillis {
			return "", errInvalidTimestamp
		}
		return models.FormatTime(models.FromUnixMillis(int64(ms))), nil
	}

	return "", errInvalidTimestamp
}
