package geo

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmynk/ordena/internal/models"
)

// ErrNoAddresses is returned when none of the restaurants to map has an address.
var ErrNoAddresses = errors.New("no restaurant has an address")

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// URI returns a single-marker geo: URI, e.g. geo:52.5,13.4?q=52.5,13.4(Main%20St%201).
func URI(c Coordinates, label string) string {
	pos := formatCoord(c.Latitude) + "," + formatCoord(c.Longitude)
	uri := "geo:" + pos + "?q=" + pos
	if label = strings.TrimSpace(label); label != "" {
		uri += "(" + url.PathEscape(label) + ")"
	}
	return uri
}

// MultiMarkerURI returns one geo:0,0 URI listing every non-blank address, separated by '|'.
func MultiMarkerURI(addresses []string) (string, error) {
	var escaped []string
	for _, a := range addresses {
		if a = strings.TrimSpace(a); a != "" {
			escaped = append(escaped, url.PathEscape(a))
		}
	}
	if len(escaped) == 0 {
		return "", ErrNoAddresses
	}
	return "geo:0,0?q=" + strings.Join(escaped, "|"), nil
}

// MapURI builds the multi-marker URI for restaurants. Restaurants without an address are skipped.
func MapURI(restaurants []models.Restaurant) (string, int, error) {
	addresses := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		if r.HasAddress() {
			addresses = append(addresses, r.Address)
		}
	}
	uri, err := MultiMarkerURI(addresses)
	return uri, len(addresses), err
}
