package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/models"
)

type fakeGeocoder map[string]geo.Place

func (f fakeGeocoder) Geocode(_ context.Context, address string) (geo.Place, error) {
	p, ok := f[address]
	if !ok {
		return geo.Place{}, geo.ErrAddressNotFound
	}
	return p, nil
}

type openRecorder struct {
	opened []string
}

func (o *openRecorder) Open(_ context.Context, uri string) error {
	o.opened = append(o.opened, uri)
	return nil
}

func TestLocatorShow(t *testing.T) {
	opener := &openRecorder{}
	l := NewLocator(fakeGeocoder{
		"1 Main St": {Coordinates: geo.Coordinates{Latitude: 1.5, Longitude: 2.5}},
	}, opener)

	loc, err := l.Show(context.Background(), " 1 Main St ")
	require.NoError(t, err)
	assert.Equal(t, "geo:1.5,2.5?q=1.5,2.5(1%20Main%20St)", loc.URI)
	assert.Equal(t, []string{loc.URI}, opener.opened)
}

func TestLocatorNotFoundOpensNothing(t *testing.T) {
	opener := &openRecorder{}
	l := NewLocator(fakeGeocoder{}, opener)

	_, err := l.Show(context.Background(), "nowhere")
	assert.ErrorIs(t, err, geo.ErrAddressNotFound)
	assert.Empty(t, opener.opened)

	_, err = l.Show(context.Background(), "  ")
	_, ok := AsFieldError(err)
	assert.True(t, ok)
	assert.Empty(t, opener.opened)
}

func TestLocatorMapAll(t *testing.T) {
	opener := &openRecorder{}
	l := NewLocator(fakeGeocoder{}, opener)

	uri, err := l.MapAll(context.Background(), []models.Restaurant{
		{Name: "A", Address: "1 Main St"},
		{Name: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, "geo:0,0?q=1%20Main%20St", uri)
	assert.Equal(t, []string{uri}, opener.opened)

	_, err = l.MapAll(context.Background(), []models.Restaurant{{Name: "B"}})
	assert.ErrorIs(t, err, geo.ErrNoAddresses)
}

func TestLocatorWithoutMapApp(t *testing.T) {
	l := NewLocator(fakeGeocoder{"x": {}}, nil)

	loc, err := l.Show(context.Background(), "x")
	assert.ErrorIs(t, err, geo.ErrNoMapApp)
	assert.NotEmpty(t, loc.URI)
}
