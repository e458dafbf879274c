package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

func TestGeocode(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.location.Geocode(ctx, connect.NewRequest(&api.GeocodeRequest{Address: "1 Main St"}))
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if resp.Msg.Latitude != 52.5 || resp.Msg.Longitude != 13.4 {
		t.Errorf("unexpected coordinates: %+v", resp.Msg)
	}
	if want := "geo:52.5,13.4?q=52.5,13.4(1%20Main%20St)"; resp.Msg.Uri != want {
		t.Errorf("expected uri %q, got %q", want, resp.Msg.Uri)
	}

	_, err = c.location.Geocode(ctx, connect.NewRequest(&api.GeocodeRequest{Address: "nowhere"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.location.Geocode(ctx, connect.NewRequest(&api.GeocodeRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestMapRestaurants(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.location.MapRestaurants(ctx, connect.NewRequest(&api.MapRestaurantsRequest{
		Restaurants: []*api.Restaurant{
			{Name: "A", Address: "1 Main St"},
			{Name: "B"},
			{Name: "C", Address: "Via Roma 2"},
		},
	}))
	if err != nil {
		t.Fatalf("MapRestaurants failed: %v", err)
	}
	if resp.Msg.Markers != 2 {
		t.Errorf("expected 2 markers, got %d", resp.Msg.Markers)
	}
	if want := "geo:0,0?q=1%20Main%20St|Via%20Roma%202"; resp.Msg.Uri != want {
		t.Errorf("expected uri %q, got %q", want, resp.Msg.Uri)
	}

	_, err = c.location.MapRestaurants(ctx, connect.NewRequest(&api.MapRestaurantsRequest{
		Restaurants: []*api.Restaurant{{Name: "B"}},
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}
