package apiconnect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

type echoLocation struct {
	UnimplementedLocationServiceHandler
}

func (echoLocation) Geocode(_ context.Context, req *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error) {
	return connect.NewResponse(&api.GeocodeResponse{DisplayName: req.Msg.Address, Latitude: 1.25}), nil
}

func newLocationClient(t *testing.T) LocationServiceClient {
	t.Helper()
	path, handler := NewLocationServiceHandler(echoLocation{})
	if path != "/ordena.v1.LocationService/" {
		t.Fatalf("unexpected mount path %q", path)
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewLocationServiceClient(http.DefaultClient, server.URL+"/")
}

func TestJSONRoundTrip(t *testing.T) {
	client := newLocationClient(t)

	resp, err := client.Geocode(context.Background(), connect.NewRequest(&api.GeocodeRequest{Address: "1 Main St"}))
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if resp.Msg.DisplayName != "1 Main St" || resp.Msg.Latitude != 1.25 {
		t.Errorf("unexpected response: %+v", resp.Msg)
	}
}

func TestUnimplemented(t *testing.T) {
	client := newLocationClient(t)

	_, err := client.MapRestaurants(context.Background(), connect.NewRequest(&api.MapRestaurantsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Fatalf("expected Unimplemented, got %v", err)
	}
}

func TestUnknownProcedure(t *testing.T) {
	_, handler := NewLocationServiceHandler(echoLocation{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ordena.v1.LocationService/Nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
