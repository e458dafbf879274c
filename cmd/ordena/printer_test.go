package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/listview"
	"github.com/mmynk/ordena/internal/models"
)

func TestRowPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := &rowPrinter{w: &buf}
	list := listview.New(listview.ProductRow(2), printer, nil)
	printer.rows = list.Rows

	list.Replace([]models.Product{{Name: "Salt", Unit: "kg", Quantity: 1}})
	list.Append(models.Product{Name: "Rice", Unit: "kg", Quantity: 9})
	if _, err := list.Remove(0); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"[0]", "Salt", "1.00", "LOW", "+ [1] Rice", "- [0] removed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&inventory.FieldError{Field: "name", Message: "must not be empty"}, "invalid name: must not be empty"},
		{fmt.Errorf("open: %w", inventory.ErrMissingRestaurant), "no such restaurant"},
		{geo.ErrNoMapApp, "no map application available"},
		{fmt.Errorf("plain"), "plain"},
	}
	for _, tt := range tests {
		if got := describe(tt.err); got != tt.want {
			t.Errorf("describe(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
