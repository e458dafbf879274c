package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/mmynk/ordena/internal/calculator"
	"github.com/mmynk/ordena/internal/inventory"
)

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func wantArgs(args []string, n int, names string) error {
	if len(args) != n {
		return fmt.Errorf("expected %s", names)
	}
	return nil
}

func (a *app) restaurantList(printer *rowPrinter) *inventory.RestaurantList {
	list := inventory.NewRestaurantList(a.restaurants, printer, nil, inventory.WithUndoWindow(a.cfg.UndoWindow))
	printer.rows = list.Rows
	return list
}

func (a *app) productBoard(ctx context.Context, restaurantArg string, printer *rowPrinter) (*inventory.ProductBoard, error) {
	id, err := parseInt("restaurant id", restaurantArg)
	if err != nil {
		return nil, err
	}
	board := inventory.NewProductBoard(a.products, a.monitor, printer)
	printer.rows = board.Rows
	if err := board.Open(ctx, id); err != nil {
		return nil, err
	}
	return board, nil
}

func runList(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 0, "no arguments"); err != nil {
		return err
	}
	return a.restaurantList(&rowPrinter{w: os.Stdout}).Load(ctx)
}

func runAdd(ctx context.Context, a *app, args []string) error {
	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	var in inventory.RestaurantInput
	fs.StringVar(&in.Name, "name", "", "restaurant name")
	fs.StringVar(&in.Description, "description", "", "short description")
	fs.StringVar(&in.Address, "address", "", "street address")
	photo := fs.String("photo", "", "JPEG file to attach")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := inventory.NewAddRestaurantForm(a.photos, inventory.AllowAll)
	if *photo != "" {
		data, err := os.ReadFile(*photo)
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		if _, err := form.AttachPhoto(ctx, data); err != nil {
			return err
		}
	}

	r, err := form.Submit(in)
	if err != nil {
		return err
	}

	list := a.restaurantList(&rowPrinter{w: os.Stdout})
	if err := list.Load(ctx); err != nil {
		return err
	}
	_, err = list.MergeAdded(ctx, r)
	return err
}

func runDelete(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 1, "POSITION"); err != nil {
		return err
	}
	pos, err := parseInt("position", args[0])
	if err != nil {
		return err
	}

	printer := &rowPrinter{w: os.Stdout}
	list := a.restaurantList(printer)
	if err := list.Load(ctx); err != nil {
		return err
	}

	pending, err := list.Swipe(ctx, int(pos))
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %q. Press Enter within %s to undo.\n", pending.Restaurant.Name, list.UndoWindow())

	if !waitForEnter(ctx, time.Until(pending.Deadline)) {
		return nil
	}
	restored, err := list.Undo(ctx, pending)
	if err != nil {
		return err
	}
	fmt.Printf("Restored %q as #%d.\n", restored.Name, restored.ID)
	return nil
}

// waitForEnter reports whether a line was read from stdin before timeout.
func waitForEnter(ctx context.Context, timeout time.Duration) bool {
	line := make(chan struct{}, 1)
	go func() {
		if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err == nil {
			line <- struct{}{}
		}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-line:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

func runProducts(ctx context.Context, a *app, args []string) error {
	fs := pflag.NewFlagSet("products", pflag.ContinueOnError)
	showMap := fs.Bool("map", false, "show the restaurant's address on a map instead of listing stock")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 1, "RESTAURANT_ID"); err != nil {
		return err
	}
	board, err := a.productBoard(ctx, fs.Arg(0), &rowPrinter{w: os.Stdout})
	if err != nil {
		return err
	}
	if *showMap {
		req, err := board.MapRequest(ctx)
		if err != nil {
			return err
		}
		return openMap(ctx, a, req)
	}
	fmt.Printf("%s\n", board.Restaurant().Name)
	alerts, err := board.Load(ctx)
	if err != nil {
		return err
	}
	if alerts > 0 {
		fmt.Printf("%d low-stock alert(s) raised\n", alerts)
	}
	return nil
}

func runAddProduct(ctx context.Context, a *app, args []string) error {
	fs := pflag.NewFlagSet("add-product", pflag.ContinueOnError)
	name := fs.String("name", "", "product name")
	unit := fs.String("unit", "", "unit, e.g. kg")
	quantity := fs.String("quantity", "0", "starting quantity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 1, "RESTAURANT_ID"); err != nil {
		return err
	}

	board, err := a.productBoard(ctx, fs.Arg(0), &rowPrinter{w: os.Stdout})
	if err != nil {
		return err
	}
	if _, err := board.Load(ctx); err != nil {
		return err
	}
	_, err = board.Add(ctx, *name, *unit, *quantity)
	return err
}

func runAdjust(increment bool) command {
	return func(ctx context.Context, a *app, args []string) error {
		if err := wantArgs(args, 2, "RESTAURANT_ID POSITION"); err != nil {
			return err
		}
		pos, err := parseInt("position", args[1])
		if err != nil {
			return err
		}
		board, err := a.productBoard(ctx, args[0], &rowPrinter{w: os.Stdout})
		if err != nil {
			return err
		}
		if _, err := board.Load(ctx); err != nil {
			return err
		}
		delta := -calculator.Step
		if increment {
			delta = calculator.Step
		}
		actions, errs := boardActions(ctx, board)
		actions.QuantityChangeRequested(int(pos), delta)
		return errs()
	}
}

// boardActions returns the row-action port for board and a func reporting its first error.
func boardActions(ctx context.Context, board *inventory.ProductBoard) (inventory.BoardActions, func() error) {
	var first error
	actions := inventory.BoardActions{Board: board, Ctx: ctx, OnError: func(err error) {
		if first == nil {
			first = err
		}
	}}
	return actions, func() error { return first }
}

func runRemoveProduct(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 2, "RESTAURANT_ID POSITION"); err != nil {
		return err
	}
	pos, err := parseInt("position", args[1])
	if err != nil {
		return err
	}
	board, err := a.productBoard(ctx, args[0], &rowPrinter{w: os.Stdout})
	if err != nil {
		return err
	}
	if _, err := board.Load(ctx); err != nil {
		return err
	}
	actions, errs := boardActions(ctx, board)
	actions.DeleteRequested(int(pos))
	return errs()
}

func runLocate(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected ADDRESS")
	}
	loc, err := a.locator().Show(ctx, strings.Join(args, " "))
	if loc.URI != "" {
		fmt.Printf("%s\n%s\n", loc.DisplayName, loc.URI)
	}
	return err
}

func runMap(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 0, "no arguments"); err != nil {
		return err
	}
	list := a.restaurantList(&rowPrinter{w: os.Stdout})
	if err := list.Load(ctx); err != nil {
		return err
	}
	req, err := list.MapRequest()
	if err != nil {
		return err
	}
	return openMap(ctx, a, req)
}

// openMap hands req to the map screen and prints the URI it built.
func openMap(ctx context.Context, a *app, req inventory.MapRequest) error {
	uri, err := inventory.NewRestaurantMap(a.locator()).Open(ctx, req)
	if uri != "" {
		fmt.Println(uri)
	}
	return err
}
