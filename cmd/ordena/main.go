// Command ordena is the terminal client: it lists restaurants, manages stock
// and hands addresses to a map application.
//
//	ordena [--server URL | --db PATH] <command> [flags] [args]
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mmynk/ordena/internal/config"
	"github.com/mmynk/ordena/pkg/logging"
)

const usage = `usage: ordena [global flags] <command> [flags] [args]

commands:
  list                              list restaurants
  add --name N --description D --address A [--photo FILE]
                                    add a restaurant
  delete POSITION                   delete a restaurant (undo with Enter)
  products RESTAURANT_ID [--map]    list a restaurant's stock, or map its address
  add-product RESTAURANT_ID --name N [--unit U] [--quantity Q]
  inc RESTAURANT_ID POSITION        raise a quantity by one
  dec RESTAURANT_ID POSITION        lower a quantity by one
  remove-product RESTAURANT_ID POSITION
  locate ADDRESS...                 show an address on the map
  map                               show every restaurant on one map

global flags:
`

type command func(ctx context.Context, app *app, args []string) error

var commands = map[string]command{
	"list":           runList,
	"add":            runAdd,
	"delete":         runDelete,
	"products":       runProducts,
	"add-product":    runAddProduct,
	"inc":            runAdjust(true),
	"dec":            runAdjust(false),
	"remove-product": runRemoveProduct,
	"locate":         runLocate,
	"map":            runMap,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// loadConfig reads the configuration and re-applies its log level, which
// may come from ordena.yaml rather than the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	return cfg, nil
}

func run(argv []string) int {
	logging.SetupWithLevel(logging.ParseLevel(os.Getenv("LOG_LEVEL")))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	flags := pflag.NewFlagSet("ordena", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	server := flags.StringP("server", "s", envOr("ORDENA_SERVER", "http://localhost:"+fmt.Sprint(cfg.Port)), "server URL")
	token := flags.StringP("token", "t", os.Getenv("ORDENA_TOKEN"), "device token")
	dbPath := flags.String("db", "", "work offline on this SQLite file instead of a server")
	flags.SetInterspersed(false)

	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	name, args := flags.Arg(0), flags.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		flags.Usage()
		return 2
	}

	app, err := newApp(cfg, *server, *token, *dbPath)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd(ctx, app, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
