package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-holocron/internal/adapter"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

// Usage lists the supported commands.
const Usage = `commands:
  users                     list users
  characters [id]           list characters or show one
  planets [id]              list planets or show one
  vehicles [id]             list vehicles or show one
  favorites                 list favorites of the acting user
  add <kind> <id>           add a favorite (kind: character, planet, vehicle)
  remove <kind> <id>        remove a favorite
  sitemap                   list server routes
  version                   print the server version`

type App struct {
	api    adapter.API
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.API, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:    api,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	switch command {
	case "users":
		return a.printResult(a.api.ListUsers(ctx))
	case "characters":
		return runCatalog(ctx, a, rest, a.api.ListCharacters, a.api.GetCharacter)
	case "planets":
		return runCatalog(ctx, a, rest, a.api.ListPlanets, a.api.GetPlanet)
	case "vehicles":
		return runCatalog(ctx, a, rest, a.api.ListVehicles, a.api.GetVehicle)
	case "favorites":
		return a.printResult(a.api.ListFavorites(ctx))
	case "add":
		return a.runFavorite(ctx, rest, a.api.AddFavorite)
	case "remove":
		return a.runFavorite(ctx, rest, a.api.RemoveFavorite)
	case "sitemap":
		return a.printResult(a.api.Sitemap(ctx))
	case "version":
		version, err := a.api.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, version)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func runCatalog[T any](ctx context.Context, a *App, args []string,
	list func(context.Context) ([]T, error),
	get func(context.Context, int64) (T, error)) error {
	switch len(args) {
	case 0:
		return a.printResult(list(ctx))
	case 1:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.printResult(get(ctx, id))
	default:
		return fmt.Errorf("%w: expected at most one id", ErrUsage)
	}
}

func (a *App) runFavorite(ctx context.Context, args []string,
	do func(context.Context, models.EntityKind, int64) (string, error)) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <kind> <id>", ErrUsage)
	}

	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	message, err := do(ctx, models.EntityKind(args[0]), id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, message)
	return err
}

func (a *App) printResult(v any, err error) error {
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrUsage, s)
	}

	return id, nil
}
