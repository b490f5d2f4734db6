package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rogpeppe/chainmap/phone"
)

// Commands and flags must not be shared between apps:
// urfave/cli records parse state in them.

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "catalog file holding name: number lines",
		Required: true,
		EnvVars:  []string{"PHONEBOOK_FILE"},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "fill a catalog with sample entries and look some of them up",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "also print the whole catalog",
			},
		},
		Action: runDemo,
	}
}

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "print the numbers for the given names",
		ArgsUsage: "<name>...",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:  "clean",
				Usage: "strip white space and hyphens from printed numbers",
			},
		},
		Action: runLookup,
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "print every entry in a catalog file",
		Flags:  []cli.Flag{fileFlag()},
		Action: runList,
	}
}

var demoEntries = []struct {
	name   string
	number string
}{
	{"Евгений Олегович", "8-999-777-77-77"},
	{"Андрей Андреевич", "8-999-888-88-55"},
	{"abc", "9-666-854-59-88"},
	{"cba", "9-666-854-59-69"},
}

func runDemo(cctx *cli.Context) error {
	cat := phone.NewCatalog()
	for _, e := range demoEntries {
		if err := cat.Add(e.name, e.number); err != nil {
			return err
		}
	}
	slog.Debug("demo catalog filled", "entries", cat.Len())
	for _, name := range []string{"abc", "cba"} {
		number, err := cat.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, number)
	}
	if cctx.Bool("all") {
		if _, err := cat.WriteTo(cctx.App.Writer); err != nil {
			return err
		}
	}
	return nil
}

func runLookup(cctx *cli.Context) error {
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need at least one name to look up")
	}
	cat, err := loadCatalog(cctx.String("file"))
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range cctx.Args().Slice() {
		number, err := cat.Lookup(name)
		if err != nil {
			slog.Debug("lookup failed", "name", name, "err", err)
			errs = append(errs, fmt.Errorf("%q: %w", name, err))
			continue
		}
		if cctx.Bool("clean") {
			number = phone.Clean(number)
		}
		fmt.Fprintf(cctx.App.Writer, "%s: %s\n", name, number)
	}
	return errors.Join(errs...)
}

func runList(cctx *cli.Context) error {
	cat, err := loadCatalog(cctx.String("file"))
	if err != nil {
		return err
	}
	_, err = cat.WriteTo(cctx.App.Writer)
	return err
}

func loadCatalog(path string) (*phone.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog: %w", err)
	}
	defer f.Close()
	cat := phone.NewCatalog()
	if err := cat.Load(f); err != nil {
		return nil, fmt.Errorf("cannot load catalog %q: %w", path, err)
	}
	slog.Debug("loaded catalog", "file", path, "entries", cat.Len())
	return cat, nil
}
