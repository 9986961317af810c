package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/lift/internal/osutil"
	"github.com/ayoisaiah/lift/report"
	"github.com/ayoisaiah/lift/store"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// encodeDump serialises a dump in the given format.
func encodeDump(d *store.Dump, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON:
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(b, '\n'), nil
	case formatYAML, "yml":
		return yaml.Marshal(d)
	}

	return nil, errUnknownFormat.Fmt(format)
}

func exportAction(ctx *cli.Context, a *liftApp) error {
	d, err := a.db.Export()
	if err != nil {
		return err
	}

	b, err := encodeDump(d, ctx.String("format"))
	if err != nil {
		return err
	}

	out := ctx.String("output")
	if out == "" {
		_, err = ctx.App.Writer.Write(b)
		return err
	}

	if err := os.WriteFile(out, b, osutil.FilePermission); err != nil {
		return err
	}

	report.Info("Exported %d workouts to %s", len(d.History), out)

	return nil
}

func importAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	b, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return errReadImport.Wrap(err)
	}

	d, err := store.ParseDump(b)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		q := fmt.Sprintf(
			"Replace all data with %d workouts and %d custom plans from %s?",
			len(d.History),
			len(d.CustomPlans),
			ctx.Args().First(),
		)

		ok, err := confirm(q)
		if err != nil || !ok {
			return err
		}
	}

	if err := a.root.Import(d); err != nil {
		return err
	}

	report.Info(
		"Imported %d workouts and %d custom plans",
		a.root.History.Len(),
		len(a.root.Plans.List()),
	)

	return nil
}
