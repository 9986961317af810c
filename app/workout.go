package app

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
	"github.com/ayoisaiah/lift/report"
)

// workoutSaved reports a finished workout and runs the configured hooks.
func (a *liftApp) workoutSaved(rec models.WorkoutRecord) {
	report.WorkoutSaved(rec)

	a.notify(rec)

	err := runFinishCmd(a.cfg.Settings.FinishCmd)
	if err != nil {
		a.log.Error(
			"finish command failed",
			slog.String("cmd", a.cfg.Settings.FinishCmd),
			slog.Any("error", err),
		)

		report.Error(errFinishCmd.Wrap(err))
	}
}

// notify sends a desktop notification summarising the workout.
func (a *liftApp) notify(rec models.WorkoutRecord) {
	if !a.cfg.Notifications.Enabled {
		return
	}

	title := a.root.Resolver().Label(rec.Type) + " workout saved"

	msg := fmt.Sprintf(
		"%d exercises, %s%s lifted",
		len(rec.Exercises),
		recommend.FormatWeight(insights.Volume(&rec)),
		a.cfg.Display.Unit,
	)

	err := beeep.Notify(title, msg, "")
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// runFinishCmd executes the specified command.
func runFinishCmd(finishCmd string) error {
	if finishCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(finishCmd)
	if err != nil {
		return fmt.Errorf("unable to parse finish_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
