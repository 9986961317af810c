package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lift/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the lift app instance.
func Get() *cli.App {
	liftApp := &cli.App{
		Name: "lift",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Lift is a workout tracker for the command-line. It records push, pull and
		custom workouts, remembers what you lifted last time and suggests when to
		add weight.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a workout and open the tracker",
				ArgsUsage: "[push|pull|<custom plan>]",
				Flags:     []cli.Flag{dateFlag, noTUIFlag, yesFlag},
				Action:    withApp(startAction),
			},
			{
				Name:   "resume",
				Usage:  "Open the tracker for the workout in progress",
				Action: withApp(resumeAction),
			},
			{
				Name:   "status",
				Usage:  "Print the workout in progress",
				Action: withApp(statusAction),
			},
			{
				Name:      "set",
				Usage:     "Record the weight or reps of a set",
				ArgsUsage: "<exercise#> <set#> <weight|reps> <value>",
				Action:    withApp(setAction),
			},
			{
				Name:      "add-set",
				Usage:     "Add a set to an exercise",
				ArgsUsage: "<exercise#>",
				Action:    withApp(addSetAction),
			},
			{
				Name:      "remove-set",
				Usage:     "Remove a set from an exercise",
				ArgsUsage: "<exercise#> <set#>",
				Action:    withApp(removeSetAction),
			},
			{
				Name:      "insert",
				Usage:     "Add an exercise to the workout in progress",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{atFlag},
				Action:    withApp(insertAction),
			},
			{
				Name:      "remove",
				Usage:     "Remove an exercise from the workout in progress",
				ArgsUsage: "<exercise#>",
				Action:    withApp(removeAction),
			},
			{
				Name:   "finish",
				Usage:  "Save the workout in progress",
				Action: withApp(finishAction),
			},
			{
				Name:   "cancel",
				Usage:  "Discard the workout in progress",
				Flags:  []cli.Flag{yesFlag},
				Action: withApp(cancelAction),
			},
			{
				Name:   "history",
				Usage:  "List completed workouts",
				Flags:  []cli.Flag{typeFlag, periodFlag},
				Action: withApp(historyAction),
			},
			{
				Name:      "show",
				Usage:     "Print every exercise of a workout",
				ArgsUsage: "<id>",
				Action:    withApp(showAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete a workout from the history",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    withApp(deleteAction),
			},
			{
				Name:   "calendar",
				Usage:  "Print the workouts of a month",
				Flags:  []cli.Flag{monthFlag},
				Action: withApp(calendarAction),
			},
			{
				Name:   "insights",
				Usage:  "Summarise recent workouts",
				Action: withApp(insightsAction),
			},
			{
				Name:      "recommend",
				Usage:     "Suggest the next target for an exercise",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{typeFlag},
				Action:    withApp(recommendAction),
			},
			{
				Name:      "known",
				Usage:     "List every exercise name lift knows about",
				ArgsUsage: "[query]",
				Action:    withApp(knownAction),
			},
			{
				Name:  "exercises",
				Usage: "Manage the exercises of the push and pull plans",
				Subcommands: []*cli.Command{
					{
						Name:      "list",
						Usage:     "List the exercises of a plan",
						ArgsUsage: "[push|pull]",
						Action:    withApp(exercisesListAction),
					},
					{
						Name:      "add",
						Usage:     "Add an exercise to a plan",
						ArgsUsage: "<push|pull> <name>",
						Action:    withApp(exercisesAddAction),
					},
					{
						Name:      "remove",
						Usage:     "Remove an exercise from a plan",
						ArgsUsage: "<push|pull> <name>",
						Action:    withApp(exercisesRemoveAction),
					},
				},
			},
			{
				Name:  "plans",
				Usage: "Manage custom plans",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List custom plans",
						Action: withApp(plansListAction),
					},
					{
						Name:      "create",
						Usage:     "Create a custom plan",
						ArgsUsage: "<name> [exercise...]",
						Action:    withApp(plansCreateAction),
					},
					{
						Name:      "edit",
						Usage:     "Rename a custom plan or replace its exercises",
						ArgsUsage: "<plan> <name> [exercise...]",
						Action:    withApp(plansEditAction),
					},
					{
						Name:      "delete",
						Usage:     "Delete a custom plan",
						ArgsUsage: "<plan>",
						Flags:     []cli.Flag{yesFlag},
						Action:    withApp(plansDeleteAction),
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Write all data to stdout or a file",
				Flags:  []cli.Flag{formatFlag, outputFlag},
				Action: withApp(exportAction),
			},
			{
				Name:      "import",
				Usage:     "Replace all data with the contents of an export",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{yesFlag},
				Action:    withApp(importAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			unitFlag,
			daysFlag,
			finishCmdFlag,
			disableNotificationFlag,
			noColorFlag,
			debugFlag,
		},
		Action: withApp(defaultAction),
		Before: beforeAction,
		After:  afterAction,
	}

	return liftApp
}
