package app

import "github.com/urfave/cli/v2"

var (
	unitFlag = &cli.StringFlag{
		Name:    "unit",
		Aliases: []string{"u"},
		Usage:   "Weight unit: kg or lb (default: kg)",
	}

	daysFlag = &cli.IntFlag{
		Name:  "days",
		Usage: "Number of days summarised by insights (default: 28)",
	}

	finishCmdFlag = &cli.StringFlag{
		Name:    "finish-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a workout is saved",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a workout is saved",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Record the workout at another time (e.g. 'yesterday 18:00')",
	}

	noTUIFlag = &cli.BoolFlag{
		Name:  "no-tui",
		Usage: "Start the workout without opening the tracker",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	atFlag = &cli.IntFlag{
		Name:  "at",
		Usage: "Position of the new exercise (default: last)",
	}

	typeFlag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Only consider workouts of this plan",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only list workouts from a period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	monthFlag = &cli.StringFlag{
		Name:    "month",
		Aliases: []string{"m"},
		Usage:   "Month to print in YYYY-MM format (default: current month)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: json or yaml",
		Value:   formatJSON,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to a file instead of stdout",
	}
)
