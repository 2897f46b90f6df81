package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/notify"
	"github.com/julianstephens/moodlog/internal/reminder"
)

type RemindCmd struct {
	Once   bool `help:"Run a single reminder check and exit." default:"false"`
	DryRun bool `help:"Print the notification to stdout instead of the desktop." default:"false"`
}

func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var notifier notify.Notifier
	if c.DryRun {
		notifier = notify.NewWriter(os.Stdout)
	} else {
		notifier = notify.NewDesktop()
	}

	sched := reminder.New(ctx.Store, notifier, ctx.Clock)

	if c.Once {
		fired, err := sched.Check()
		if err != nil {
			return err
		}
		if fired {
			fmt.Println("Reminder sent.")
		} else {
			fmt.Println("No reminder due.")
		}
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.ReminderEnabled {
		fmt.Println("Reminders are disabled. Enable with 'moodlog settings set reminder-enabled true'.")
	}

	fmt.Printf("Reminder daemon running (reminder at %s). Press Ctrl+C to stop.\n", settings.ReminderTime)
	logger.Info("reminder daemon started", "time", settings.ReminderTime)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		sched.Stop()
	}()

	return sched.Run()
}
