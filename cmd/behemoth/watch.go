package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hriener/behemoth/internal/session"
	"github.com/hriener/behemoth/internal/style"
)

var watchProfile string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run a profile every time --profile-file changes on disk",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchProfile, "profile", "andnot", "profile name to run on each reload")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if profileFile == "" {
		return fmt.Errorf("watch: --profile-file is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(profileFile); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	styles := style.ForStdout()
	run := func() {
		if err := runWatchedProfile(styles); err != nil {
			fmt.Fprintln(os.Stderr, styles.Error.Render(err.Error()))
		}
	}

	run()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Info("profile file changed, re-running", "path", ev.Name)
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: fsnotify error", "err", err)
		}
	}
}

func runWatchedProfile(styles style.Styles) error {
	profiles, err := loadProfiles()
	if err != nil {
		return err
	}
	p, err := profiles.Get(watchProfile)
	if err != nil {
		return err
	}

	s, err := session.New(watchProfile, p, slog.Default(), nil)
	if err != nil {
		return err
	}
	s.OnEmit = func(e session.Emission) {
		fmt.Printf("%s %s\n", styles.Term.Render(e.Term), styles.Cost.Render(fmt.Sprintf("%d", e.Cost)))
	}
	s.Run(1, nil)
	fmt.Fprintf(os.Stderr, "#enumerated expressions: %d\n", len(s.Emissions))
	return nil
}
