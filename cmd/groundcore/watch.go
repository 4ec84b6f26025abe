package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mrlab-ai/groundcore/internal/logging"
)

// debounceWindow absorbs the burst of events a single save can produce
// (write, then a chmod, then sometimes a rename-into-place).
const debounceWindow = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <description.json>",
	Short: "Re-run ground every time description.json changes, until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		log := logging.Get(logging.CLI)

		runOnce := func() {
			_, snap, err := groundFile(path)
			if err != nil {
				fmt.Println("error:", err)
				return
			}
			fmt.Printf("%s: %d atoms, %d actions, %d axioms\n",
				filepath.Base(path), len(snap.GroundAtoms), len(snap.GroundActions), len(snap.GroundAxioms))
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		dir := filepath.Dir(path)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}

		log.Infow("watching for changes", "file", path)
		runOnce()

		var pending bool
		timer := time.NewTimer(debounceWindow)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				pending = true
				timer.Reset(debounceWindow)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Errorw("watcher error", "error", err)

			case <-timer.C:
				if pending {
					pending = false
					runOnce()
				}
			}
		}
	},
}
