package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rjeczalik/notify"
	"gopkg.in/urfave/cli.v1"

	"butter/cmd"
	"butter/cmd/flags"
	"butter/colors"
)

// editors often write a file in several steps; rebuild once they settle
const watchDebounce = 150 * time.Millisecond

// HandleWatchCommand handles "butter watch <file>": build once, then again
// every time the file changes, until interrupted.
func HandleWatchCommand(ctx *cli.Context) error {
	args := flags.ParseArgs(ctx)
	setup(args)

	conf, err := loadConfig(args)
	if err != nil {
		return err
	}
	files, err := inputFiles(args, conf)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return errors.New("watch takes a single file")
	}
	file, err := filepath.Abs(files[0])
	if err != nil {
		return err
	}

	events := make(chan notify.EventInfo, 16)
	if err := notify.Watch(filepath.Dir(file), events, notify.Write, notify.Create, notify.Rename); err != nil {
		return err
	}
	defer notify.Stop(events)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-runCtx.Done():
		}
	}()

	opts := cmd.Options{Debug: args.Debug, Toolchain: cmd.ToolchainFor(conf)}
	colors.CYAN.Printf("👀 Watching %s (Ctrl+C to stop)\n", file)

	return watchLoop(runCtx, file, events, watchDebounce, func() {
		cmd.Compile(runCtx, file, conf, opts).Print()
	})
}

// watchLoop calls rebuild once, then after every burst of events on file.
func watchLoop(ctx context.Context, file string, events <-chan notify.EventInfo, debounce time.Duration, rebuild func()) error {
	rebuild()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ei, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Base(ei.Path()) != filepath.Base(file) {
				continue
			}
			settle = time.After(debounce)
		case <-settle:
			settle = nil
			colors.CYAN.Printf("🔁 %s changed, rebuilding\n", filepath.Base(file))
			rebuild()
		}
	}
}
