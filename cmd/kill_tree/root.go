package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"killtree/killtree"
	"killtree/process"
)

type options struct {
	quiet         bool
	verbose       bool
	logLevel      string
	excludeTarget bool
	parallel      bool
	concurrency   int
}

func newRootCommand(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "kill-tree PROCESS_ID [SIGNAL]",
		Short: "Kill a process with all of its children",
		Long: "Kill a process and every process it spawned, children first.\n" +
			"SIGNAL defaults to SIGTERM and is ignored on Windows.\n" +
			"The " + logEnv + " environment variable (quiet, info, verbose) overrides the log level flags.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, getenv, opts, args)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "No logs are output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Output debug logs")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: quiet, info or verbose")
	flags.BoolVar(&opts.excludeTarget, "exclude-target", false, "Kill only the children, leave the target process alive")
	flags.BoolVar(&opts.parallel, "parallel", false, "Scan and kill processes concurrently")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "Max concurrent kills with --parallel, 0 means number of CPUs")
	root.MarkFlagsMutuallyExclusive("quiet", "verbose", "log-level")

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	return root
}

func run(stdout io.Writer, getenv func(string) string, opts options, args []string) error {
	pid, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("%w %q: %w", process.ErrInvalidProcessID, args[0], err)
	}

	cfg := process.DefaultConfig()
	if len(args) > 1 {
		cfg.Signal = args[1]
	}
	cfg.IncludeTarget = !opts.excludeTarget
	if opts.parallel {
		cfg.Mode = process.Concurrent
		cfg.Concurrency = opts.concurrency
	}

	level, err := resolveLogLevel(getenv(logEnv), opts.logLevel, opts.verbose)
	if err != nil {
		return err
	}

	doPrint := !opts.quiet
	if doPrint {
		fmt.Fprintf(stdout, "Killing process with all children. process id: %d, signal: %s\n", pid, cfg.Signal)
	}

	outcomes, err := killtree.NewKiller(cfg, newLevelLogger(level)).KillTreeWithConfig(process.ProcessID(pid), cfg)
	if err != nil {
		return err
	}

	if doPrint {
		printOutcomes(stdout, outcomes)
	}
	return nil
}

func printOutcomes(w io.Writer, outcomes []process.Outcome) {
	fmt.Fprintf(w, "Killing is done. Number of killed processes: %d\n", len(outcomes))
	for i, o := range outcomes {
		switch o.Kind {
		case process.Killed:
			fmt.Fprintf(w, "[%d] Killed process. process id: %d, parent process id: %d, name: %s\n", i, o.PID, o.PPID, o.Name)
		case process.MaybeAlreadyTerminated:
			fmt.Fprintf(w, "[%d] Maybe already terminated process. process id: %d, reason: %v\n", i, o.PID, o.Reason)
		}
	}
}

// Execute runs the CLI entrypoint.
func Execute() {
	root := newRootCommand(os.Stdout, os.Stderr, os.Getenv)

	if err := root.Execute(); err != nil {
		msg := fmt.Sprintf("Failed to kill processes. error: %v", err)
		if term.IsTerminal(int(os.Stderr.Fd())) {
			msg = coloransi.Color(coloransi.Red, coloransi.ColorOrange, msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
