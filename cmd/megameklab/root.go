package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VicenteCartas/megameklab/cli"
	"github.com/VicenteCartas/megameklab/config"
	"github.com/VicenteCartas/megameklab/engine"
	"github.com/VicenteCartas/megameklab/engine/save"
	"github.com/VicenteCartas/megameklab/library"
	"github.com/VicenteCartas/megameklab/loader"
	"github.com/VicenteCartas/megameklab/logging"
	"github.com/VicenteCartas/megameklab/tui"
)

type rootOptions struct {
	plain      bool
	trace      bool
	script     string
	rules      string
	configPath string
	unitFile   string
}

// session is everything an editor run needs, built from config and flags.
type session struct {
	cfg    config.Config
	engine *engine.Engine
	lib    *library.Store
	logs   <-chan logging.LogEntry
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "megameklab",
		Short: "Edit BattleMech chassis configurations",
		Long: `megameklab edits the chassis of a BattleMech: tonnage, base and motive
type, internal structure, engine, gyro, cockpit and myomer enhancement.
Option lists follow the rules settings from the config file or a Lua
rules pack, and every edit keeps the rest of the design consistent.`,
		Version: version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// that are not about flags.
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEditor(cmd, opts)
		},
	}
	root.SetVersionTemplate(`{{printf "megameklab version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file layered over the user and project configs")
	flags.StringVar(&opts.rules, "rules", "", "directory of a Lua rules pack (overrides rulesDir)")
	root.Flags().BoolVar(&opts.plain, "plain", false, "use the line-oriented shell instead of the TUI")
	root.Flags().BoolVar(&opts.trace, "trace", false, "print events and refreshed views after each command")
	root.Flags().StringVar(&opts.script, "script", "", "play back commands from a file (implies --plain)")
	root.Flags().StringVar(&opts.unitFile, "unit", "", "unit file to open")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newOptionsCmd(opts))
	root.AddCommand(newLibraryCmd(opts))
	return root
}

func runEditor(cmd *cobra.Command, opts *rootOptions) error {
	useTUI := opts.script == "" && !opts.plain && isTerminal()
	s, err := openSession(cmd, opts, useTUI)
	if err != nil {
		return err
	}
	defer s.engine.Close()

	if useTUI {
		return tui.Run(s.engine, tui.Options{
			Library: s.tuiLibrary(),
			SaveDir: s.cfg.SaveDir,
			Logs:    s.logs,
			Trace:   opts.trace,
		})
	}

	c := cli.New(s.engine, s.cliLibrary(), s.cfg.SaveDir)
	c.Out = cmd.OutOrStdout()
	c.Trace = opts.trace
	if opts.script != "" {
		f, err := os.Open(opts.script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
	} else {
		c.In = cmd.InOrStdin()
	}
	c.Run()
	return nil
}

// openSession loads the config, starts logging, reads the rules pack and
// the unit file and opens the library. The library is optional: when it
// cannot be opened the editor runs without it.
func openSession(cmd *cobra.Command, opts *rootOptions, useTUI bool) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	if useTUI {
		s.logs = logging.InitForTUI(level)
	} else {
		logging.InitForCLI(level, cmd.ErrOrStderr())
	}

	tm := cfg.TechContext()
	var engOpts []engine.Option

	rulesDir := cfg.RulesDir
	if opts.rules != "" {
		rulesDir = opts.rules
	}
	if rulesDir != "" {
		pack, err := loader.Load(rulesDir)
		if err != nil {
			return nil, fmt.Errorf("loading rules pack: %w", err)
		}
		if pack.Context != nil {
			tm = pack.Context
		} else {
			pack.Apply(tm)
		}
		engOpts = append(engOpts, engine.WithTemplates(pack.Templates))
	}

	if opts.unitFile != "" {
		u, err := save.ReadFile(opts.unitFile)
		switch {
		case errors.Is(err, save.ErrNotMech):
			logging.Warn("main", "ignoring %s: %v", opts.unitFile, err)
		case err != nil:
			return nil, err
		default:
			engOpts = append(engOpts, engine.WithUnit(u))
		}
	}

	s.engine = engine.New(tm, engOpts...)

	lib, err := library.Open(cmd.Context(), cfg.LibraryPath)
	if err != nil {
		logging.Error("main", err, "unit library unavailable")
		return s, nil
	}
	s.lib = lib
	s.engine.OnClose(lib.Close)
	return s, nil
}

// tuiLibrary and cliLibrary keep a missing store a nil interface.
func (s *session) tuiLibrary() tui.Library {
	if s.lib == nil {
		return nil
	}
	return s.lib
}

func (s *session) cliLibrary() cli.Library {
	if s.lib == nil {
		return nil
	}
	return s.lib
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of megameklab",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "megameklab %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func newOptionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options [field]",
		Short: "Print the options available for the unit under the current rules",
		Long: `Print every chassis option list with the current selection in brackets.
Fields: ` + strings.Join(engine.Fields, ", ") + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, false)
			if err != nil {
				return err
			}
			defer s.engine.Close()
			return printLines(cmd.OutOrStdout(), s.engine.Step(strings.TrimSpace("options "+strings.Join(args, " "))).Output)
		},
	}
}

func newLibraryCmd(opts *rootOptions) *cobra.Command {
	libCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the saved-unit library",
	}

	open := func(cmd *cobra.Command) (*library.Store, error) {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		level, _ := logging.ParseLevel(cfg.LogLevel)
		logging.InitForCLI(level, cmd.ErrOrStderr())
		return library.Open(cmd.Context(), cfg.LibraryPath)
	}

	libCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "The library is empty.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%-36s  %-28s %5gt  %s\n", e.ID, e.Name, e.Tonnage, e.Updated.Format("2006-01-02 15:04"))
			}
			return nil
		},
	})

	libCmd.AddCommand(&cobra.Command{
		Use:   "import <file> [name]",
		Short: "Store a unit file in the library",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := save.ReadFile(args[0])
			if err != nil {
				return err
			}
			store, err := open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			name := strings.TrimSpace(u.Chassis + " " + u.Model)
			if len(args) > 1 {
				name = args[1]
			}
			id, err := store.Put(cmd.Context(), name, u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (%s).\n", name, id)
			return nil
		},
	})

	libCmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a unit from the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			name := strings.Join(args, " ")
			if err := store.Delete(cmd.Context(), name); err != nil {
				return fmt.Errorf("deleting %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", name)
			return nil
		},
	})
	return libCmd
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
