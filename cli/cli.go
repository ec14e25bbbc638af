// Package cli provides the plain terminal shell for the chassis editor: a
// line-oriented loop over engine.Step plus slash meta-commands for files
// and the unit library.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/VicenteCartas/megameklab/engine"
	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/save"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/library"
	"github.com/VicenteCartas/megameklab/types"
)

// Library is the subset of the unit library the shell uses.
type Library interface {
	Put(ctx context.Context, name string, u *types.Unit) (string, error)
	Get(ctx context.Context, name string) (*types.Unit, error)
	List(ctx context.Context) ([]library.Entry, error)
	Delete(ctx context.Context, name string) error
}

// CLI handles terminal interaction with the user.
type CLI struct {
	Engine    *engine.Engine
	Library   Library
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"
}

// New creates a CLI wired to the given engine. lib may be nil.
func New(eng *engine.Engine, lib Library, saveDir string) *CLI {
	if saveDir == "" {
		saveDir = "."
	}
	return &CLI{
		Engine:  eng,
		Library: lib,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: saveDir,
	}
}

// Run shows the unit under edit, then loops: prompt, input, dispatch,
// output. It returns when input ends or after /quit.
func (c *CLI) Run() {
	c.printResult(c.Engine.Step("status"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		// "g" is the gyro alias, so only the long form repeats.
		if strings.EqualFold(input, "again") {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the shell should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "/quit", "/exit":
		if err := c.Engine.Close(); err != nil {
			c.printSystem(fmt.Sprintf("Shutdown: %v", err))
		}
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(strings.Join(args, " "))

	case "/load":
		c.cmdLoad(strings.Join(args, " "))

	case "/library", "/lib":
		c.cmdLibrary(args)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	exp := save.DirExporter{Dir: c.SaveDir}
	if name == "" {
		where, err := c.Engine.Save(context.Background(), exp)
		if err != nil {
			c.printSystem(fmt.Sprintf("Save failed: %v", err))
			return
		}
		c.printSystem(fmt.Sprintf("Unit saved to %s.", where))
		return
	}

	file := withExt(name)
	if filepath.IsAbs(file) {
		exp.Dir, file = filepath.Split(file)
	}
	where, err := exp.Export(context.Background(), file, c.Engine.Unit)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Unit saved to %s.", where))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = unit.FileName(c.Engine.Unit)
	}
	path := withExt(name)
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.SaveDir, path)
	}

	u, err := save.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.load(u, name)
}

func (c *CLI) load(u *types.Unit, from string) {
	if !c.Engine.LoadUnit(u) {
		c.printSystem(fmt.Sprintf("Load failed: %s is not a Mech.", from))
		return
	}
	c.printSystem(fmt.Sprintf("Unit loaded from %s.", from))
	c.printResult(c.Engine.Step("status"))
}

func (c *CLI) cmdLibrary(args []string) {
	if c.Library == nil {
		c.printSystem("No unit library is open.")
		return
	}
	ctx := context.Background()

	sub := "list"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
		args = args[1:]
	}
	name := strings.Join(args, " ")

	switch sub {
	case "list", "ls":
		entries, err := c.Library.List(ctx)
		if err != nil {
			c.printSystem(fmt.Sprintf("Library failed: %v", err))
			return
		}
		if len(entries) == 0 {
			c.printSystem("The library is empty.")
			return
		}
		for _, e := range entries {
			c.printLine(fmt.Sprintf("  %-28s %5gt  %s", e.Name, e.Tonnage, e.Updated.Format("2006-01-02 15:04")))
		}

	case "save", "put":
		if name == "" {
			name = unit.Title(c.Engine.Unit)
		}
		if _, err := c.Library.Put(ctx, name, c.Engine.Unit); err != nil {
			c.printSystem(fmt.Sprintf("Library save failed: %v", err))
			return
		}
		c.printSystem(fmt.Sprintf("Stored %s in the library.", name))

	case "load", "get":
		u, err := c.Library.Get(ctx, name)
		if errors.Is(err, library.ErrNotFound) {
			c.printSystem(fmt.Sprintf("No library unit named %q.", name))
			return
		}
		if err != nil {
			c.printSystem(fmt.Sprintf("Library load failed: %v", err))
			return
		}
		c.load(u, "library:"+name)

	case "delete", "rm":
		err := c.Library.Delete(ctx, name)
		if errors.Is(err, library.ErrNotFound) {
			c.printSystem(fmt.Sprintf("No library unit named %q.", name))
			return
		}
		if err != nil {
			c.printSystem(fmt.Sprintf("Library delete failed: %v", err))
			return
		}
		c.printSystem(fmt.Sprintf("Removed %s from the library.", name))

	default:
		c.printSystem(fmt.Sprintf("Unknown library command: %s. Use list, save, load or delete.", sub))
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [file]       Save the unit as JSON (default: chassis and model)",
		"  /load [file]       Load a unit file",
		"  /library [list]    List units in the library",
		"  /library save [n]  Store the unit in the library",
		"  /library load <n>  Load a unit from the library",
		"  /library delete <n>",
		"  /quit              Exit",
		"  /help              Show this help",
		"  /state             Debug: dump the unit record",
		"  /trace             Toggle event and refresh trace output",
		"  again              Repeat the last editor command",
		"",
	}
	for _, line := range help {
		c.printLine(line)
	}
	c.printResult(c.Engine.Step("help"))
}

func (c *CLI) cmdState() {
	u := c.Engine.Unit
	c.printSystem(fmt.Sprintf("Unit: %s (%s)", unit.Title(u), unit.Entity(u)))
	c.printSystem(fmt.Sprintf("Tonnage: %g  Base: %s  Motive: %s  Omni: %v",
		u.Tonnage, catalog.BaseTypeName(u.Base), catalog.MotiveName(u.Base, u.Motive), u.Omni))
	c.printSystem(fmt.Sprintf("Engine: %s  Structure: %s",
		catalog.EngineFullName(u.Engine), catalog.StructureName(u.Structure)))
	c.printSystem(fmt.Sprintf("Gyro: %s  Cockpit: %s  Enhancement: %s  Head eject: %v",
		catalog.GyroName(u.Gyro), catalog.CockpitName(u.Cockpit),
		catalog.EnhancementName(u.Enhancement, true), u.FullHeadEject))
	c.printSystem(fmt.Sprintf("Rules: %s, year %d, clan %v", catalog.TechLevelName(u.TechLevel), u.Year, u.Clan))
	if ctx, ok := c.Engine.Tech.(*tech.Context); ok && (len(ctx.Allow) > 0 || len(ctx.Forbid) > 0) {
		c.printSystem(fmt.Sprintf("Overrides: allow %v, forbid %v", sortedKeys(ctx.Allow), sortedKeys(ctx.Forbid)))
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
		}
	}
	if len(result.Refreshed) > 0 {
		names := make([]string, len(result.Refreshed))
		for i, ch := range result.Refreshed {
			names[i] = string(ch)
		}
		c.printSystem(fmt.Sprintf("[trace] Refreshed: %s", strings.Join(names, ", ")))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func withExt(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".json"
	}
	return name
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
