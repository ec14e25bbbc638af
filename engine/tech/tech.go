// Package tech decides which construction options are legal under the
// current rules settings: year, tech level, faction and mixed tech.
package tech

import "github.com/VicenteCartas/megameklab/types"

// Manager is the legality surface consulted by the chassis resolver.
// Implementations are configuration; callers never mutate them.
type Manager interface {
	IsLegal(a Advancement) bool
	IsClan() bool
	IsMixedTech() bool
	TechLevel() types.TechLevel
}

// Advancement describes when and at which rules level an item is available.
// A zero intro year means the tech base never fields it.
type Advancement struct {
	Name      string
	Level     types.TechLevel
	ISIntro   int
	ClanIntro int
}

// Context is the standard Manager, built from rules settings and optional
// per-item overrides keyed by advancement name.
type Context struct {
	Year   int // 0 disables the year check
	Level  types.TechLevel
	Clan   bool
	Mixed  bool
	Allow  map[string]bool
	Forbid map[string]bool
}

// NewContext creates a context with empty override sets.
func NewContext(year int, level types.TechLevel, clan, mixed bool) *Context {
	return &Context{
		Year:   year,
		Level:  level,
		Clan:   clan,
		Mixed:  mixed,
		Allow:  map[string]bool{},
		Forbid: map[string]bool{},
	}
}

// IsLegal evaluates an advancement: forbid wins, then allow, then the rules
// level, then the intro year of the applicable tech base. Mixed tech accepts
// either base.
func (c *Context) IsLegal(a Advancement) bool {
	if c.Forbid[a.Name] {
		return false
	}
	if c.Allow[a.Name] {
		return true
	}
	if a.Level > c.Level {
		return false
	}
	isOK := c.available(a.ISIntro)
	clanOK := c.available(a.ClanIntro)
	switch {
	case c.Mixed:
		return isOK || clanOK
	case c.Clan:
		return clanOK
	default:
		return isOK
	}
}

func (c *Context) available(intro int) bool {
	if intro <= 0 {
		return false
	}
	return c.Year <= 0 || intro <= c.Year
}

// IsClan reports whether the unit is built on the Clan tech base.
func (c *Context) IsClan() bool { return c.Clan }

// IsMixedTech reports whether both tech bases may be combined.
func (c *Context) IsMixedTech() bool { return c.Mixed }

// TechLevel returns the rules level.
func (c *Context) TechLevel() types.TechLevel { return c.Level }
