// Package icon renders UI symbols in the variant selected by the icons.variant setting.
package icon

import (
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Full
	Empty
	Pointer
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get returns the representation matching the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "✗", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", squares: "🟦"},
	Full:     {emoji: "📕", nerd: "", plain: "■", squares: "🟧"},
	Empty:    {emoji: "📭", nerd: "", plain: "□", squares: "⬜"},
	Pointer:  {emoji: "👉", nerd: "", plain: ">", squares: "▶"},
}

// Get returns the rendered string for i.
func Get(i Icon) string {
	return icons[i].Get()
}
