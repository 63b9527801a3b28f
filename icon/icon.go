// Package icon renders status symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/framecast/framecast/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of the icons.variant key.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Cache
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💥", nerd: "\uf00d", plain: "✗", kaomoji: "(╯°□°）╯", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "~", kaomoji: "(・_・ヾ", squares: "🟨"},
	Cache:    {emoji: "📦", nerd: "\uf1c0", plain: "#", kaomoji: "(っ˘ڡ˘ς)", squares: "🟦"},
	Link:     {emoji: "🔗", nerd: "\uf0c1", plain: "->", kaomoji: "(☞ﾟヮﾟ)☞", squares: "🟪"},
}


func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
