package icon

// Icon is a stable identifier for a UI symbol in the global registry.
type Icon int

// Registered UI symbols.
const (
	Lock Icon = iota + 1
	Unlock
	Play
	Pause
	Clock
	Success
	Fail
	Search
	Link
	Progress
	Lua
	Question
)

// icons maps every registered Icon to its per-variant visual representations.
var icons = map[Icon]*iconDef{
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "[locked]",
		kaomoji: "(x_x)",
		squares: "■",
	},
	Unlock: {
		emoji:   "🔓",
		nerd:    "",
		plain:   "[open]",
		kaomoji: "(^_^)",
		squares: "□",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>*-*)>",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(-_-)zzz",
		squares: "▮▮",
	},
	Clock: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(o_o)",
		squares: "◷",
	},
	Success: {
		emoji:   "🟢",
		nerd:    "",
		plain:   "+",
		kaomoji: "(´｡• ω •｡`)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⌐■_■)",
		squares: "◈",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(つ°-°)つ",
		squares: "▣",
	},
	Progress: {
		emoji:   "⏱️",
		nerd:    "",
		plain:   "...",
		kaomoji: "(._.)",
		squares: "◧",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "lua",
		kaomoji: "(=^･ω･^=)",
		squares: "◐",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(￢ ￢)",
		squares: "◩",
	},
}
