package command

// suggestions maps known misspellings to canonical method names. Checked
// before an unknown method is reported so the console can answer with a
// "did you mean" hint instead of a bare failure.
var suggestions = map[string]string{
	"moveright":  "move_right",
	"moveleft":   "move_left",
	"moveup":     "move_up",
	"movedown":   "move_down",
	"move_rigth": "move_right",
	"move_rigt":  "move_right",
	"move_leftt": "move_left",
	"move_u":     "move_up",
	"move_d":     "move_down",
	"right":      "move_right",
	"left":       "move_left",
	"up":         "move_up",
	"down":       "move_down",
	"spinn":      "spin",
	"dans":       "dance",
	"dansce":     "dance",
}

// suggest returns the canonical method for a recognized misspelling.
func suggest(method string) (string, bool) {
	s, ok := suggestions[method]
	return s, ok
}
