package rules

// Rule is the rulestring of the only automaton the engine executes.
const Rule = "B3/S23"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// IsStandard reports whether a declared rulestring names B3/S23. Both the
// B/S form and the legacy S/B form ("23/3") are recognised, case-insensitively.
func IsStandard(rule string) bool {
	switch normalize(rule) {
	case "B3/S23", "S23/B3", "23/3":
		return true
	}
	return false
}

func normalize(rule string) string {
	out := make([]byte, 0, len(rule))
	for i := 0; i < len(rule); i++ {
		c := rule[i]
		switch {
		case c == ' ' || c == '\t':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
