package score

// builtinRubrics covers the battery items with a checkable answer. Open-ended
// prompts (poetry, debates, explanations) carry no rubric on purpose and fall
// back to the neutral base score.
var builtinRubrics = map[string]Rubric{
	// Logic
	"Moth & Flame": {
		Correct: []string{"never", "zeno", "infinite", "approaches"},
		Wrong:   []string{"reaches the flame in"},
	},
	"The Silk Lie": {
		Correct: []string{"neither", "paradox", "contradiction", "impossible"},
	},
	"Lunar Navigation": {
		Correct: []string{"spiral", "circle", "transverse"},
		Wrong:   []string{"straight line"},
	},
	"Camouflage": {
		Correct: []string{"natural selection", "industrial melanism", "predat"},
	},
	"Night Flight": {
		Correct: []string{"not a moth", "cannot be a moth"},
		Wrong:   []string{"yes, it can be a moth"},
	},
	"Cocoon Math": {
		Correct: []string{"10 days", "ten days"},
		Wrong:   []string{"100 days"},
	},
	"Lamp Trap": {
		Correct: []string{"blue is safe", "safe"},
	},

	// Math
	"Wing Beats": {
		Correct: []string{"8575", "343"},
	},
	"Silk Length": {
		Correct: []string{"11700", "11,700"},
	},
	"Population": {
		Correct: []string{"32"},
		Wrong:   []string{"duplicate"},
	},
	"Flight Path": {
		Correct: []string{"sin", "2x", "product rule"},
	},
	"Antenna Prob": {
		Correct: []string{"12/13", "0.67", "67%"},
	},
	"Sphere Moth": {
		Correct: []string{"113", "36π", "4/3"},
	},
	"Larva Growth": {
		Correct: []string{"x = 9", "x=9"},
	},
	"Fibonacci Moth": {
		Correct: []string{"55", "34"},
	},
	"Binary Wing": {
		Correct: []string{"27100", "0x27100"},
	},

	// Code
	"Moth-Cache": {
		Correct: []string{"ordereddict", "o(1)", "def "},
	},
	"Light Sync": {
		Correct: []string{"mutex", "lock_guard", "lock"},
	},
	"Moth-SQL": {
		Correct: []string{"group by", "avg", "where"},
	},
	"Wing Regex": {
		Correct: []string{"moth-2024-", `\d{4}`, "[0-9]{4}"},
	},
	"Moth-Sort": {
		Correct: []string{"pivot", "partition"},
	},
	"Git Moth": {
		Correct: []string{"branch", "merge"},
	},
	"Moth API": {
		Correct: []string{"fastapi", "@app.get", "flying"},
	},
	"Search Moth": {
		Correct: []string{"mid", "binary search", "sorted"},
	},
	"Moth-Docker": {
		Correct: []string{"from ", "copy", "cmd"},
	},

	// Trick
	"Noah's Moth": {
		Correct: []string{"noah", "none", "zero", "moses didn't"},
		Wrong:   []string{"two moths"},
	},
	"Wing Armor": {
		Correct: []string{"survivorship", "where there are no holes", "body", "engine"},
		Wrong:   []string{"where the holes are"},
	},
	"Silk Price": {
		Correct: []string{"no missing", "fallacy", "27"},
	},

	// Common sense
	"Moth Theory": {
		Correct: []string{"leaf"},
		Wrong:   []string{"log", "where anne put"},
	},
	"Gravity": {
		Correct: []string{"same time", "simultaneous", "at the same"},
		Wrong:   []string{"pebble hits first", "moth hits first"},
	},
	"Compass": {
		Correct: []string{"east"},
		Wrong:   []string{"west"},
	},
	"Energy": {
		Correct: []string{"thorax", "flight muscle"},
	},
	"Reaction": {
		Correct: []string{"electrocut", "current", "voltage"},
	},
	"History": {
		Correct: []string{"grace hopper", "relay", "harvard", "mark ii"},
	},
}
