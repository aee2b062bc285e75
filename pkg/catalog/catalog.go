// Package catalog defines the fixed moth-themed prompt battery.
//
// The battery spans 6 capability categories (logic, math, code, trick,
// common sense, stress) with 43 prompts total. The list is static: it is
// declared once and handed to the runner as data, so tests can substitute
// a smaller battery without touching execution logic.
package catalog

// Category classifies a test item.
type Category string

const (
	CatLogic  Category = "Logic"
	CatMath   Category = "Math"
	CatCode   Category = "Code"
	CatTrick  Category = "Trick"
	CatSense  Category = "Sense"
	CatStress Category = "Stress"
)

// CategoryMeta holds display info for each category.
type CategoryMeta struct {
	ID    Category
	Label string
	Color string // hex color for rendering
}

// Categories defines the display order and styling of the capability groups.
var Categories = []CategoryMeta{
	{CatLogic, "Logic", "#4a9eff"},
	{CatMath, "Math", "#4caf50"},
	{CatCode, "Code", "#ff9800"},
	{CatTrick, "Trick", "#ab47bc"},
	{CatSense, "Common Sense", "#26c6da"},
	{CatStress, "Stress", "#ef5350"},
}

// CategoryColor returns the display color for a category.
func CategoryColor(c Category) string {
	for _, m := range Categories {
		if m.ID == c {
			return m.Color
		}
	}
	return "#808080"
}

// TestItem is a single benchmark prompt. Name is unique across the battery
// and doubles as the scoring-rubric key.
type TestItem struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Question string   `json:"question"`
}

// Items returns a copy of the full battery in execution order.
func Items() []TestItem {
	out := make([]TestItem, len(battery))
	copy(out, battery)
	return out
}

// ByCategory returns the battery grouped by category, in display order.
func ByCategory() map[Category][]TestItem {
	m := make(map[Category][]TestItem)
	for _, t := range battery {
		m[t.Category] = append(m[t.Category], t)
	}
	return m
}

var battery = []TestItem{
	// Logic
	{CatLogic, "Moth & Flame", "A moth is 10m from a flame. Every second it flies half the remaining distance. Will it ever reach the flame?"},
	{CatLogic, "The Silk Lie", "A Silk-moth always tells the truth, a Dust-moth always lies. One says: 'I am a Dust-moth.' Which moth is it?"},
	{CatLogic, "Lunar Navigation", "Moths use the moon to fly straight. If a moth mistakes a street lamp for the moon, what path will it fly?"},
	{CatLogic, "Camouflage", "A Peppered Moth sits on a soot-covered tree. If it is white, it gets eaten. If it is black, it survives. Explain the evolution."},
	{CatLogic, "Moth Box", "3 boxes: 'Silk', 'Dust', 'Mixed'. All labels wrong. Pick item from 'Mixed' and see silk. Label the boxes."},
	{CatLogic, "Night Flight", "If all moths fly at night, and this creature flies at noon, can it be a moth?"},
	{CatLogic, "Cocoon Math", "It takes 10 moths 10 days to spin 10 cocoons. How long for 100 moths to spin 100 cocoons?"},
	{CatLogic, "Attraction", "Why do moths fly toward light if it leads to death? Analyze the paradox."},
	{CatLogic, "Moth Paradox", "The sentence: 'This moth is currently invisible.' Is it true or false?"},
	{CatLogic, "Lamp Trap", "Moth in lamp. Blue or red wire exit. Blue safe if red is hot. Red is hot. Is blue safe?"},

	// Math
	{CatMath, "Wing Beats", "A moth beats wings 25 times/sec. How many beats in 7^3 seconds?"},
	{CatMath, "Silk Length", "A cocoon has 900m silk. If 13 cocoons are unraveled, how much silk is there mod 7?"},
	{CatMath, "Population", "Population doubles every Tuesday. Have 1 moth on Tuesday, how many after 5 weeks?"},
	{CatMath, "Flight Path", "Find derivative of moth spiral: f(x) = e^x * cos(x^2)."},
	{CatMath, "Antenna Prob", "1/13 chance of finding mate. Probability it fails 5 times in a row?"},
	{CatMath, "Moth Stats", "Explain the Bell Curve in terms of moth wing spans."},
	{CatMath, "Sphere Moth", "A spherical moth has a radius of 3cm. What is its volume?"},
	{CatMath, "Larva Growth", "Solve for x: 5x (larva weight) + 12 = 3x + 30."},
	{CatMath, "Fibonacci Moth", "Moths reproduce in Fibonacci sequence. What is the 10th number?"},
	{CatMath, "Binary Wing", "Convert number of moth species (160,000) to Hexadecimal."},

	// Code
	{CatCode, "Moth-Cache", "Write a Python LRU Cache for 'Moth-Images' with O(1) access."},
	{CatCode, "Light Sync", "Code a C++ Mutex to prevent moths hitting the same 'Lamp' (resource)."},
	{CatCode, "Moth-SQL", "SQL: Find average wingspan grouped by 'Forest_ID' where wingspan > 10."},
	{CatCode, "Wing Regex", "Regex to match moth serials: MOTH-2024-XXXX (X=digits)."},
	{CatCode, "Moth-Sort", "Explain QuickSort by using moths of different sizes in a line."},
	{CatCode, "Recursive Moth", "Write recursive function to calculate 'Dust-factor' of moth wing."},
	{CatCode, "Git Moth", "Explain 'git checkout -b new-wing' vs merging back to main."},
	{CatCode, "Moth API", "Create FastAPI endpoint '/moth_status' that returns JSON {'status': 'flying'}."},
	{CatCode, "Search Moth", "Implement Binary Search to find specific moth ID in sorted list."},
	{CatCode, "Moth-Docker", "Write Dockerfile to containerize a 'Moth-Detection' script."},

	// Trick
	{CatTrick, "Noah's Moth", "How many moths did Moses bring on the Ark?"},
	{CatTrick, "Wing Armor", "Moths return with holes in wings. Where should you add armor? (Think Wald)."},
	{CatTrick, "Silk Price", "3 moths buy lamp for $30. Each gets $1 back. Bellboy keeps $2. Where is the missing dollar?"},

	// Common sense
	{CatSense, "Moth Theory", "Sally hides silk in leaf. Anne moves it to log. Where will Sally look?"},
	{CatSense, "Gravity", "A moth and a pebble fall in a vacuum. Which hits first?"},
	{CatSense, "Compass", "Direction a moth flies if the North Star is on its left?"},
	{CatSense, "Energy", "Which part of moth anatomy uses the most oxygen during flight?"},
	{CatSense, "Reaction", "What happens when a moth touches a bug zapper? Physics."},
	{CatSense, "History", "How did 'Computer Bug' relate to a real moth in 1947?"},

	// Stress
	{CatStress, "Moth Poetry", "Write a haiku about a moth longing for the moon."},
	{CatStress, "No-Lie World", "Describe moth colony where nobody can lie for 24 hours."},
	{CatStress, "Moth Future", "Will AI-Moths replace real moths? Argue both sides."},
	{CatStress, "Final Moth", "Explain Quantum Entanglement using two moths on opposite sides of galaxy."},
}
