// Package display provides human-readable names for catalog codes.
//
// Rule: codes are for machines, words are for humans. Use these in CLI
// output and reports; keep raw codes for YAML fields and map keys.
package display

import "strings"

// --- Difficulty ---

var difficulties = map[string]string{
	"basic":        "Basic",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

// Difficulty returns the display name for a difficulty code.
// Unknown codes are returned as-is.
func Difficulty(code string) string {
	if name, ok := difficulties[code]; ok {
		return name
	}
	return code
}

// --- Discipline ---

var disciplines = map[string]string{
	"mechanical": "Mechanical",
	"electrical": "Electrical",
	"civil":      "Civil",
	"chemical":   "Chemical",
	"aerospace":  "Aerospace",
}

// Discipline returns the display name for a discipline code.
func Discipline(code string) string {
	if name, ok := disciplines[code]; ok {
		return name
	}
	return code
}

// Category turns a kebab-case category code into title words:
// "mechanics-of-materials" -> "Mechanics Of Materials".
func Category(code string) string {
	if code == "" {
		return ""
	}
	words := strings.Split(code, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
