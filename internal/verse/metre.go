package verse

// metres names Italian lines by syllable count.
var metres = map[int]string{
	2:  "bisillabo",
	3:  "trisillabo",
	4:  "quadrisillabo",
	5:  "quinario",
	6:  "senario",
	7:  "settenario",
	8:  "ottonario",
	9:  "novenario",
	10: "decasillabo",
	11: "endecasillabo",
	12: "dodecasillabo",
	14: "alessandrino",
}

// Metre returns the conventional name for a line of count syllables,
// or "" when the count has none.
func Metre(count int) string {
	return metres[count]
}
