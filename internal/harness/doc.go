// Package harness runs syllabification case files.
//
// A case file pins the marked output of a handful of lines against one
// lexicon and separator, so changes to the rules or to the default lexicon
// show up as concrete diffs.
//
// # Case Format
//
// Cases are YAML files with the following structure:
//
//	name: case_name
//	description: "What this case pins down"
//	lexicon: lexicons/mini.yaml   # optional, relative to the case file
//	separator: "-"                # optional, defaults to "|"
//	lines:
//	  - text: "non piango"
//	    marked: "non | pian|go"
//	    count: 3
//	  - text: ""
//	    blank: true
//
// Unknown fields are rejected so typos fail loudly.
//
// # Checks
//
// Every line is checked for:
//
//   - marked: exact match of the marked line (when given)
//   - count: syllable count (when given)
//   - blank: the line has no tokens (when given)
//   - reconstruct: stripping the boundaries gives back the line's words
//   - arithmetic: count equals boundaries + 1
//
// The last two hold for every line, expected values or not.
//
// # Golden Snapshots
//
// The full output of a case can be compared against a golden file with
// AssertGolden (tests) or CompareGolden/WriteGolden (the test command).
//
//	c, err := harness.LoadCase("testdata/cases/basic.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(ctx, c, nil)
package harness
