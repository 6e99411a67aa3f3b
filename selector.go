package pagewatch

import "strings"

// Attr is a single attribute on an HTML start tag.
type Attr struct {
	Key string
	Val string
}

// Step is one predicate in a compiled selector, matching one level of tag
// ancestry. Steps are pure and stateless: the same (tag, attrs) input
// always produces the same answer.
type Step func(tag string, attrs []Attr) bool

// CompileSelector compiles a space-separated selector string into an ordered
// sequence of Steps, one per descendant level. Three step forms are
// supported:
//
//   - "#id" matches a tag carrying an id attribute equal to "id"
//   - ".cls" matches a tag whose class attribute, split on single spaces,
//     contains "cls" as one element
//   - anything else matches the tag name exactly
//
// Empty tokens (consecutive spaces) are dropped. Order is preserved and
// represents required descendant nesting, not immediate children. An empty
// query compiles to zero steps.
func CompileSelector(query string) []Step {
	var steps []Step
	for _, tok := range strings.Split(query, " ") {
		if tok == "" {
			continue
		}
		steps = append(steps, compileStep(tok))
	}
	return steps
}

func compileStep(tok string) Step {
	switch {
	case strings.HasPrefix(tok, "#"):
		id := tok[1:]
		return func(_ string, attrs []Attr) bool {
			for _, a := range attrs {
				if a.Key == "id" && a.Val == id {
					return true
				}
			}
			return false
		}
	case strings.HasPrefix(tok, "."):
		class := tok[1:]
		return func(_ string, attrs []Attr) bool {
			for _, a := range attrs {
				if a.Key != "class" {
					continue
				}
				for _, c := range strings.Split(a.Val, " ") {
					if c == class {
						return true
					}
				}
			}
			return false
		}
	default:
		return func(tag string, _ []Attr) bool {
			return tag == tok
		}
	}
}
