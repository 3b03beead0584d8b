package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/palantir-ui/palantir/pkg/core"
	"github.com/palantir-ui/palantir/pkg/widgets"
)

// Finder locates views in a tree.
type Finder interface {
	// Evaluate returns all matching views under root (depth-first pre-order).
	Evaluate(root core.View) []core.View
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	views  []core.View
	finder Finder
}

// Find evaluates f against root.
func Find(root core.View, f Finder) FinderResult {
	return FinderResult{views: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.View {
	if len(r.views) == 0 {
		panic(fmt.Sprintf("Finder found no views: %s", r.description()))
	}
	return r.views[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.View {
	if len(r.views) == 0 {
		return nil
	}
	return r.views[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.View {
	if index < 0 || index >= len(r.views) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.views), r.description()))
	}
	return r.views[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.View {
	return r.views
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.views)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.views) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type typeFinder struct {
	viewType reflect.Type
	typeName string
}

func (f *typeFinder) Evaluate(root core.View) []core.View {
	return collectMatches(root, func(v core.View) bool {
		return reflect.TypeOf(v) == f.viewType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches views of type T, usually a pointer
// such as *widgets.Label.
func ByType[T core.View]() Finder {
	t := reflect.TypeFor[T]()
	return &typeFinder{viewType: t, typeName: t.String()}
}

type idFinder struct {
	id string
}

func (f *idFinder) Evaluate(root core.View) []core.View {
	if f.id == "" {
		return nil
	}
	return collectMatches(root, func(v core.View) bool {
		return v.Fragment().ID == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByID(%q)", f.id)
}

// ByID returns a finder that matches views whose Fragment ID equals id.
// The empty id matches nothing.
func ByID(id string) Finder {
	return &idFinder{id: id}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root core.View) []core.View {
	return collectMatches(root, func(v core.View) bool {
		l, ok := v.(*widgets.Label)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(l.Text(), f.text)
		}
		return l.Text() == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches [widgets.Label] views with exact text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches [widgets.Label] views whose
// text contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type predicateFinder struct {
	fn   func(core.View) bool
	desc string
}

func (f *predicateFinder) Evaluate(root core.View) []core.View {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches views satisfying fn.
func ByPredicate(fn func(core.View) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds views matching 'matching' that are descendants of
// views matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.View) []core.View {
	ancestors := f.of.Evaluate(root)
	if len(ancestors) == 0 {
		return nil
	}
	var results []core.View
	seen := make(map[core.View]bool)
	for _, ancestor := range ancestors {
		// Search each ancestor's subtree, skipping the ancestor itself.
		for _, child := range ancestor.Fragment().Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches views satisfying 'matching' that
// are descendants of views matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root core.View, match func(core.View) bool) []core.View {
	var out []core.View
	core.Walk(root, func(v core.View, _ int) bool {
		if match(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}
