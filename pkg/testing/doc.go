// Package testing provides finders for asserting on view trees in tests.
//
// # Quick Start
//
// Build a tree, then locate views in it:
//
//	func TestLoginForm(t *testing.T) {
//	    root := buildLoginForm()
//
//	    submit := palantirtest.Find(root, palantirtest.ByID("submit"))
//	    if !submit.Exists() {
//	        t.Fatal("expected a submit button")
//	    }
//
//	    labels := palantirtest.Find(root, palantirtest.Descendant(
//	        palantirtest.ByType[*widgets.Button](),
//	        palantirtest.ByText("Log in"),
//	    ))
//	    if labels.Count() != 1 {
//	        t.Errorf("found %d button labels", labels.Count())
//	    }
//	}
//
// Finders walk the tree depth-first in insertion order and never mutate it.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import palantirtest "github.com/palantir-ui/palantir/pkg/testing"
package testing
