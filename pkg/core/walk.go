package core

// Walk visits root and its descendants depth-first in pre-order, children in
// insertion order. depth is 0 for root. Returning false from fn skips the
// children of the view just visited.
func Walk(root View, fn func(v View, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, fn)
}

func walk(v View, depth int, fn func(View, int) bool) {
	if !fn(v, depth) {
		return
	}
	for _, child := range v.Fragment().Children() {
		walk(child, depth+1, fn)
	}
}

// FindByID returns the first view in pre-order whose ID equals id, or nil.
// The empty id never matches.
func FindByID(root View, id string) View {
	if id == "" {
		return nil
	}
	var found View
	Walk(root, func(v View, _ int) bool {
		if found != nil {
			return false
		}
		if v.Fragment().ID == id {
			found = v
			return false
		}
		return true
	})
	return found
}

// Count returns the number of views in the tree rooted at root.
func Count(root View) int {
	n := 0
	Walk(root, func(View, int) bool {
		n++
		return true
	})
	return n
}
