//go:build !dtparse_debug

package dtparse

/*
DebugBuild returns false, as this package was built without the
"dtparse_debug" tag. Registered tracers receive no events.
*/
func DebugBuild() bool { return false }

type labeledItem struct{}

func debugInfo(_ ...any)                      {}
func debugIO(_ ...any)                        {}
func debugField(_ ...any)                     {}
func debugBuild(_ ...any)                     {}
func debugGrammar(_ ...any)                   {}
func debugAdapter(_ ...any)                   {}
func debugConstraint(_ ...any)                {}
func debugDuration(_ ...any)                  {}
func debugPath(_ ...any) func(_ ...any)       { return func(_ ...any) {} }
func newLItem(_ any, _ ...string) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string          { return `` }
