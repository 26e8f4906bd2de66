//go:build !dtparse_debug

package dtparse

type loglevels struct{}

func newLoglevels() (_ loglevels)               { return loglevels{} }
func (_ loglevels) enabled() []string           { return nil }
func (_ loglevels) Int() int                    { return 0 }
func (_ *loglevels) Shift(_ ...any) loglevels   { return loglevels{} }
func (_ *loglevels) Unshift(_ ...any) loglevels { return loglevels{} }
func (_ loglevels) Positive(_ any) bool         { return false }
func (_ loglevels) positive(_ EventType) bool   { return false }
func toEventType(_ any) (EventType, bool)       { return EventNone, false }
