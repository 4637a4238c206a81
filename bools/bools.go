// Package bools provides small helpers for rendering and converting boolean
// values: integer coercion and caller-configurable paired-label output.
package bools

// ToInt returns 1 for true and 0 for false.
func ToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Not returns the negation of b. Useful as a function value where Go's !
// operator cannot be passed around.
func Not(b bool) bool {
	return !b
}

// Format renders b using a caller-supplied label pair.
func Format(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// YesNo renders b as "Yes" or "No".
func YesNo(b bool) string {
	return Format(b, "Yes", "No")
}

// OnOff renders b as "On" or "Off".
func OnOff(b bool) string {
	return Format(b, "On", "Off")
}

// EnabledDisabled renders b as "Enabled" or "Disabled".
func EnabledDisabled(b bool) string {
	return Format(b, "Enabled", "Disabled")
}
