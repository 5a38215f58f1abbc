package memorial

import "strings"

// honorificSuffix is the display marker appended to every deceased person's
// name on the read path ("z"l", of blessed memory). It is never persisted.
const honorificSuffix = " ז״ל"

// DisplayName returns the name with the honorific suffix applied.
// Idempotent: a name already carrying the suffix is returned unchanged.
func DisplayName(name string) string {
	if strings.HasSuffix(name, honorificSuffix) {
		return name
	}
	return name + honorificSuffix
}

// StorageName returns the name with the honorific suffix stripped, suitable
// for persistence. Idempotent.
func StorageName(name string) string {
	return strings.TrimSuffix(name, honorificSuffix)
}
