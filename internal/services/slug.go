package services

import "strings"

// Slugify derives a URL-safe identifier from a display name: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen, no
// leading or trailing hyphen. Shared by startup creation and organization
// creation so both derive the same slug from the same name.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteRune(r)
	}
	return b.String()
}
