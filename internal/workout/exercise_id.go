package workout

import "strings"

// ExerciseID normalizes an exercise display title into the key used to
// group the same exercise across workouts: lower-cased, with runs of
// non-alphanumeric characters collapsed to a single "-" and leading or
// trailing separators trimmed. "Bench Press (Barbell)" and
// "bench press barbell" map to the same id.
func ExerciseID(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
