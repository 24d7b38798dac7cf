package page

// Sanitize normalizes an untrusted page identifier.
// ASCII letters are lower-cased and every byte outside [a-z0-9-] is dropped.
// Invalid input is never rejected, so the result may be empty or collide with
// another identifier. The result can never contain a path separator or a dot.
func Sanitize(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-' {
			out = append(out, b)
		}
	}
	return string(out)
}
