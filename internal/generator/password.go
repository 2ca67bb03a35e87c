package generator

import (
	"math/rand"
	"strconv"
	"strings"
)

// PasswordCharsets maps charset names accepted in a password spec to their
// alphabets.
var PasswordCharsets = map[string]string{
	"lower":   "abcdefghijklmnopqrstuvwxyz",
	"upper":   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"number":  "0123456789",
	"special": "!\"#$%&'()*+,-./:;<=>?@[]^_`{|}~",
}

// DefaultPasswordSpec is used when a user has not configured one.
const DefaultPasswordSpec = "8-12,lower,upper,number"

const (
	passwordMinLen = 1
	passwordMaxLen = 128
)

// PasswordSpec is the parsed form of a spec string such as
// "8-12,lower,upper,number" (length range) or "12,lower,number" (fixed
// length). Unknown tokens are ignored; missing parts fall back to defaults.
type PasswordSpec struct {
	Charsets []string
	MinLen   int
	MaxLen   int
}

// ParsePasswordSpec never fails: malformed input degrades to defaults so a
// stored setting can't break generation.
func ParsePasswordSpec(spec string) PasswordSpec {
	out := PasswordSpec{MinLen: 8, MaxLen: 12}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		out.Charsets = []string{"lower", "upper", "number"}
		return out
	}

	out.MinLen, out.MaxLen = 8, 8
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.Contains(part, "-"):
			lo, hi, ok := parseLengthRange(part)
			if ok {
				out.MinLen, out.MaxLen = lo, hi
			} else {
				out.MinLen, out.MaxLen = 8, 8
			}
		case isDigits(part):
			n, err := strconv.Atoi(part)
			if err == nil {
				out.MinLen, out.MaxLen = n, n
			}
		default:
			if _, ok := PasswordCharsets[part]; ok {
				out.Charsets = append(out.Charsets, part)
			}
		}
	}
	if len(out.Charsets) == 0 {
		out.Charsets = []string{"lower", "upper", "number"}
	}

	out.MinLen = clampLen(out.MinLen)
	out.MaxLen = clampLen(out.MaxLen)
	if out.MaxLen < out.MinLen {
		out.MinLen, out.MaxLen = out.MaxLen, out.MinLen
	}
	return out
}

func parseLengthRange(s string) (int, int, bool) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(strings.TrimSpace(lo))
	b, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

func clampLen(n int) int {
	if n < passwordMinLen {
		return passwordMinLen
	}
	if n > passwordMaxLen {
		return passwordMaxLen
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// generatePassword builds a password that contains at least one character
// from every selected charset, then shuffles.
func generatePassword(rng *rand.Rand, spec string) string {
	ps := ParsePasswordSpec(spec)

	var pool strings.Builder
	for _, cs := range ps.Charsets {
		pool.WriteString(PasswordCharsets[cs])
	}
	chars := pool.String()

	length := ps.MinLen
	if ps.MaxLen > ps.MinLen {
		length = ps.MinLen + rng.Intn(ps.MaxLen-ps.MinLen+1)
	}

	buf := make([]byte, 0, length)
	for _, cs := range ps.Charsets {
		if len(buf) >= length {
			break
		}
		alphabet := PasswordCharsets[cs]
		buf = append(buf, alphabet[rng.Intn(len(alphabet))])
	}
	for len(buf) < length {
		buf = append(buf, chars[rng.Intn(len(chars))])
	}

	rng.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return string(buf)
}
