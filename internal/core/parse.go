package core

import (
	"math/rand"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var reqCounter atomic.Uint64

const ridAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newReqID builds a short correlation id: base36 millisecond timestamp,
// a process-local counter and two random characters.
func newReqID() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(reqCounter.Add(1), 36))
	sb.WriteByte(ridAlphabet[rand.Intn(len(ridAlphabet))])
	sb.WriteByte(ridAlphabet[rand.Intn(len(ridAlphabet))])
	return sb.String()
}

// tokenizeCommandLine splits command text on whitespace. Single and double
// quotes group a token, backslash escapes the next character:
//
//	/cmd a "b c" --k=v
func tokenizeCommandLine(s string) []string {
	var tokens []string
	var cur strings.Builder
	started := false

	emit := func() {
		if started {
			tokens = append(tokens, cur.String())
			cur.Reset()
			started = false
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			emit()
		case '\\':
			if i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
				started = true
			}
		case '"', '\'':
			started = true
			quote := c
			for i++; i < len(s); i++ {
				if s[i] == '\\' && i+1 < len(s) {
					i++
					cur.WriteByte(s[i])
					continue
				}
				if s[i] == quote {
					break
				}
				cur.WriteByte(s[i])
			}
		default:
			cur.WriteByte(c)
			started = true
		}
	}
	emit()
	return tokens
}

// parseFlags separates positional args from flags. Accepted forms:
//
//	--key=value, --key value, --switch
//	-k=v, -k v, -abc (bools a, b, c)
func parseFlags(args []string) (pos []string, flags map[string]string, bools map[string]bool) {
	flags = map[string]string{}
	bools = map[string]bool{}

	takesValue := func(i int) bool {
		return i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		var name string
		switch {
		case strings.HasPrefix(a, "--") && len(a) > 2:
			name = a[2:]
		case strings.HasPrefix(a, "-") && len(a) > 1:
			name = a[1:]
			if !strings.ContainsRune(name, '=') && len(name) > 1 {
				// clustered short switches
				for _, r := range name {
					bools[string(r)] = true
				}
				continue
			}
		default:
			pos = append(pos, a)
			continue
		}

		if k, v, ok := strings.Cut(name, "="); ok {
			flags[k] = v
			continue
		}
		if takesValue(i) {
			flags[name] = args[i+1]
			i++
			continue
		}
		bools[name] = true
	}
	return pos, flags, bools
}
