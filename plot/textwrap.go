package plot

import (
	"strings"
	"unicode"
)

// wrapper splits text into lines of at most width characters. Every
// whitespace character counts as a single space, long words are broken and
// hyphenated words may be split after a hyphen. With dropWhitespace the
// whitespace at the edges of every line but the first is removed.
type wrapper struct {
	width          int
	dropWhitespace bool
}

func (w wrapper) fill(text string) string {
	return strings.Join(w.wrap(text), "\n")
}

func (w wrapper) wrap(text string) []string {
	chunks := splitChunks(mungeWhitespace(text))
	width := w.width
	lines := []string{}

	for len(chunks) > 0 {
		line := [][]rune{}
		lineLen := 0

		if w.dropWhitespace && isBlank(chunks[0]) && len(lines) > 0 {
			chunks = chunks[1:]
		}

		for len(chunks) > 0 {
			l := len(chunks[0])
			if lineLen+l > width {
				break
			}
			line = append(line, chunks[0])
			lineLen += l
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && len(chunks[0]) > width {
			spaceLeft := width - lineLen
			if width < 1 {
				spaceLeft = 1
			}
			chunk := chunks[0]
			end := spaceLeft
			if len(chunk) > spaceLeft {
				if hyphen := lastIndex(chunk[:spaceLeft], '-'); hyphen > 0 && hasNonHyphen(chunk[:hyphen]) {
					end = hyphen + 1
				}
			}
			line = append(line, chunk[:end])
			chunks[0] = chunk[end:]
		}

		if w.dropWhitespace && len(line) > 0 && isBlank(line[len(line)-1]) {
			line = line[:len(line)-1]
		}
		if len(line) > 0 {
			joined := strings.Builder{}
			for _, chunk := range line {
				joined.WriteString(string(chunk))
			}
			lines = append(lines, joined.String())
		}
	}
	return lines
}

func mungeWhitespace(text string) string {
	expanded := strings.Builder{}
	column := 0
	for _, r := range text {
		switch r {
		case '\t':
			spaces := 8 - column%8
			expanded.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case '\n', '\r':
			expanded.WriteRune(' ')
			column = 0
		case '\v', '\f':
			expanded.WriteRune(' ')
			column++
		default:
			expanded.WriteRune(r)
			column++
		}
	}
	return expanded.String()
}

// splitChunks splits text into runs of spaces and words. Words are split
// further after hyphens surrounded by letters ("long-lived" -> "long-",
// "lived") and around runs of two or more dashes between words
// ("fw--breeder" -> "fw", "--", "breeder").
func splitChunks(text string) [][]rune {
	runes := []rune(text)
	chunks := [][]rune{}
	for start := 0; start < len(runes); {
		end := chunkEnd(runes, start)
		chunks = append(chunks, runes[start:end])
		start = end
	}
	return chunks
}

func chunkEnd(runes []rune, start int) int {
	if runes[start] == ' ' {
		end := start + 1
		for end < len(runes) && runes[end] == ' ' {
			end++
		}
		return end
	}
	if start > 0 && isWordPunct(runes[start-1]) && isEmDash(runes, start) {
		return start + dashRun(runes, start)
	}
	for end := start + 1; ; end++ {
		if end == len(runes) || runes[end] == ' ' {
			return end
		}
		if runes[end] == '-' && isHyphenBreak(runes, end) {
			return end + 1
		}
		if isWordPunct(runes[end-1]) && isEmDash(runes, end) {
			return end
		}
	}
}

// isEmDash reports whether two or more dashes followed by a word character
// start at i.
func isEmDash(runes []rune, i int) bool {
	n := dashRun(runes, i)
	return n >= 2 && i+n < len(runes) && isWordChar(runes[i+n])
}

func dashRun(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && runes[i+n] == '-' {
		n++
	}
	return n
}

// isHyphenBreak reports whether a word may be broken after the hyphen at i.
func isHyphenBreak(runes []rune, i int) bool {
	at := func(j int) rune {
		if j < 0 || j >= len(runes) {
			return 0
		}
		return runes[j]
	}
	before := (isLetter(at(i-2)) && isLetter(at(i-1))) ||
		(isLetter(at(i-3)) && at(i-2) == '-' && isLetter(at(i-1)))
	if !before || !isLetter(at(i+1)) {
		return false
	}
	return isLetter(at(i+2)) || (at(i+2) == '-' && isLetter(at(i+3)))
}

func isWordChar(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r)
}

func isWordPunct(r rune) bool {
	return isWordChar(r) || strings.ContainsRune(`!"'&.,?`, r)
}

func isLetter(r rune) bool {
	return r != 0 && (unicode.IsLetter(r) || r == '_' || unicode.IsMark(r))
}

func isBlank(chunk []rune) bool {
	return strings.TrimSpace(string(chunk)) == ""
}

func lastIndex(chunk []rune, r rune) int {
	for i := len(chunk) - 1; i >= 0; i-- {
		if chunk[i] == r {
			return i
		}
	}
	return -1
}

func hasNonHyphen(chunk []rune) bool {
	for _, r := range chunk {
		if r != '-' {
			return true
		}
	}
	return false
}
