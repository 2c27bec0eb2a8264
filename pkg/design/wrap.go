package design

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"
)

var whitespaceReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ", "\v", " ", "\f", " ")

// WrapText word-wraps s to width columns. Whitespace characters become
// spaces first. Words break after hyphens joining letters; words longer than
// width are broken to fill the current line, preferring a hyphen. Lines carry
// no trailing spaces. Text with no words yields no lines.
func WrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(whitespaceReplacer.Replace(s))

	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
			continue
		}

		var line []string
		n := 0
		for len(chunks) > 0 {
			w := utf8.RuneCountInString(chunks[0])
			if n+w > width {
				break
			}
			line = append(line, chunks[0])
			n += w
			chunks = chunks[1:]
		}
		if len(chunks) > 0 && utf8.RuneCountInString(chunks[0]) > width {
			head, tail := breakLongWord(chunks[0], max(width-n, 1))
			line = append(line, head)
			chunks[0] = tail
		}

		if len(line) > 0 && isBlank(line[len(line)-1]) {
			line = line[:len(line)-1]
		}
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, ""))
		}
	}
	return lines
}

// splitChunks splits s into runs of spaces and words. A word is further
// split after each hyphen that has two letters before it (or letter, hyphen,
// letter) and a letter, optional hyphen, letter after it.
func splitChunks(s string) []string {
	var chunks []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == ' ':
			if i+1 == len(runes) || runes[i+1] != ' ' {
				chunks = append(chunks, string(runes[start:i+1]))
				start = i + 1
			}
		case i+1 == len(runes) || runes[i+1] == ' ' || (r == '-' && hyphenBreak(runes, i)):
			chunks = append(chunks, string(runes[start:i+1]))
			start = i + 1
		}
	}
	return chunks
}

func hyphenBreak(r []rune, i int) bool {
	at := func(j int) rune {
		if j < 0 || j >= len(r) {
			return 0
		}
		return r[j]
	}
	before := (isWordLetter(at(i-1)) && isWordLetter(at(i-2))) ||
		(isWordLetter(at(i-1)) && at(i-2) == '-' && isWordLetter(at(i-3)))
	after := isWordLetter(at(i+1)) &&
		(isWordLetter(at(i+2)) || (at(i+2) == '-' && isWordLetter(at(i+3))))
	return before && after
}

func isWordLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// breakLongWord takes at most room columns from word, cutting after the last
// hyphen in that span when one follows other characters.
func breakLongWord(word string, room int) (string, string) {
	head := truncate.String(word, uint(room))
	if head == "" {
		_, size := utf8.DecodeRuneInString(word)
		head = word[:size]
	}
	if h := strings.LastIndexByte(head, '-'); h > 0 && strings.Trim(head[:h], "-") != "" {
		head = head[:h+1]
	}
	return head, word[len(head):]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
