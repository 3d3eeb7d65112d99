package batchfile

import (
	"strings"
	"unicode"

	"gopkg.in/ini.v1"
)

// iniOptions follow the ConfigParser dialect: case-sensitive keys, indented
// continuation lines, no backslash continuation and no quote removal. Inline
// comments are handled by cleanValue.
var iniOptions = ini.LoadOptions{
	IgnoreContinuation:         true,
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
	KeyValueDelimiters:         "=:",
}

// valueMark is put in front of every raw value so ini.v1 never reads a
// leading backtick or """ as a quoted literal. cleanValue removes it.
const valueMark = "\x00"

func parseINI(data []byte, doc *Document) error {
	f, err := ini.LoadSources(iniOptions, markValues(data))
	if err != nil {
		return err
	}

	for _, sec := range f.Sections() {
		name := sec.Name()
		if name != ini.DefaultSection {
			doc.addSection(name)
		}
		for _, key := range sec.Keys() {
			doc.set(name, key.Name(), cleanValue(key.String()))
		}
	}
	return nil
}

// markValues inserts valueMark after the delimiter (and the blanks following
// it) of every key line. Continuation, comment and section lines are left
// alone.
func markValues(data []byte) []byte {
	var b strings.Builder
	b.Grow(len(data))
	for _, line := range strings.SplitAfter(string(data), "\n") {
		if isKeyLine(line) {
			if i := strings.IndexAny(line, iniOptions.KeyValueDelimiters); i >= 0 {
				j := i + 1
				for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
					j++
				}
				line = line[:j] + valueMark + line[j:]
			}
		}
		b.WriteString(line)
	}
	return []byte(b.String())
}

func isKeyLine(line string) bool {
	return line != "" && !strings.ContainsRune(" \t\f\r\n[#;", rune(line[0]))
}

// cleanValue undoes markValues and applies ConfigParser value rules. On the
// first line only the first ";" starts a comment, and only after whitespace;
// a bare "" means empty. Continuation lines are trimmed, blank ones dropped,
// and joined with newlines.
func cleanValue(raw string) string {
	lines := strings.Split(raw, "\n")

	first := strings.TrimPrefix(lines[0], valueMark)
	if i := strings.IndexByte(first, ';'); i > 0 && unicode.IsSpace(rune(first[i-1])) {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	if first == `""` {
		first = ""
	}

	out := []string{first}
	for _, l := range lines[1:] {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
