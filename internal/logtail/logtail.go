package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Field is one key=value pair of a logfmt line.
type Field struct {
	Key   string
	Value string
}

// Entry is a parsed logrus text-formatter line.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []Field
}

// Parse splits a logfmt line (as written by logrus' TextFormatter with
// colors disabled) into its well-known keys and the remaining fields. It
// reports false when the line carries no level.
func Parse(line string) (Entry, bool) {
	var entry Entry
	for _, f := range splitFields(line) {
		switch f.Key {
		case "time":
			entry.Time = f.Value
		case "level":
			entry.Level = f.Value
		case "msg":
			entry.Message = f.Value
		default:
			entry.Fields = append(entry.Fields, f)
		}
	}
	return entry, entry.Level != ""
}

func splitFields(line string) []Field {
	var fields []Field
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			break
		}
		key := rest[:eq]
		if strings.ContainsAny(key, " \t") {
			break
		}
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := closingQuote(rest)
			if end < 0 {
				value, rest = rest, ""
			} else {
				raw := rest[:end+1]
				rest = rest[end+1:]
				if unq, err := strconv.Unquote(raw); err == nil {
					value = unq
				} else {
					value = strings.Trim(raw, `"`)
				}
			}
		} else {
			sp := strings.IndexByte(rest, ' ')
			if sp < 0 {
				value, rest = rest, ""
			} else {
				value, rest = rest[:sp], rest[sp:]
			}
		}
		fields = append(fields, Field{Key: key, Value: value})
		rest = strings.TrimLeft(rest, " ")
	}
	return fields
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// Styles controls how Highlight renders each part of an entry.
type Styles struct {
	Time    lipgloss.Style
	Key     lipgloss.Style
	Message lipgloss.Style
	Levels  map[string]lipgloss.Style
}

// Highlight renders one log line for the log overlay. Lines that do not
// parse are returned unchanged.
func Highlight(line string, s Styles) string {
	entry, ok := Parse(line)
	if !ok {
		return line
	}

	var b strings.Builder
	if entry.Time != "" {
		b.WriteString(s.Time.Render(shortTime(entry.Time)))
		b.WriteByte(' ')
	}
	level := strings.ToUpper(entry.Level)
	if len(level) > 4 {
		level = level[:4]
	}
	if style, found := s.Levels[entry.Level]; found {
		b.WriteString(style.Render(fmt.Sprintf("%-4s", level)))
	} else {
		b.WriteString(fmt.Sprintf("%-4s", level))
	}
	b.WriteByte(' ')
	b.WriteString(s.Message.Render(entry.Message))
	for _, f := range entry.Fields {
		b.WriteByte(' ')
		b.WriteString(s.Key.Render(f.Key + "="))
		b.WriteString(f.Value)
	}
	return b.String()
}

// HighlightLines applies Highlight to each line.
func HighlightLines(lines []string, s Styles) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Highlight(line, s)
	}
	return out
}

// shortTime trims an RFC 3339 timestamp down to its clock portion.
func shortTime(ts string) string {
	t := strings.IndexByte(ts, 'T')
	if t < 0 || len(ts) < t+9 {
		return ts
	}
	return ts[t+1 : t+9]
}
