package output

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

func Indent(spaces int, multilineText string) string {
	indent := strings.Repeat(" ", spaces)
	lines := strings.Split(multilineText, "\n")
	var indented strings.Builder
	for i, line := range lines {
		indented.WriteString(indent)
		indented.WriteString(line)
		if len(lines) > 1 && i < len(lines)-1 {
			indented.WriteRune('\n') //unless last line or only line
		}
	}
	return indented.String()
}

// Plural picks the word form for a count or for the length of a slice/map/string.
func Plural(countable interface{}, singular string, plural string) string {
	switch c := countable.(type) {
	case int:
		if c != 1 {
			return plural
		}
	default:
		if reflect.ValueOf(c).Len() != 1 {
			return plural
		}
	}
	return singular
}

func Filesize(i int64) string {
	switch {
	case i >= 1024*1024:
		return fmt.Sprintf("%.1f MiB (%d bytes)", float64(i)/float64(1024*1024), i)
	case i > 1024:
		return fmt.Sprintf("%.0f KiB (%d bytes)", float64(i)/float64(1024), i)
	case i == 1:
		return "1 byte"
	default:
		return fmt.Sprintf("%d bytes", i)
	}
}

const Unknown = "unknown"

// Timestamp renders absent times as Unknown instead of the zero date.
func Timestamp(t time.Time, known bool) string {
	if !known {
		return Unknown
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// Field renders an aligned "label: value" line of a record.
func Field(label string, value string) string {
	return fmt.Sprintf("%-10s %s\n", label+":", value)
}
