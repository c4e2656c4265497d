package parser

import (
	"strconv"
	"strings"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// ParseIndex converts a 1-based positive integer from a preamble into a
// 0-based index. A non-numeric, zero or negative value is a parse error;
// whether the index fits the filtered list is checked later, at execution
// time.
func ParseIndex(preamble string) (int, error) {
	trimmed := strings.TrimSpace(preamble)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, &ParseError{Message: "Index is not a non-zero unsigned integer."}
	}
	return n - 1, nil
}

// requireValue fetches a mandatory prefix value, failing with the command's
// usage string when absent.
func requireValue(mm ArgumentMultimap, p Prefix, usage string) (string, error) {
	v, ok := mm.Value(p)
	if !ok {
		return "", invalidFormat(usage)
	}
	return v, nil
}

// parseTags builds the tag set from every tag/ occurrence. A single empty
// "tag/" clears the set, mirroring how an empty keyed value reads naturally.
func parseTags(values []string) ([]shared.Tag, error) {
	if len(values) == 1 && values[0] == "" {
		return nil, nil
	}
	tags := make([]shared.Tag, 0, len(values))
	for _, v := range values {
		t, err := shared.NewTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
