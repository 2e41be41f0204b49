package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// confirm asks a yes/no question. Anything but y or yes means no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// resolveRef turns a user reference into an id. An exact id wins; otherwise a
// 1-based position into ids is accepted.
func resolveRef(ref string, ids []string) (string, bool) {
	for _, id := range ids {
		if id == ref {
			return id, true
		}
	}

	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(ids) {
		return "", false
	}
	return ids[n-1], true
}
