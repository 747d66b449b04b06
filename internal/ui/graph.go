package ui

import (
	"fmt"
	"strings"
)

const graphChars = "*|/\\_-. "

// Commits prints rendered one-line commits, newest first.
func (p *Printer) Commits(lines []string) {
	if len(lines) == 0 {
		p.Notice("No commits")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(p.out, p.renderCommit(line))
	}
}

// Graph prints log lines that carry the ascii graph in front.
func (p *Printer) Graph(lines []string) {
	if len(lines) == 0 {
		p.Notice("No commits")
		return
	}
	for _, line := range lines {
		graph, rest := splitGraph(line)
		fmt.Fprintln(p.out, p.theme.Muted.Render(graph)+p.renderCommit(rest))
	}
}

// renderCommit highlights the abbreviated hash at the start of line.
func (p *Printer) renderCommit(line string) string {
	hash, rest, ok := strings.Cut(line, " ")
	if !ok || !isHash(hash) {
		return line
	}
	return p.theme.Hint.Render(hash) + " " + rest
}

// splitGraph separates the leading graph drawing from the commit text.
// Lines that are all graph (merge connectors) have no commit text.
func splitGraph(line string) (graph, rest string) {
	i := 0
	for i < len(line) && strings.IndexByte(graphChars, line[i]) >= 0 {
		i++
	}
	return line[:i], line[i:]
}

func isHash(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
