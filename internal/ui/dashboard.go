package ui

import (
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

const (
	separatorWidth = 41
	// NotInRepository is printed by reports run outside a git work tree.
	NotInRepository = "Not in a git repository"
)

// FullStatus prints branch, recent commits, changed paths and divergence.
func (p *Printer) FullStatus(snap models.StatusSnapshot, opts flow.Options) {
	if !snap.InRepository() {
		p.Notice(NotInRepository)
		return
	}

	t := p.theme
	var b strings.Builder
	b.WriteString(t.Separator.Render(strings.Repeat("─", separatorWidth)) + "\n")
	b.WriteString("Current branch is " + t.Current.Render(snap.Branch) + "\n")

	b.WriteString(t.Title.Render("Commits log of the branch :") + "\n")
	for _, line := range snap.Commits {
		b.WriteString(p.renderCommit(line) + "\n")
	}

	b.WriteString(t.Title.Render("Differences between HEAD, index and working tree :") + "\n")
	b.WriteString(p.renderPaths(snap.Paths))

	b.WriteString(t.Title.Render("Commits behind - ahead / upstream :") + "\n")
	b.WriteString(p.renderDivergence(snap.Divergence) + "\n")

	fmt.Fprint(p.out, b.String())
}

// Paths prints the short working tree status.
func (p *Printer) Paths(paths []models.PathEntry, opts flow.Options) {
	fmt.Fprint(p.out, p.renderPaths(paths))
}

func (p *Printer) renderPaths(paths []models.PathEntry) string {
	if len(paths) == 0 {
		return p.theme.Muted.Render("nothing to commit") + "\n"
	}

	var b strings.Builder
	for _, path := range paths {
		name := path.Path
		if path.OrigPath != "" {
			name = path.OrigPath + " -> " + path.Path
		}
		style := p.theme.Path(path.Category())
		b.WriteString(style.Render(path.DisplayStatus()) + " " + style.Render(name) + "\n")
	}
	return b.String()
}

// Divergence prints how branch compares with its upstream.
func (p *Printer) Divergence(branch string, d models.Divergence, opts flow.Options) {
	if branch == "" {
		p.Notice(NotInRepository)
		return
	}
	fmt.Fprintln(p.out, branch+" "+p.renderDivergence(d))
}

func (p *Printer) renderDivergence(d models.Divergence) string {
	state := d.State()
	style := p.theme.Divergence(state)
	if state == models.NoUpstream {
		return style.Render(state.String())
	}
	return style.Render(fmt.Sprintf("%s  %d - %d", state, d.Behind, d.Ahead))
}

// CurrentBranch prints the checked-out branch name.
func (p *Printer) CurrentBranch(name string) {
	if name == "" {
		p.Notice(NotInRepository)
		return
	}
	fmt.Fprintln(p.out, p.theme.Current.Render(name))
}

// Branches lists annotated branches one per line. With extra, ticket
// branches are split into prefix, number and short name columns.
func (p *Printer) Branches(choices []models.ChoiceAnnotation, extra bool) {
	if !extra {
		for _, c := range choices {
			fmt.Fprintln(p.out, p.theme.Category(c.Category()).Render(c.DisplayName))
		}
		return
	}

	rows := make([][4]string, 0, len(choices)+1)
	rows = append(rows, [4]string{"prefix", "number", "short name", "scope"})
	for _, c := range choices {
		cl := c.Classification
		short := cl.ShortName
		if !cl.HasTicket() {
			short = cl.CandidateLocalName
		}
		rows = append(rows, [4]string{cl.TicketPrefix, cl.TicketNumber, short, cl.Scope().String()})
	}

	var widths [3]int
	for _, row := range rows {
		for i := range widths {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-*s  %-*s  %-*s  %s", widths[0], row[0], widths[1], row[1], widths[2], row[2], row[3])
		if i == 0 {
			fmt.Fprintln(p.out, p.theme.Title.Render(strings.TrimRight(line, " ")))
			continue
		}
		fmt.Fprintln(p.out, p.theme.Category(choices[i-1].Category()).Render(line))
	}
}

// Header is the one-line summary shown above the command menu. Unknown
// values render as "??".
func Header(snap *models.StatusSnapshot) string {
	if snap == nil || !snap.InRepository() {
		return "on local branch ??  ??U ??M ??S ??↓ ??↑"
	}

	counts := snap.Counts()
	behind, ahead := "??", "??"
	if snap.Divergence.Tracked {
		behind = fmt.Sprint(snap.Divergence.Behind)
		ahead = fmt.Sprint(snap.Divergence.Ahead)
	}
	return fmt.Sprintf("on local branch %s  %dU %dM %dS %s↓ %s↑",
		snap.Branch, counts.Untracked, counts.Modified, counts.Staged, behind, ahead)
}
