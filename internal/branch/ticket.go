package branch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ticketMention finds "abc#123" anywhere in free text such as a commit
// subject.
var ticketMention = regexp.MustCompile(`[A-Za-z0-9]{3}#([0-9]{3})`)

// HighestTicket returns the largest ticket number used by any of the branch
// names or mentioned in any of the commit subjects, 0 when there is none.
func (p Parser) HighestTicket(branches, subjects []string) int {
	highest := 0
	for _, name := range branches {
		c := p.Parse(name)
		if !c.HasTicket() {
			continue
		}
		if n, err := strconv.Atoi(c.TicketNumber); err == nil && n > highest {
			highest = n
		}
	}
	for _, subject := range subjects {
		for _, m := range ticketMention.FindAllStringSubmatch(subject, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
				highest = n
			}
		}
	}
	return highest
}

// MaxTicket is the largest number the 3-digit ticket segment can hold.
const MaxTicket = 999

var ErrTicketOverflow = errors.New("ticket numbers exhausted")

// FormatTicket renders n as the 3-digit ticket number.
func FormatTicket(n int) (string, error) {
	if n < 0 || n > MaxTicket {
		return "", fmt.Errorf("%w: %d does not fit in 3 digits", ErrTicketOverflow, n)
	}
	return fmt.Sprintf("%03d", n), nil
}
