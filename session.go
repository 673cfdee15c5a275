package tabtalk

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// DefaultMaxDisplay is the number of matching rows shown per query.
const DefaultMaxDisplay = 5

// Session is one interactive search conversation over a loaded table.
// It reads queries line by line, filters the entity column for substring
// matches and announces results until the user types "exit" or input ends.
// A Session is strictly sequential: each read blocks until a full line
// arrives and queries cannot be interrupted mid-flight.
type Session struct {
	table        *Table
	entityColumn int
	notifier     Notifier
	maxDisplay   int
	in           io.Reader
	out          io.Writer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEntityColumn designates the searchable column by index.
// Defaults to the first column.
func WithEntityColumn(col int) SessionOption {
	return func(s *Session) {
		s.entityColumn = col
	}
}

// WithMaxDisplay sets how many matching rows are printed per query.
// Defaults to DefaultMaxDisplay.
func WithMaxDisplay(n int) SessionOption {
	return func(s *Session) {
		s.maxDisplay = n
	}
}

// NewSession creates a Session over table, reading queries from in and
// writing prompts and results to out. Announcements go to notifier.
func NewSession(table *Table, notifier Notifier, in io.Reader, out io.Writer, opts ...SessionOption) (*Session, error) {
	if table == nil {
		return nil, Errorf(EINVALID, "session table required")
	}
	if notifier == nil {
		return nil, Errorf(EINVALID, "session notifier required")
	}

	s := &Session{
		table:      table,
		notifier:   notifier,
		maxDisplay: DefaultMaxDisplay,
		in:         in,
		out:        out,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.entityColumn < 0 || s.entityColumn >= len(table.Columns()) {
		return nil, Errorf(EINVALID, "entity column %d out of range for %d columns", s.entityColumn, len(table.Columns()))
	}
	return s, nil
}

// Run drives the search loop until the user types "exit" or input is
// exhausted. End of input terminates the session like an explicit exit.
func (s *Session) Run() error {
	entity := s.table.Columns()[s.entityColumn]
	s.notifier.Notify(fmt.Sprintf("Starting interactive search. Searching on the column: %q.", entity))

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "\nEnter %s to search (or type 'exit' to quit): ", entity)
		if !scanner.Scan() {
			return scanner.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(query, "exit") {
			s.notifier.Notify("Session terminated. Goodbye!")
			return nil
		}
		if query == "" {
			s.notifier.Notify(fmt.Sprintf("Please enter a %s to search.", entity))
			continue
		}

		matches, err := s.table.FilterContains(s.entityColumn, query)
		if err != nil {
			return err
		}

		if matches.Len() == 0 {
			s.notifier.Notify(fmt.Sprintf("No matching record found for %q. Try a shorter, more general name.", query))
			continue
		}

		s.renderMatches(matches)
		s.announceMatch(matches.Row(0))
		s.notifier.Notify(fmt.Sprintf("Search complete. %d total result(s) found for %q.", matches.Len(), query))
	}
}

// renderMatches prints up to maxDisplay matching rows as a table.
func (s *Session) renderMatches(matches *Table) {
	limit := matches.Len()
	if limit > s.maxDisplay {
		limit = s.maxDisplay
	}

	fmt.Fprintln(s.out, "\n--- Top Matching Results ---")
	tw := tablewriter.NewWriter(s.out)
	tw.Header(s.table.Columns())
	for i := 0; i < limit; i++ {
		_ = tw.Append(matches.Row(i))
	}
	_ = tw.Render()
}

// announceMatch narrates the first matching row: the entity value first,
// then one "column: value" line per remaining column.
func (s *Session) announceMatch(row []string) {
	s.notifier.Notify(fmt.Sprintf("Found information for %s.", row[s.entityColumn]))
	for i, col := range s.table.Columns() {
		if i == s.entityColumn {
			continue
		}
		s.notifier.Notify(fmt.Sprintf("%s: %s", col, row[i]))
	}
}
