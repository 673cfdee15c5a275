package tabtalk

// TableExtractor locates a class-marked table element in an HTML document
// and reads it into a Table.
type TableExtractor interface {
	// Extract parses html, finds the first matching table element and
	// returns its contents. Returns ENOTFOUND if no such table exists and
	// EINVALID if the table has no readable header row.
	Extract(html string) (*Table, error)
}
