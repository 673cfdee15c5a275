// Package goquery provides a goquery-based implementation of
// tabtalk.TableExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkoscik/tabtalk"
)

// DefaultTableClass is the class marker used to locate the data table.
// Wikipedia tags its data tables with it.
const DefaultTableClass = "wikitable"

// Ensure Extractor implements tabtalk.TableExtractor at compile time.
var _ tabtalk.TableExtractor = (*Extractor)(nil)

// Extractor reads the first class-marked table of an HTML document into a
// tabtalk.Table.
type Extractor struct {
	tableClass string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTableClass overrides the class marker used to locate the table.
// Defaults to DefaultTableClass if not specified.
func WithTableClass(class string) Option {
	return func(e *Extractor) {
		e.tableClass = class
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		tableClass: DefaultTableClass,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and reads the first marked table. Header cells come
// from the th elements of the first row; data rows accept both th and td
// cells since entity names sometimes live in header-style cells. Cell text
// is trimmed of surrounding whitespace. Row width normalization (dropping
// short rows, truncating long ones) happens in tabtalk.NewTable.
func (e *Extractor) Extract(html string) (*tabtalk.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tabtalk.Errorf(tabtalk.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table." + e.tableClass).First()
	if table.Length() == 0 {
		return nil, tabtalk.Errorf(tabtalk.ENOTFOUND, "no table with class %q found", e.tableClass)
	}

	rows := table.Find("tr")
	if rows.Length() == 0 {
		return nil, tabtalk.Errorf(tabtalk.EINVALID, "table headers could not be read: table has no rows")
	}

	var columns []string
	rows.First().Find("th").Each(func(_ int, cell *goquery.Selection) {
		columns = append(columns, strings.TrimSpace(cell.Text()))
	})
	if len(columns) == 0 {
		return nil, tabtalk.Errorf(tabtalk.EINVALID, "table headers could not be read: first row has no header cells")
	}

	var data [][]string
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		data = append(data, cells)
	})

	return tabtalk.NewTable(columns, data)
}
