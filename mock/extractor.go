package mock

import "github.com/pkoscik/tabtalk"

var _ tabtalk.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of tabtalk.TableExtractor.
type TableExtractor struct {
	ExtractFn func(html string) (*tabtalk.Table, error)
}

func (e *TableExtractor) Extract(html string) (*tabtalk.Table, error) {
	return e.ExtractFn(html)
}
