package pdfextract

// Table is the cell grid found on one page. Rows[0] holds the column headers.
type Table struct {
	Page int
	Rows [][]string
}

func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return []string{}
	}
	return t.Rows[0]
}

func (t Table) Body() [][]string {
	if len(t.Rows) < 2 {
		return [][]string{}
	}
	return t.Rows[1:]
}
