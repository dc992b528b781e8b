package pdfextract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

var ErrExtraction = errors.New("could not extract content from pdf")

type extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) Extractor {
	return extractor{
		logger: logger,
	}
}

// Text returns the plain text of all pages concatenated in page order.
func (e extractor) Text(data []byte) (text string, err error) {
	defer recoverExtraction(&err)

	reader, err := open(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			e.logger.Warn(
				fmt.Sprintf("skipping page %d", i),
				"error", pageErr,
			)
			continue
		}

		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return norm.NFKC.String(sb.String()), nil
}

// Tables returns one grid per page that has a header line and at least one body row.
func (e extractor) Tables(data []byte) (tables []Table, err error) {
	defer recoverExtraction(&err)

	reader, err := open(data)
	if err != nil {
		return nil, err
	}

	tables = []Table{}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, rowsErr := pageRows(page)
		if rowsErr != nil {
			e.logger.Warn(
				fmt.Sprintf("skipping page %d", i),
				"error", rowsErr,
			)
			continue
		}

		grid := buildGrid(toLines(rows))
		if len(grid) < 2 {
			e.logger.Debug(fmt.Sprintf("no table found on page %d", i))
			continue
		}

		tables = append(tables, Table{Page: i, Rows: grid})
	}

	return tables, nil
}

// pageRows groups the page glyphs by baseline. Content tracks the full text
// matrix, GetTextByRow only sees Tm positioning and is used when Content finds
// nothing.
func pageRows(page pdf.Page) (rows pdf.Rows, err error) {
	defer recoverExtraction(&err)

	rows = rowsFromContent(page.Content().Text)
	if len(rows) > 0 {
		return rows, nil
	}

	return page.GetTextByRow()
}

func open(data []byte) (*pdf.Reader, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrExtraction)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	return reader, nil
}

// the pdf decoder panics on some malformed streams
func recoverExtraction(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if rErr, ok := r.(error); ok && errors.Is(rErr, io.ErrUnexpectedEOF) {
		*err = fmt.Errorf("%w: truncated document", ErrExtraction)
		return
	}

	*err = fmt.Errorf("%w: %v", ErrExtraction, r)
}
