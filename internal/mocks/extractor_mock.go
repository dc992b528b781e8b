package mocks

import (
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

type MockExtractor struct {
	text   string
	tables []pdfextract.Table
	err    error
}

func NewMockExtractor(text string, tables []pdfextract.Table) pdfextract.Extractor {
	return MockExtractor{
		text:   text,
		tables: tables,
		err:    nil,
	}
}

func NewFailingExtractor(err error) pdfextract.Extractor {
	//nolint:exhaustruct //no content
	return MockExtractor{
		err: err,
	}
}

func (m MockExtractor) Text(_ []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m MockExtractor) Tables(_ []byte) ([]pdfextract.Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tables, nil
}
