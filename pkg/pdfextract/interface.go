package pdfextract

type Extractor interface {
	Text(data []byte) (string, error)
	Tables(data []byte) ([]Table, error)
}
