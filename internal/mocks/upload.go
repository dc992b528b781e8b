package mocks

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/o-mit/imt-timetable-app/internal/upload"
)

// NewUploadRequest builds a multipart POST like the upload forms send it. An
// empty fileName leaves out the file part.
func NewUploadRequest(
	path string,
	fileName string,
	fields map[string][]string,
) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				panic(err)
			}
		}
	}

	if fileName != "" {
		part, err := writer.CreateFormFile(upload.FileField, fileName)
		if err != nil {
			panic(err)
		}

		if _, err = part.Write([]byte("%PDF-1.4\n%%EOF\n")); err != nil {
			panic(err)
		}
	}

	if err := writer.Close(); err != nil {
		panic(err)
	}

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}
