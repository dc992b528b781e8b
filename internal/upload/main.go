package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const FileField = "timetable"

type File struct {
	Name string
	Data []byte
}

// ReadFile parses the request as multipart form and returns the uploaded
// timetable. A missing file is not an error, the returned File is empty.
func ReadFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (File, error) {
	var file File

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := r.ParseMultipartForm(maxBytes)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return file, fmt.Errorf("parsing upload: %w", err)
	}

	f, header, err := r.FormFile(FileField)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return file, nil
	case err != nil:
		return file, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return file, fmt.Errorf("reading upload: %w", err)
	}

	file.Name = header.Filename
	file.Data = data

	return file, nil
}

// Values returns the trimmed, non-empty and unique form values for key. Values
// may also be comma separated.
func Values(r *http.Request, key string) []string {
	seen := map[string]bool{}
	result := []string{}

	for _, raw := range r.Form[key] {
		for _, value := range strings.Split(raw, ",") {
			value = strings.TrimSpace(value)
			if value == "" || seen[value] {
				continue
			}

			seen[value] = true
			result = append(result, value)
		}
	}

	return result
}
