package dtos

import "github.com/xdoubleu/essentia/v2/pkg/validate"

type UploadDto struct {
	FileName  string
	Data      []byte
	Selection []string
}

func (dto *UploadDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "timetable", dto.FileName, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
