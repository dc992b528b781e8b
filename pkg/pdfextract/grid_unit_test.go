package pdfextract

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func textAt(x float64, s string) pdf.Text {
	//nolint:exhaustruct //font name is not needed
	return pdf.Text{X: x, FontSize: 10, S: s}
}

func rowAt(y int64, texts ...pdf.Text) *pdf.Row {
	return &pdf.Row{Position: y, Content: texts}
}

func TestToLinesMergesFragments(t *testing.T) {
	rows := pdf.Rows{
		rowAt(700,
			textAt(150, "MFS-A(6)-"),
			textAt(50, "Monday"),
			// 9 glyphs * 5pt ends at 195, 3pt gap is a word gap
			textAt(198, "AB"),
			textAt(300, "ET-B(2)-"),
		),
		rowAt(690, textAt(50, "   ")),
	}

	lines := toLines(rows)

	assert.Equal(t, 1, len(lines))
	assert.Equal(t, []phrase{
		{x: 50, text: "Monday"},
		{x: 150, text: "MFS-A(6)- AB"},
		{x: 300, text: "ET-B(2)-"},
	}, lines[0].phrases)
	assert.Equal(t, 10.0, lines[0].height)
}

func TestBuildGrid(t *testing.T) {
	rows := pdf.Rows{
		rowAt(760, textAt(50, "Timetable")),
		rowAt(700,
			textAt(50, "Day"),
			textAt(150, "09:00-10:00"),
			textAt(300, "10:00-11:00"),
		),
		rowAt(680, textAt(50, "Monday"), textAt(150, "MFS-A(6)- AB {C - 402}")),
		rowAt(668, textAt(150, "ET-B(2)- CD {D - 101}")),
		rowAt(640, textAt(300, "BRM-Exc(1)- EF {E-1}")),
		rowAt(620, textAt(50, "Tuesday"), textAt(301, "SCMO-A(3)- GH {F-2}")),
	}

	grid := buildGrid(toLines(rows))

	assert.Equal(t, [][]string{
		{"Day", "09:00-10:00", "10:00-11:00"},
		{"Monday", "MFS-A(6)- AB {C - 402}\nET-B(2)- CD {D - 101}", ""},
		{"", "", "BRM-Exc(1)- EF {E-1}"},
		{"Tuesday", "", "SCMO-A(3)- GH {F-2}"},
	}, grid)
}

func TestBuildGridAddsDayColumn(t *testing.T) {
	rows := pdf.Rows{
		rowAt(700, textAt(150, "09:00-10:00"), textAt(300, "10:00-11:00")),
		rowAt(680, textAt(50, "Wed"), textAt(300, "DIGM-A(4)- IJ {G-3}")),
	}

	grid := buildGrid(toLines(rows))

	assert.Equal(t, [][]string{
		{"", "09:00-10:00", "10:00-11:00"},
		{"Wed", "", "DIGM-A(4)- IJ {G-3}"},
	}, grid)
}

func TestBuildGridWithoutHeader(t *testing.T) {
	rows := pdf.Rows{
		rowAt(700, textAt(50, "only one phrase")),
	}

	assert.Equal(t, [][]string{}, buildGrid(toLines(rows)))
	assert.Equal(t, [][]string{}, buildGrid(nil))
}

func TestColumnOf(t *testing.T) {
	anchors := []float64{50, 150, 300}

	assert.Equal(t, 0, columnOf(10, anchors))
	assert.Equal(t, 0, columnOf(100, anchors))
	assert.Equal(t, 1, columnOf(147, anchors))
	assert.Equal(t, 2, columnOf(500, anchors))
}

func glyphAt(x float64, y float64, s string) pdf.Text {
	//nolint:exhaustruct //font name is not needed
	return pdf.Text{X: x, Y: y, FontSize: 10, S: s}
}

func TestRowsFromContent(t *testing.T) {
	rows := rowsFromContent([]pdf.Text{
		glyphAt(150, 679.8, "M"),
		glyphAt(150, 700, "9"),
		glyphAt(50, 680.2, "T"),
		glyphAt(155, 680, "F"),
	})

	assert.Equal(t, 2, len(rows))
	assert.Equal(t, int64(700), rows[0].Position)
	assert.Equal(t, int64(680), rows[1].Position)

	texts := []string{}
	for _, text := range rows[1].Content {
		texts = append(texts, text.S)
	}
	assert.Equal(t, []string{"M", "T", "F"}, texts)

	assert.Equal(t, 0, len(rowsFromContent(nil)))
}

func TestToLinesKeepsSpacesBetweenGlyphs(t *testing.T) {
	// glyphs of a font without widths all sit on the run start
	rows := pdf.Rows{
		rowAt(680,
			textAt(50, "T"), textAt(50, "u"), textAt(50, "e"),
			textAt(150, "C"), textAt(150, " "), textAt(150, "-"),
			textAt(150, " "), textAt(150, "4"), textAt(150, "0"), textAt(150, "2"),
		),
	}

	lines := toLines(rows)

	assert.Equal(t, 1, len(lines))
	assert.Equal(t, []phrase{
		{x: 50, text: "Tue"},
		{x: 150, text: "C - 402"},
	}, lines[0].phrases)
}

func TestBuildGridSkipsTitle(t *testing.T) {
	rows := pdf.Rows{
		rowAt(760, textAt(50, "IMT Timetable"), textAt(400, "Term III")),
		rowAt(700, textAt(150, "09:00-10:00"), textAt(300, "10:00-11:00")),
		rowAt(680, textAt(50, "Monday"), textAt(150, "MFS-A(6)- AB {C - 402}")),
	}

	grid := buildGrid(toLines(rows))

	assert.Equal(t, [][]string{
		{"", "09:00-10:00", "10:00-11:00"},
		{"Monday", "MFS-A(6)- AB {C - 402}", ""},
	}, grid)
}

func TestBuildGridSkipsTitleAboveDayHeader(t *testing.T) {
	rows := pdf.Rows{
		rowAt(760, textAt(50, "IMT Timetable"), textAt(400, "Term III")),
		rowAt(700,
			textAt(50, "Day"),
			textAt(150, "09:00-10:00"),
			textAt(300, "10:00-11:00"),
		),
		rowAt(680, textAt(50, "Monday"), textAt(300, "ET-B(2)- CD {D - 101}")),
	}

	grid := buildGrid(toLines(rows))

	assert.Equal(t, [][]string{
		{"Day", "09:00-10:00", "10:00-11:00"},
		{"Monday", "", "ET-B(2)- CD {D - 101}"},
	}, grid)
}

func TestHeaderIndexWithoutAlignedBody(t *testing.T) {
	lines := toLines(pdf.Rows{
		rowAt(760, textAt(50, "single")),
		rowAt(700, textAt(150, "09:00"), textAt(300, "10:00")),
		rowAt(680, textAt(600, "unrelated")),
	})

	assert.Equal(t, 1, headerIndex(lines))
	assert.Equal(t, -1, headerIndex(nil))
}
