package pdfextract

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultFontSize = 10.0
	// fragments closer than this many font sizes belong to the same phrase
	phraseGap = 2.0
	// fragments further apart than this many font sizes get a separating space
	wordGap = 0.2
	// a vertical gap above this many line heights starts a new grid row
	rowGap = 1.8
	// horizontal slack when matching a phrase to a column anchor
	columnTolerance = 4.0
	// glyph width estimate when the decoder reports none
	glyphWidth = 0.5
)

type phrase struct {
	x    float64
	text string
}

type line struct {
	y       float64
	height  float64
	phrases []phrase
}

// rowsFromContent groups glyphs sharing a rounded baseline, top of the page
// first. Glyphs keep their content stream order within a row.
func rowsFromContent(texts []pdf.Text) pdf.Rows {
	byY := map[int64]*pdf.Row{}
	rows := pdf.Rows{}

	for _, text := range texts {
		y := int64(math.Round(text.Y))

		row, ok := byY[y]
		if !ok {
			//nolint:exhaustruct //content is appended below
			row = &pdf.Row{Position: y}
			byY[y] = row
			rows = append(rows, row)
		}

		row.Content = append(row.Content, text)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Position > rows[j].Position
	})

	return rows
}

func toLines(rows pdf.Rows) []line {
	lines := []line{}

	for _, row := range rows {
		if row == nil || len(row.Content) == 0 {
			continue
		}

		texts := make([]pdf.Text, len(row.Content))
		copy(texts, row.Content)
		sort.SliceStable(texts, func(i, j int) bool {
			return texts[i].X < texts[j].X
		})

		l := line{
			y:       float64(row.Position),
			height:  0,
			phrases: []phrase{},
		}

		current := -1
		var currentEnd float64
		// glyphs without widths do not advance, spaces are then the only separator
		pendingSpace := false
		for _, text := range texts {
			size := text.FontSize
			if size <= 0 {
				size = defaultFontSize
			}
			l.height = math.Max(l.height, size)

			if strings.TrimSpace(text.S) == "" {
				pendingSpace = current != -1
				continue
			}

			width := text.W
			if width <= 0 {
				width = float64(utf8.RuneCountInString(text.S)) * size * glyphWidth
			}

			gap := text.X - currentEnd
			switch {
			case current == -1 || gap > phraseGap*size:
				l.phrases = append(l.phrases, phrase{x: text.X, text: text.S})
				current = len(l.phrases) - 1
			case gap > wordGap*size || pendingSpace:
				l.phrases[current].text += " " + text.S
			default:
				l.phrases[current].text += text.S
			}

			pendingSpace = false
			currentEnd = text.X + width
		}

		if len(l.phrases) == 0 {
			continue
		}

		for i := range l.phrases {
			l.phrases[i].text = norm.NFKC.String(strings.TrimSpace(l.phrases[i].text))
		}

		lines = append(lines, l)
	}

	return lines
}

// buildGrid lays the lines out as a table. The header phrase positions are
// the column anchors.
func buildGrid(lines []line) [][]string {
	headerIdx := headerIndex(lines)
	if headerIdx == -1 {
		return [][]string{}
	}

	anchors := []float64{}
	header := []string{}
	for _, p := range lines[headerIdx].phrases {
		anchors = append(anchors, p.x)
		header = append(header, p.text)
	}

	body := lines[headerIdx+1:]

	// day labels without a header cell above them
	for _, l := range body {
		if l.phrases[0].x+columnTolerance < anchors[0] {
			anchors = append([]float64{math.Inf(-1)}, anchors...)
			header = append([]string{""}, header...)
			break
		}
	}

	grid := [][]string{header}

	var current []string
	var previous *line
	for i := range body {
		l := &body[i]

		cells := make([]string, len(anchors))
		for _, p := range l.phrases {
			col := columnOf(p.x, anchors)
			cells[col] = joinCell(cells[col], p.text, " ")
		}

		startsRow := current == nil ||
			cells[0] != "" ||
			(previous != nil && previous.y-l.y > rowGap*math.Max(l.height, previous.height))

		if startsRow {
			if current != nil {
				grid = append(grid, current)
			}
			current = cells
		} else {
			for col, cell := range cells {
				current[col] = joinCell(current[col], cell, "\n")
			}
		}

		previous = l
	}

	if current != nil {
		grid = append(grid, current)
	}

	return grid
}

// headerIndex returns the first line of at least two phrases that the next
// line lines up with. Titles spread over the page do not. Without such a line
// the first line of two phrases is used.
func headerIndex(lines []line) int {
	first := -1
	for i, l := range lines {
		if len(l.phrases) < 2 { //nolint:mnd //header needs a day and a slot column
			continue
		}
		if first == -1 {
			first = i
		}
		if i+1 < len(lines) && alignsWith(l, lines[i+1]) {
			return i
		}
	}
	return first
}

// alignsWith reports whether body starts on the header columns: two phrases
// on anchors, or a day label left of the header with one phrase on an anchor.
func alignsWith(header line, body line) bool {
	aligned := 0
	dayLabel := false

	for _, p := range body.phrases {
		if p.x+columnTolerance < header.phrases[0].x {
			dayLabel = true
			continue
		}

		for _, anchor := range header.phrases {
			if math.Abs(p.x-anchor.x) <= columnTolerance {
				aligned++
				break
			}
		}
	}

	return aligned >= 2 || (dayLabel && aligned >= 1)
}

func columnOf(x float64, anchors []float64) int {
	col := 0
	for i, anchor := range anchors {
		if x+columnTolerance >= anchor {
			col = i
		}
	}
	return col
}

func joinCell(cell string, text string, sep string) string {
	switch {
	case text == "":
		return cell
	case cell == "":
		return text
	default:
		return cell + sep + text
	}
}
