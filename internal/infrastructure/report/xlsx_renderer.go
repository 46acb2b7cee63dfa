package report

import (
	"fmt"
	"strconv"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "BoQ"
	lastColumn      = "E"
	rowHeight       = 50

	zeroQuantityLabel = "As per estimate calculation"
	resourceNote      = "Consumption rate to be confirmed by estimate"
)

var (
	columnWidths = []float64{8, 50, 12, 15, 50}
	headerLabels = []any{"No.", "Work description", "Unit", "Qty", "Note"}
)

// XLSXRenderer lays an estimate out as a single-sheet bill of quantities: title, header,
// then per section a category row, per work type a banner row and numbered work rows
// each followed by their resource rows. Work numbers run across the whole section.
type XLSXRenderer struct{}

var _ interfaces.IEstimateRenderer = (*XLSXRenderer)(nil)

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (r *XLSXRenderer) ContentType() string   { return xlsxContentType }
func (r *XLSXRenderer) FileExtension() string { return "xlsx" }

type xlsxStyles struct {
	title, header, category, workType int
	item, itemCenter, itemRight       int
	res, resCenter, resRight          int
}

func (r *XLSXRenderer) Render(detail entities.EstimateDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, err
		}
	}
	st, err := newXLSXStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, row: 1}
	w.banner(detail.Name, st.title)
	w.values(headerLabels, st.header, st.header, st.header)

	for _, sec := range detail.Sections {
		w.banner(sec.WorkCategoryName, st.category)
		workNumber := 1
		for _, wt := range sec.WorkTypes {
			w.banner(workTypeTitle(wt), st.workType)
			for _, it := range wt.Items {
				w.values([]any{strconv.Itoa(workNumber), it.WorkName, it.WorkUnit, formatQuantity(it.Volume), ""},
					st.item, st.itemCenter, st.itemRight)
				for i, res := range it.Resources {
					w.values([]any{
						fmt.Sprintf("%d.%d", workNumber, i+1),
						"→ " + res.ResourceName,
						res.ResourceUnit,
						formatQuantity(res.Quantity),
						resourceNote,
					}, st.res, st.resCenter, st.resRight)
				}
				workNumber++
			}
		}
	}
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// workTypeTitle shows the type's share of the section and the area it covers.
func workTypeTitle(wt entities.EstimateSectionWorkTypeDetail) string {
	return fmt.Sprintf("%s (%s%%, %s m²)", wt.WorkTypeName,
		strconv.FormatFloat(wt.Percentage, 'f', -1, 64),
		strconv.FormatFloat(wt.TypeArea, 'f', 2, 64))
}

// formatQuantity prints two decimals; zero means the figure comes from the cost estimate.
func formatQuantity(v float64) string {
	if v == 0 {
		return zeroQuantityLabel
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) cell(col string) string {
	return col + strconv.Itoa(w.row)
}

// banner writes a merged full-width row.
func (w *sheetWriter) banner(text string, style int) {
	if w.err != nil {
		return
	}
	first, last := w.cell("A"), w.cell(lastColumn)
	steps := []func() error{
		func() error { return w.f.SetCellValue(sheetName, first, text) },
		func() error { return w.f.MergeCell(sheetName, first, last) },
		func() error { return w.f.SetCellStyle(sheetName, first, last, style) },
		func() error { return w.f.SetRowHeight(sheetName, w.row, rowHeight) },
	}
	w.run(steps)
	w.row++
}

// values writes one table row; number and unit columns are centered, quantity is right-aligned.
func (w *sheetWriter) values(vals []any, left, center, right int) {
	if w.err != nil {
		return
	}
	steps := []func() error{
		func() error { return w.f.SetSheetRow(sheetName, w.cell("A"), &vals) },
		func() error { return w.f.SetCellStyle(sheetName, w.cell("A"), w.cell(lastColumn), left) },
		func() error { return w.f.SetCellStyle(sheetName, w.cell("A"), w.cell("A"), center) },
		func() error { return w.f.SetCellStyle(sheetName, w.cell("C"), w.cell("C"), center) },
		func() error { return w.f.SetCellStyle(sheetName, w.cell("D"), w.cell("D"), right) },
		func() error { return w.f.SetRowHeight(sheetName, w.row, rowHeight) },
	}
	w.run(steps)
	w.row++
}

func (w *sheetWriter) run(steps []func() error) {
	for _, step := range steps {
		if err := step(); err != nil {
			w.err = err
			return
		}
	}
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var st xlsxStyles
	var err error
	mk := func(dst *int, s *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(s)
	}

	mk(&st.title, bannerStyle("16A34A", "FFFFFF", 14, "000000"))
	mk(&st.header, bannerStyle("16A34A", "FFFFFF", 11, "000000"))
	mk(&st.category, bannerStyle("16A34A", "FFFFFF", 12, "000000"))
	mk(&st.workType, bannerStyle("DBEAFE", "1E3A8A", 12, "D1D5DB"))

	itemFont := &excelize.Font{Bold: true, Size: 11, Color: "111827"}
	resFont := &excelize.Font{Italic: true, Size: 11, Color: "374151"}
	mk(&st.item, rowStyle("FFFFFF", itemFont, "left"))
	mk(&st.itemCenter, rowStyle("FFFFFF", itemFont, "center"))
	mk(&st.itemRight, rowStyle("FFFFFF", itemFont, "right"))
	mk(&st.res, rowStyle("F9FAFB", resFont, "left"))
	mk(&st.resCenter, rowStyle("F9FAFB", resFont, "center"))
	mk(&st.resRight, rowStyle("F9FAFB", resFont, "right"))
	return st, err
}

func bannerStyle(fill, fontColor string, size float64, border string) *excelize.Style {
	return &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		Font:      &excelize.Font{Bold: true, Size: size, Color: fontColor},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border:    thinBorder(border),
	}
}

func rowStyle(fill string, font *excelize.Font, horizontal string) *excelize.Style {
	return &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		Font:      font,
		Alignment: &excelize.Alignment{Horizontal: horizontal, Vertical: "center", WrapText: true},
		Border:    thinBorder("D1D5DB"),
	}
}

func thinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: 1},
		{Type: "top", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
	}
}
