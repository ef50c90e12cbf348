package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Report palette.
var (
	navy     = [3]int{27, 42, 74}
	midBlue  = [3]int{58, 91, 160}
	darkGrey = [3]int{64, 64, 64}
)

const pdfMargin = 20.0

type pdfWriter struct {
	doc          *fpdf.Fpdf
	tr           func(string) string
	pageWidth    float64
	pageHeight   float64
	contentWidth float64
}

// RenderPDF lays the report out as a paginated A4 document and returns the
// PDF bytes. Content mirrors RenderText; pagination breaks automatically when
// the remaining vertical space is insufficient for the next block, and every
// page carries an inquiry/date/page-count footer.
func RenderPDF(r *Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	w, h := doc.GetPageSize()
	p := &pdfWriter{
		doc:          doc,
		tr:           doc.UnicodeTranslatorFromDescriptor(""),
		pageWidth:    w,
		pageHeight:   h,
		contentWidth: w - 2*pdfMargin,
	}

	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, pdfMargin)
	doc.AliasNbPages("")

	footerName := r.InquiryName
	if footerName == "" {
		footerName = "Assessment"
	}
	doc.SetFooterFunc(func() {
		doc.SetY(-10)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(150, 150, 150)
		doc.CellFormat(0, 5,
			p.tr(fmt.Sprintf("%s | %s | Page %d of {nb}", footerName, r.ConsultDate, doc.PageNo())),
			"", 0, "C", false, 0, "")
	})

	doc.AddPage()
	p.titleBanner(r)

	p.heading("Summary")
	p.body(fmt.Sprintf("Questions assessed: %d / %d", r.Summary.TotalAnswered, r.Summary.TotalQuestions))
	p.body(fmt.Sprintf("Gaps identified: %d", r.Summary.GapCount))
	p.body(fmt.Sprintf("High-risk gaps: %d", r.Summary.HighRiskCount))
	p.space(3)

	if r.Overall != "" {
		p.heading("Overall Assessment")
		p.body(r.Overall)
		p.space(3)
	}

	if pl := r.Planning; pl != nil {
		p.heading("Planning & Benchmarking")
		p.body(fmt.Sprintf("Scale: %s | Cost range: %s | Duration: %s",
			pl.Profile.Label, pl.Profile.CostRange, pl.Profile.DurationRange))
		if pl.CustomBudget != "" {
			p.body(fmt.Sprintf("Working budget: £%sm", pl.CustomBudget))
		}
		if pl.CustomDuration != "" {
			p.body(fmt.Sprintf("Working duration: %s months", pl.CustomDuration))
		}
		for _, line := range pl.Breakdown {
			p.body(fmt.Sprintf("%s: ~£%sm (%d%%)", line.Label, formatAmount(line.Amount), line.Pct))
		}
		p.space(3)
	}

	p.rule()
	p.heading("Gap Analysis & Action Plan")
	if len(r.Gaps) == 0 {
		p.body("No gaps identified.")
	} else {
		p.gapTable(r.Gaps)
		p.space(6)

		p.checkPage(20)
		p.heading("Recommended Actions")
		for _, g := range r.Gaps {
			p.checkPage(25)
			p.subheading(fmt.Sprintf("%d. %s", g.Index, g.Question.Text))
			p.body(fmt.Sprintf("Phase: %s | Risk: %s | Status: %s", g.Phase, g.RiskLabel, g.StatusLabel))
			p.body("Action: " + g.Action)
			if g.Note != "" {
				p.body("Notes: " + g.Note)
			}
			p.space(2)
		}
	}

	p.rule()
	p.heading("Phase-by-Phase Summary")
	for _, ph := range r.Phases {
		p.checkPage(20)
		p.subheading(ph.Name)
		p.body(fmt.Sprintf("Assessed: %d/%d | Gaps: %d (%d high-risk)",
			ph.Stats.Answered, ph.Stats.Total, ph.Stats.Gaps, ph.Stats.HighRiskGaps))
		if ph.Commentary != "" {
			p.body("Commentary: " + ph.Commentary)
		}
		p.space(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *pdfWriter) titleBanner(r *Report) {
	doc := p.doc
	doc.SetFillColor(navy[0], navy[1], navy[2])
	doc.Rect(0, 0, p.pageWidth, 80, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 24)
	doc.Text(pdfMargin, 30, "Public Inquiry")
	doc.Text(pdfMargin, 42, "Consulting Assessment")
	doc.SetFont("Helvetica", "", 14)
	name := r.InquiryName
	if name == "" {
		name = "Unnamed Inquiry"
	}
	doc.Text(pdfMargin, 58, p.tr(name))
	doc.SetFont("Helvetica", "", 11)
	doc.Text(pdfMargin, 68, r.ConsultDate)
	doc.SetY(95)
	doc.SetTextColor(darkGrey[0], darkGrey[1], darkGrey[2])
}

// checkPage starts a new page when less than needed mm remain.
func (p *pdfWriter) checkPage(needed float64) {
	if p.doc.GetY()+needed > p.pageHeight-pdfMargin {
		p.doc.AddPage()
		p.doc.SetY(pdfMargin)
	}
}

func (p *pdfWriter) heading(text string) {
	p.checkPage(15)
	p.doc.SetFont("Helvetica", "B", 13)
	p.doc.SetTextColor(midBlue[0], midBlue[1], midBlue[2])
	p.doc.SetX(pdfMargin)
	p.doc.CellFormat(p.contentWidth, 8, p.tr(text), "", 1, "L", false, 0, "")
}

func (p *pdfWriter) subheading(text string) {
	p.checkPage(12)
	p.doc.SetFont("Helvetica", "B", 11)
	p.doc.SetTextColor(navy[0], navy[1], navy[2])
	p.doc.SetX(pdfMargin)
	p.doc.MultiCell(p.contentWidth, 6, p.tr(text), "", "L", false)
}

func (p *pdfWriter) body(text string) {
	p.doc.SetFont("Helvetica", "", 10)
	p.doc.SetTextColor(darkGrey[0], darkGrey[1], darkGrey[2])
	// SplitLines works on the translated cp1252 bytes; SplitText would
	// re-decode them as UTF-8 and panic on anything non-ASCII.
	lines := p.doc.SplitLines([]byte(p.tr(text)), p.contentWidth)
	for _, line := range lines {
		p.checkPage(6)
		p.doc.SetX(pdfMargin)
		p.doc.CellFormat(p.contentWidth, 5, string(line), "", 1, "L", false, 0, "")
	}
	p.space(2)
}

func (p *pdfWriter) rule() {
	p.checkPage(5)
	p.doc.SetDrawColor(midBlue[0], midBlue[1], midBlue[2])
	p.doc.SetLineWidth(0.3)
	y := p.doc.GetY()
	p.doc.Line(pdfMargin, y, p.pageWidth-pdfMargin, y)
	p.doc.SetY(y + 5)
}

func (p *pdfWriter) space(mm float64) {
	p.doc.SetY(p.doc.GetY() + mm)
}

// gapTable renders the tabular gap overview: index, question, phase, risk,
// status. The question column wraps; other columns are fixed width.
func (p *pdfWriter) gapTable(gaps []GapEntry) {
	doc := p.doc
	colIdx, colPhase, colRisk, colStatus := 8.0, 35.0, 15.0, 22.0
	colQuestion := p.contentWidth - colIdx - colPhase - colRisk - colStatus

	drawHeader := func() {
		doc.SetFont("Helvetica", "B", 8)
		doc.SetFillColor(navy[0], navy[1], navy[2])
		doc.SetTextColor(255, 255, 255)
		doc.SetX(pdfMargin)
		doc.CellFormat(colIdx, 7, "#", "1", 0, "C", true, 0, "")
		doc.CellFormat(colQuestion, 7, "Question", "1", 0, "L", true, 0, "")
		doc.CellFormat(colPhase, 7, "Phase", "1", 0, "L", true, 0, "")
		doc.CellFormat(colRisk, 7, "Risk", "1", 0, "L", true, 0, "")
		doc.CellFormat(colStatus, 7, "Status", "1", 1, "L", true, 0, "")
	}

	statusShort := func(g GapEntry) string {
		if g.StatusLabel == "NOT IN PLACE" {
			return "Not in place"
		}
		return "Partial"
	}

	p.checkPage(14)
	drawHeader()
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(darkGrey[0], darkGrey[1], darkGrey[2])
	for _, g := range gaps {
		lines := doc.SplitLines([]byte(p.tr(g.Question.Text)), colQuestion-2)
		rowH := float64(len(lines)) * 4
		if rowH < 7 {
			rowH = 7
		}
		if doc.GetY()+rowH > p.pageHeight-pdfMargin {
			doc.AddPage()
			doc.SetY(pdfMargin)
			drawHeader()
			doc.SetFont("Helvetica", "", 8)
			doc.SetTextColor(darkGrey[0], darkGrey[1], darkGrey[2])
		}
		x, y := pdfMargin, doc.GetY()
		doc.SetXY(x, y)
		doc.CellFormat(colIdx, rowH, fmt.Sprintf("%d", g.Index), "1", 0, "C", false, 0, "")
		qx := doc.GetX()
		doc.Rect(qx, y, colQuestion, rowH, "D")
		for i, line := range lines {
			doc.Text(qx+1, y+4+float64(i)*4, string(line))
		}
		doc.SetXY(qx+colQuestion, y)
		doc.CellFormat(colPhase, rowH, p.tr(g.Phase), "1", 0, "L", false, 0, "")
		doc.CellFormat(colRisk, rowH, g.RiskLabel, "1", 0, "L", false, 0, "")
		doc.CellFormat(colStatus, rowH, statusShort(g), "1", 1, "L", false, 0, "")
	}
}
