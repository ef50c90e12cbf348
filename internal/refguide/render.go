package refguide

import (
	"io"

	"github.com/fumiama/go-docx"
)

// Brand palette shared with the PDF report and the workbook.
const (
	navy     = "1B2A4A"
	midBlue  = "3A5BA0"
	darkGrey = "404040"
)

// Font sizes in half-points.
const (
	sizeTitle    = "56"
	sizeHeading1 = "36"
	sizeHeading2 = "28"
	sizeHeading3 = "24"
	sizeBody     = "22"
)

type renderer struct {
	doc *docx.Docx
}

// Build assembles the reference guide as a Word document.
func Build() *docx.Docx {
	r := &renderer{doc: docx.New().WithDefaultTheme()}

	r.cover()

	r.heading1("Introduction")
	for _, text := range Intro {
		r.body(text)
	}

	for _, s := range Sections {
		r.section(s)
	}

	r.heading1("Appendix: Toolkit Components")
	r.body("This reference guide is one of three components in the consulting toolkit:")
	for _, item := range Appendix {
		p := r.doc.AddParagraph()
		p.AddText(item.Role).Size(sizeBody).Color(darkGrey).Bold()
		p.AddText(item.Duties).Size(sizeBody).Color(darkGrey)
	}

	return r.doc
}

// Write renders the guide and writes the .docx bytes to w.
func Write(w io.Writer) error {
	_, err := Build().WriteTo(w)
	return err
}

func (r *renderer) cover() {
	r.spacer()
	r.spacer()
	p := r.doc.AddParagraph().Justification("center")
	p.AddText(Title).Size(sizeTitle).Color(navy).Bold()
	p = r.doc.AddParagraph().Justification("center")
	p.AddText(Subtitle).Size(sizeHeading2).Color(midBlue)
	r.spacer()
	p = r.doc.AddParagraph().Justification("center")
	p.AddText("Confidential — For consulting use only").Size(sizeBody).Color(darkGrey)
	r.spacer()
}

func (r *renderer) section(s Section) {
	r.heading1(s.Title)

	r.heading2("What Needs to Happen")
	for _, text := range s.Overview {
		r.body(text)
	}

	r.heading2("Critical Considerations")
	for _, t := range s.Topics {
		r.heading3(t.Title)
		for _, text := range t.Paras {
			r.body(text)
		}
	}

	r.heading2("Common Pitfalls")
	for _, text := range s.Pitfalls {
		r.bullet(text)
	}

	if len(s.Roles) > 0 {
		r.heading2("Role Map")
		for _, role := range s.Roles {
			p := r.doc.AddParagraph()
			p.AddText(role.Role + ": ").Size(sizeBody).Color(midBlue).Bold()
			p.AddText(role.Duties).Size(sizeBody).Color(darkGrey)
		}
	}

	r.heading2("Key Questions for Consulting Sessions")
	for _, q := range s.Questions {
		r.doc.AddParagraph().AddText(q.Prompt).Size(sizeBody).Color(midBlue).Bold()
		r.body(q.Guidance)
	}
}

func (r *renderer) heading1(text string) {
	r.spacer()
	r.doc.AddParagraph().AddText(text).Size(sizeHeading1).Color(navy).Bold()
}

func (r *renderer) heading2(text string) {
	r.doc.AddParagraph().AddText(text).Size(sizeHeading2).Color(midBlue).Bold()
}

func (r *renderer) heading3(text string) {
	r.doc.AddParagraph().AddText(text).Size(sizeHeading3).Color(darkGrey).Bold()
}

func (r *renderer) body(text string) {
	r.doc.AddParagraph().AddText(text).Size(sizeBody).Color(darkGrey)
}

func (r *renderer) bullet(text string) {
	r.doc.AddParagraph().AddText("• " + text).Size(sizeBody).Color(darkGrey)
}

func (r *renderer) spacer() {
	r.doc.AddParagraph()
}
