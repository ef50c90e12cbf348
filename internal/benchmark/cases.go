package benchmark

import (
	"sort"
	"strings"
	"time"
)

// Case is a raw historical inquiry record. Costs are £m; Docs is thousands of
// documents. Pointer fields are unknown when nil. Load-once reference data.
type Case struct {
	Name        string   `json:"name"`
	Established string   `json:"established"`
	Closed      string   `json:"closed,omitempty"`
	Cost        *float64 `json:"cost"`
	Type        string   `json:"type"`
	Subject     string   `json:"subject"`
	SubjectArea string   `json:"subjectArea"`
	HearingDays *int     `json:"hearingDays"`
	Witnesses   *int     `json:"witnesses"`
	Docs        *float64 `json:"docs"`
	CPs         *int     `json:"cps"`
	Pages       *int     `json:"pages"`
	Status      string   `json:"status"`
}

// Comparator is a Case with its derived benchmark fields attached.
type Comparator struct {
	Case
	Year           string `json:"year"`
	DurationMonths *int   `json:"durationMonths"`
	Duration       string `json:"duration,omitempty"`
	Scale          Scale  `json:"scale,omitempty"`
}

// SubjectArea is a filterable grouping of comparator cases.
type SubjectArea struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SubjectAreas lists the filter options shown alongside the comparator table.
var SubjectAreas = []SubjectArea{
	{Value: "all", Label: "All subjects"},
	{Value: "health", Label: "Health"},
	{Value: "policing", Label: "Policing & Security"},
	{Value: "justice", Label: "Justice"},
	{Value: "institutional", Label: "Institutional"},
	{Value: "disasters", Label: "Disasters"},
	{Value: "government", Label: "Government"},
	{Value: "infrastructure", Label: "Infrastructure"},
}

// Cases derives the enriched comparator list from the raw table, sorted by
// cost ascending with unknown costs last. now anchors durations of open cases.
func Cases(now time.Time) []Comparator {
	out := make([]Comparator, 0, len(rawCases))
	for _, c := range rawCases {
		est := parseDate(c.Established)
		closed := parseDate(c.Closed)
		cmp := Comparator{
			Case:  c,
			Year:  FormatYearRange(est, closed),
			Scale: ClassifyScale(c.Cost),
		}
		if months, ok := DurationMonths(est, closed, now); ok {
			cmp.DurationMonths = &months
			cmp.Duration = FormatDuration(months)
		}
		out = append(out, cmp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortCost(out[i].Cost) < sortCost(out[j].Cost)
	})
	return out
}

func sortCost(c *float64) float64 {
	if c == nil {
		return 999
	}
	return *c
}

// Filter narrows the comparator list. Empty or "all" values match everything;
// Type accepts "statutory" or "non-statutory" as prefixes of the case type.
type Filter struct {
	Subject string
	Type    string
	Status  string
	Scale   Scale
}

// FilterCases returns the comparators matching f, preserving order.
func FilterCases(cases []Comparator, f Filter) []Comparator {
	out := []Comparator{}
	for _, c := range cases {
		if f.Subject != "" && f.Subject != "all" && c.SubjectArea != f.Subject {
			continue
		}
		if f.Status != "" && f.Status != "all" && c.Status != f.Status {
			continue
		}
		switch f.Type {
		case "", "all":
		case "statutory":
			if !strings.HasPrefix(strings.ToLower(c.Type), "statutory") {
				continue
			}
		case "non-statutory":
			if !strings.HasPrefix(strings.ToLower(c.Type), "non") {
				continue
			}
		}
		if f.Scale != "" && c.Scale != f.Scale {
			continue
		}
		out = append(out, c)
	}
	return out
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		// static table, a bad date is a programming error
		panic("benchmark: bad date " + s)
	}
	return t
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// rawCases is the historical UK public inquiry comparator table.
var rawCases = []Case{
	{Name: "UK COVID-19 Inquiry", Established: "2022-04-28", Cost: fp(177.2), Type: "Statutory", Subject: "UK pandemic response", SubjectArea: "health", Status: "ongoing"},
	{Name: "Post Office Horizon IT Inquiry", Established: "2021-06-01", Cost: fp(74.73), Type: "Statutory", Subject: "Wrongful prosecutions", SubjectArea: "justice", HearingDays: ip(96), Witnesses: ip(114), Status: "ongoing"},
	{Name: "Grenfell Tower Inquiry", Established: "2017-08-15", Closed: "2024-09-04", Cost: fp(177.6), Type: "Statutory", Subject: "Tower block fire (72 deaths)", SubjectArea: "disasters", HearingDays: ip(300), Docs: fp(300), CPs: ip(608), Pages: ip(1700), Status: "completed"},
	{Name: "Manchester Arena Inquiry", Established: "2020-09-07", Closed: "2023-03-02", Cost: fp(36.32), Type: "Statutory", Subject: "Arena bombing", SubjectArea: "policing", HearingDays: ip(196), Witnesses: ip(291), Pages: ip(1346), Status: "completed"},
	{Name: "Infected Blood Inquiry", Established: "2018-09-24", Closed: "2024-05-20", Cost: fp(130.0), Type: "Statutory", Subject: "Contaminated blood products", SubjectArea: "health", CPs: ip(2007), Status: "completed"},
	{Name: "IICSA", Established: "2015-03-12", Closed: "2022-10-20", Cost: fp(250.0), Type: "Statutory", Subject: "Child sexual abuse (E&W)", SubjectArea: "institutional", HearingDays: ip(325), Witnesses: ip(725), Docs: fp(195), Status: "completed"},
	{Name: "Undercover Policing Inquiry", Established: "2015-07-16", Cost: fp(120.56), Type: "Statutory", Subject: "Undercover police operations", SubjectArea: "policing", HearingDays: ip(112), Docs: fp(7.6), CPs: ip(249), Status: "ongoing"},
	{Name: "Brook House Inquiry", Established: "2020-02-03", Closed: "2023-09-19", Cost: fp(20.0), Type: "Statutory", Subject: "Immigration detainee abuse", SubjectArea: "justice", HearingDays: ip(46), Docs: fp(100), CPs: ip(24), Status: "completed"},
	{Name: "Iraq (Chilcot) Inquiry", Established: "2009-07-30", Closed: "2016-07-06", Cost: fp(13.0), Type: "Non-statutory", Subject: "Iraq War decisions", SubjectArea: "government", HearingDays: ip(130), Witnesses: ip(150), Docs: fp(150), Pages: ip(6275), Status: "completed"},
	{Name: "Bloody Sunday (Saville)", Established: "1998-04-03", Closed: "2010-06-15", Cost: fp(191.5), Type: "Statutory", Subject: "Events of 30 Jan 1972", SubjectArea: "policing", HearingDays: ip(434), Witnesses: ip(921), Pages: ip(5000), Status: "completed"},
	{Name: "Leveson Inquiry", Established: "2011-11-14", Closed: "2012-11-29", Cost: fp(5.4), Type: "Statutory", Subject: "Press standards", SubjectArea: "government", Witnesses: ip(337), Status: "completed"},
	{Name: "Mid Staffordshire", Established: "2010-11-01", Closed: "2013-02-06", Cost: fp(13.0), Type: "Statutory", Subject: "Healthcare failings", SubjectArea: "health", HearingDays: ip(139), Witnesses: ip(250), Docs: fp(1000), Pages: ip(1781), Status: "completed"},
	{Name: "Hillsborough Panel", Established: "2010-02-01", Closed: "2012-09-12", Cost: fp(5.0), Type: "Non-statutory", Subject: "Stadium disaster documents", SubjectArea: "disasters", Docs: fp(450), Pages: ip(395), Status: "completed"},
	{Name: "Litvinenko Inquiry", Established: "2015-01-27", Closed: "2016-01-21", Cost: fp(2.5), Type: "Statutory", Subject: "Polonium poisoning", SubjectArea: "policing", Status: "completed"},
	{Name: "Al-Sweady Inquiry", Established: "2010-05-04", Closed: "2014-12-17", Cost: fp(31.0), Type: "Statutory", Subject: "Iraq detainee treatment", SubjectArea: "policing", Status: "completed"},
	{Name: "Azelle Rodney Inquiry", Established: "2010-09-06", Closed: "2013-07-05", Cost: fp(2.6), Type: "Statutory", Subject: "Police shooting", SubjectArea: "policing", Status: "completed"},
	{Name: "Billy Wright Inquiry", Established: "2005-02-14", Closed: "2010-09-14", Cost: fp(30.5), Type: "Statutory", Subject: "Murder inside HMP Maze", SubjectArea: "policing", Status: "completed"},
	{Name: "Robert Hamill Inquiry", Established: "2005-03-01", Closed: "2011-02-23", Cost: fp(33.0), Type: "Statutory", Subject: "Sectarian murder (NI)", SubjectArea: "policing", Status: "completed"},
	{Name: "Rosemary Nelson Inquiry", Established: "2005-04-18", Closed: "2011-05-23", Cost: fp(46.4), Type: "Statutory", Subject: "Solicitor murder (NI)", SubjectArea: "policing", Status: "completed"},
	{Name: "Baha Mousa Inquiry", Established: "2008-07-01", Closed: "2011-09-08", Cost: fp(13.0), Type: "Statutory", Subject: "Detainee death in Iraq", SubjectArea: "policing", Status: "completed"},
	{Name: "Morecambe Bay Investigation", Established: "2013-09-17", Closed: "2015-03-03", Cost: fp(1.1), Type: "Non-statutory", Subject: "Maternal & neonatal deaths", SubjectArea: "health", Status: "completed"},
	{Name: "Hyponatraemia Inquiry", Established: "2004-11-22", Closed: "2018-01-31", Cost: fp(15.0), Type: "Statutory", Subject: "Child hospital deaths (NI)", SubjectArea: "health", Status: "completed"},
	{Name: "Edinburgh Tram Inquiry", Established: "2015-01-09", Closed: "2023-08-01", Cost: fp(13.2), Type: "Statutory", Subject: "Tram project cost overruns", SubjectArea: "infrastructure", HearingDays: ip(160), Witnesses: ip(100), Docs: fp(6000), CPs: ip(7), Pages: ip(961), Status: "completed"},
	{Name: "Anthony Grainger Inquiry", Established: "2016-07-18", Closed: "2019-07-11", Type: "Statutory", Subject: "Police shooting", SubjectArea: "policing", Status: "completed"},
	{Name: "Jermaine Baker Inquiry", Established: "2018-02-12", Closed: "2019-02-15", Cost: fp(4.1), Type: "Statutory", Subject: "Police shooting", SubjectArea: "policing", Status: "completed"},
	{Name: "Gosport Panel", Established: "2014-07-16", Closed: "2018-06-20", Cost: fp(13.0), Type: "Non-statutory", Subject: "Hospital opioid deaths", SubjectArea: "health", Status: "completed"},
	{Name: "Daniel Morgan Panel", Established: "2013-05-10", Closed: "2021-06-15", Cost: fp(16.0), Type: "Non-statutory", Subject: "Unsolved murder & corruption", SubjectArea: "policing", Docs: fp(1200), Pages: ip(1251), Status: "completed"},
	{Name: "Muckamore Abbey Inquiry", Established: "2022-06-01", Cost: fp(14.78), Type: "Statutory", Subject: "Hospital abuse (NI)", SubjectArea: "health", Status: "ongoing"},
	{Name: "Thirlwall Inquiry", Established: "2024-02-12", Cost: fp(17.28), Type: "Statutory", Subject: "Hospital baby deaths", SubjectArea: "health", Status: "ongoing"},
	{Name: "Lampard Inquiry", Established: "2024-04-10", Cost: fp(8.58), Type: "Statutory", Subject: "Mental health inpatient deaths", SubjectArea: "health", Status: "ongoing"},
	{Name: "Scottish COVID-19 Inquiry", Established: "2022-06-28", Cost: fp(45.5), Type: "Statutory (Scotland)", Subject: "Scottish pandemic response", SubjectArea: "health", Status: "ongoing"},
	{Name: "Sheku Bayoh Inquiry", Established: "2020-11-30", Cost: fp(26.2), Type: "Statutory (Scotland)", Subject: "Death in police custody", SubjectArea: "policing", Status: "ongoing"},
	{Name: "Nottingham Attacks Inquiry", Established: "2025-05-22", Type: "Statutory", Subject: "Nottingham attacks", SubjectArea: "health", Status: "ongoing"},
	{Name: "Grooming Gangs Inquiry", Established: "2025-12-09", Type: "Statutory", Subject: "Child sexual exploitation", SubjectArea: "institutional", Status: "ongoing"},
	{Name: "Shipman Inquiry", Established: "2001-02-01", Closed: "2005-01-27", Cost: fp(21.0), Type: "Statutory", Subject: "Serial killer doctor", SubjectArea: "health", Status: "completed"},
	{Name: "Bichard Inquiry", Established: "2004-01-05", Closed: "2004-06-22", Cost: fp(3.7), Type: "Non-statutory", Subject: "Police vetting after Soham", SubjectArea: "policing", Status: "completed"},
	{Name: "Hutton Inquiry", Established: "2003-08-01", Closed: "2004-01-28", Cost: fp(2.5), Type: "Non-statutory", Subject: "Death of David Kelly", SubjectArea: "government", Status: "completed"},
	{Name: "ICL Inquiry", Established: "2009-04-27", Closed: "2016-12-17", Cost: fp(1.9), Type: "Statutory (Scotland)", Subject: "Factory explosion", SubjectArea: "disasters", Status: "completed"},
	{Name: "Penrose Inquiry", Established: "2009-04-01", Closed: "2015-03-25", Cost: fp(12.0), Type: "Statutory (Scotland)", Subject: "Scottish infected blood", SubjectArea: "health", Status: "completed"},
	{Name: "Vale of Leven Inquiry", Established: "2009-11-01", Closed: "2014-11-24", Cost: fp(10.7), Type: "Statutory (Scotland)", Subject: "Hospital infection outbreak", SubjectArea: "health", Status: "completed"},
	{Name: "Fingerprint Inquiry", Established: "2009-06-01", Closed: "2011-12-14", Cost: fp(4.5), Type: "Statutory (Scotland)", Subject: "McKie fingerprint case", SubjectArea: "justice", Status: "completed"},
	{Name: "RHI Inquiry", Established: "2017-06-01", Closed: "2020-03-13", Cost: fp(12.0), Type: "Statutory (NI)", Subject: "Renewable heat scandal", SubjectArea: "government", HearingDays: ip(114), Witnesses: ip(63), Docs: fp(1200), Pages: ip(656), Status: "completed"},
	{Name: "HIA Inquiry (NI)", Established: "2013-01-01", Closed: "2017-01-20", Cost: fp(30.0), Type: "Statutory (NI)", Subject: "Child institutional abuse (NI)", SubjectArea: "institutional", Status: "completed"},
	{Name: "Scottish Child Abuse Inquiry", Established: "2015-05-01", Cost: fp(102.0), Type: "Statutory (Scotland)", Subject: "Child abuse in care", SubjectArea: "institutional", Status: "ongoing"},
	{Name: "Scottish Hospitals Inquiry", Established: "2020-06-15", Cost: fp(29.1), Type: "Statutory (Scotland)", Subject: "Hospital construction issues", SubjectArea: "health", Status: "ongoing"},
	{Name: "Urology Services Inquiry", Established: "2021-08-31", Cost: fp(7.7), Type: "Statutory (NI)", Subject: "Urology services (NI)", SubjectArea: "health", Status: "ongoing"},
	{Name: "Afghanistan Inquiry", Established: "2022-12-15", Type: "Statutory", Subject: "UK special forces allegations", SubjectArea: "policing", Status: "ongoing"},
	{Name: "Omagh Bombing Inquiry", Established: "2024-02-21", Type: "Statutory", Subject: "Omagh bombing 1998", SubjectArea: "policing", Status: "ongoing"},
	{Name: "Malkinson Inquiry", Established: "2023-10-26", Type: "Non-statutory", Subject: "Wrongful conviction", SubjectArea: "justice", Status: "ongoing"},
	{Name: "Eljamel Inquiry", Established: "2025-04-02", Cost: fp(1.98), Type: "Statutory (Scotland)", Subject: "Neurosurgeon malpractice", SubjectArea: "health", Status: "ongoing"},
	{Name: "Cranston Inquiry", Established: "2024-01-11", Closed: "2026-02-05", Cost: fp(6.85), Type: "Non-statutory", Subject: "Channel crossing tragedy", SubjectArea: "disasters", Status: "completed"},
	{Name: "Emma Caldwell Inquiry", Established: "2025-12-09", Type: "Statutory (Scotland)", Subject: "Murder investigation", SubjectArea: "policing", Status: "ongoing"},
	{Name: "Angiolini Inquiry", Established: "2022-01-10", Type: "Non-statutory", Subject: "Sarah Everard murder", SubjectArea: "policing", Status: "ongoing"},
	{Name: "Dawn Sturgess Inquiry", Established: "2022-01-01", Closed: "2025-12-04", Cost: fp(8.3), Type: "Statutory", Subject: "Novichok poisoning", SubjectArea: "policing", Status: "completed"},
	{Name: "Jalal Uddin Inquiry", Established: "2023-11-09", Closed: "2025-07-17", Type: "Statutory", Subject: "IS-inspired murder", SubjectArea: "policing", Status: "completed"},
	{Name: "Fuller Inquiry", Established: "2022-06-27", Closed: "2025-07-15", Type: "Non-statutory", Subject: "Mortuary abuse", SubjectArea: "health", Status: "completed"},
	{Name: "Paterson Inquiry", Established: "2018-02-13", Closed: "2020-02-04", Type: "Non-statutory", Subject: "Rogue surgeon", SubjectArea: "health", Status: "completed"},
	{Name: "Detainee Inquiry (Gibson)", Established: "2010-07-06", Closed: "2013-12-19", Type: "Non-statutory", Subject: "Rendition & mistreatment", SubjectArea: "policing", Status: "completed"},
	{Name: "Butler Review", Established: "2004-02-03", Closed: "2004-07-14", Type: "Non-statutory", Subject: "WMD intelligence review", SubjectArea: "government", Status: "completed"},
	{Name: "Mother and Baby Homes (NI)", Established: "2022-02-24", Type: "Non-statutory", Subject: "Mother and baby homes (NI)", SubjectArea: "institutional", Status: "ongoing"},
}
