// Package refguide builds the offline reference document that accompanies
// the assessment tool and the lifecycle workbook: per-phase advisory prose,
// common pitfalls, role maps, and diagnostic questions for consulting
// sessions.
package refguide

// Topic is one "critical considerations" sub-heading with its prose.
type Topic struct {
	Title string
	Paras []string
}

// RoleEntry maps a role to its responsibilities within a phase.
type RoleEntry struct {
	Role   string
	Duties string
}

// Question is a diagnostic prompt with guidance on how to use it in session.
type Question struct {
	Prompt   string
	Guidance string
}

// Section is one phase chapter of the guide.
type Section struct {
	Title     string
	Overview  []string
	Topics    []Topic
	Pitfalls  []string
	Roles     []RoleEntry
	Questions []Question
}

// Title and Subtitle are the cover-page lines.
const (
	Title    = "Public Inquiry Consulting Reference Guide"
	Subtitle = "A structured companion for advising inquiry teams across every phase of the inquiry lifecycle"
)

// Intro is the guide's introduction, one paragraph per entry.
var Intro = []string{
	"This guide is a structured consulting companion for advising teams involved in UK public inquiries. It covers the full inquiry lifecycle from establishment through to closure, organised into seven phases that reflect how inquiries actually operate in practice.",
	"Each phase section follows a consistent structure: what needs to happen, the critical considerations and judgment calls, common pitfalls drawn from past inquiry experience, a role map showing who does what, and key diagnostic questions for use in consulting sessions.",
	"This guide is designed to be used alongside the Inquiry Consulting Toolkit workbook for tracking and the interactive consulting tool for structured assessments. Together, these three instruments provide a comprehensive consulting framework.",
	"The guidance here is original advisory content synthesised from practitioner experience and the established body of knowledge on public inquiry procedure. It does not reproduce or replace legal advice, and teams should always take professional legal counsel on specific procedural and statutory questions.",
}

// Appendix closes the guide with the three toolkit components.
var Appendix = []RoleEntry{
	{
		Role:   "1. Interactive Consulting Tool (web app): ",
		Duties: "A browser-based structured assessment tool for use during consulting sessions. It walks through diagnostic questions for each phase, captures responses, and generates a prioritised gap analysis and action plan. Use it in the room with the client.",
	},
	{
		Role:   "2. Inquiry Lifecycle Workbook (Excel): ",
		Duties: "A multi-tab tracking workbook with phase checklists, decision log, risk register, budget tracker, core participant register, stakeholder map, and a statutory vs non-statutory decision matrix. Use it as a leave-behind for the client to track progress between sessions.",
	},
	{
		Role:   "3. This Reference Guide (Word): ",
		Duties: "The substantive companion covering what needs to happen in each phase, critical considerations, common pitfalls, role maps, and diagnostic questions. Use it to prepare for consulting sessions and to deepen your advice on specific topics.",
	},
}

// Sections holds the seven phase chapters in lifecycle order.
var Sections = []Section{
	{
		Title: "Phase 1: Establishment and Scoping",
		Overview: []string{
			"This phase covers the period from the initial decision to hold an inquiry through to the finalisation of terms of reference and public announcement. It is the most consequential phase because decisions made here determine the inquiry’s scope, powers, cost trajectory, and public legitimacy. Getting this wrong creates problems that compound throughout the inquiry’s life.",
			"The core activities are: determining whether the inquiry should be statutory or non-statutory; drafting terms of reference that are clear, deliverable, and appropriately scoped; conducting the required consultations; assessing legal obligations and concurrent proceedings; estimating costs and duration; and preparing the ministerial announcement.",
		},
		Topics: []Topic{
			{
				Title: "Statutory vs Non-Statutory",
				Paras: []string{
					"This is the foundational choice. A statutory inquiry under the Inquiries Act 2005 has the power to compel witnesses and documents, take evidence on oath, and benefits from a presumption of public hearings and statutory immunity for personnel. A non-statutory inquiry is more flexible, potentially faster and cheaper, but cannot compel cooperation and lacks these protections.",
					"The key question is whether voluntary cooperation can be assured. If there is any risk that key organisations or individuals will not cooperate fully, a statutory basis is strongly advisable. Non-statutory inquiries can be converted to statutory if needed, but this causes disruption and delay.",
				},
			},
			{
				Title: "Terms of Reference",
				Paras: []string{
					"Well-drafted terms of reference are the single most important factor in determining whether an inquiry will succeed. They should set out the purpose, the matters to investigate, whether recommendations are required, who the inquiry reports to, and who is responsible for publication. They should be clear on what is out of scope.",
					"The most common failure is terms that are too broad or ambiguous. Overly wide scope leads to cost overruns, protracted timescales, and loss of focus. Equally, terms that are too narrow risk failing to address the matters of genuine public concern that motivated the inquiry.",
				},
			},
			{
				Title: "Consultation Requirements",
				Paras: []string{
					"For statutory inquiries, the Ministerial Code requires consulting the Prime Minister. The chair or prospective chair must be consulted on the terms of reference. Devolved administrations must be consulted where the inquiry concerns their matters, and terms cannot be set before that consultation concludes. The Cabinet Office, Government Legal Department, and where events occurred under a previous government, former ministers, must also be consulted.",
					"Consulting affected parties — victims, families, and other stakeholders — is not legally required but is strongly recommended. A trauma-informed approach to this engagement is considered good practice and helps build public confidence from the outset.",
				},
			},
		},
		Pitfalls: []string{
			"Scope creep through vague or open-ended terms of reference, leading to years of delay and spiralling costs.",
			"Failure to identify concurrent criminal proceedings before establishment, requiring the inquiry to pause or restructure.",
			"Inadequate cost and duration estimates, setting unrealistic expectations with ministers and the public.",
			"Insufficient consultation with affected parties, leading to early loss of public confidence and potential legal challenge.",
			"Announcing the inquiry before key decisions (chair, terms of reference) are settled, creating perception problems.",
		},
		Roles: []RoleEntry{
			{Role: "Sponsoring Minister", Duties: "Decides to hold inquiry, sets terms of reference, appoints chair, makes announcement to Parliament"},
			{Role: "Sponsor Department Team", Duties: "Conducts scoping exercise, prepares cost estimate, manages consultations, drafts announcement"},
			{Role: "Cabinet Office", Duties: "Advises on inquiry policy, reviews terms of reference, consults on non-statutory inquiries"},
			{Role: "Government Legal Department", Duties: "Advises on statutory basis, ECHR obligations, concurrent proceedings, legal challenge risk"},
			{Role: "Prospective Chair", Duties: "Consulted on terms of reference, may advise on scope and feasibility"},
			{Role: "Devolved Administrations", Duties: "Consulted where inquiry concerns devolved matters; terms cannot be set before this concludes"},
		},
		Questions: []Question{
			{
				Prompt:   "Has anyone mapped the full landscape of related proceedings?",
				Guidance: "Criminal investigations, inquests, regulatory investigations, and civil proceedings can all affect the inquiry’s timing and scope. This mapping should happen before the decision to establish is made, not afterwards.",
			},
			{
				Prompt:   "Are the terms of reference deliverable within a realistic timeframe and budget?",
				Guidance: "Terms should be tested against available resources, the likely volume of evidence, and the number of potential witnesses and participants. Completed statutory inquiries since 2000 have averaged around three years.",
			},
			{
				Prompt:   "Is there a clear rationale for choosing statutory over non-statutory (or vice versa)?",
				Guidance: "This decision should be documented and based on analysis of whether compulsion powers are needed, whether public hearings are expected, and whether immunity for personnel is important.",
			},
			{
				Prompt:   "Have affected parties been engaged on the shape and scope of the inquiry?",
				Guidance: "Early, sensitive engagement with those directly affected builds legitimacy. The Independent Public Advocate can play an important role in supporting victims of major incidents.",
			},
		},
	},
	{
		Title: "Phase 2: Appointments and Team Building",
		Overview: []string{
			"This phase covers appointing the chair, any panel members, and the three key roles that form the inquiry’s leadership: the secretary, the solicitor, and (where needed) counsel. It also covers building the wider secretariat and establishing the governance, welfare, and HR frameworks that will support the team throughout the inquiry’s life.",
		},
		Topics: []Topic{
			{
				Title: "Chair Selection",
				Paras: []string{
					"The chair is the inquiry’s most visible figure and the person on whom its success ultimately depends. They need integrity, leadership, analytical ability, communication skills, and sufficient subject matter knowledge to engage credibly with complex evidence. For statutory inquiries, the PM must be consulted on judicial appointments.",
					"Perceived independence is as important as actual independence. Any connection between the prospective chair and the subject matter, key individuals, or institutions under scrutiny will be examined closely. Conflict screening should be thorough and documented.",
				},
			},
			{
				Title: "The Secretary Role",
				Paras: []string{
					"The inquiry secretary is often underestimated but is one of the most critical appointments. They are the chief operating officer of the inquiry — responsible for budget, team leadership, operational delivery, and managing the relationship with the sponsor department. They need to command the trust of both the chair and Whitehall.",
					"The secretary also bears responsibility for capturing lessons learned and submitting a report to the Cabinet Office within two months of the inquiry’s end. This institutional memory function is one of the reasons the role matters so much.",
				},
			},
			{
				Title: "Legal Team",
				Paras: []string{
					"The solicitor provides the main source of legal and procedural advice and should be appointed early. Delay in this appointment can cause procedural difficulties that are hard to recover from. The solicitor is usually from the Government Legal Department, though external appointment is possible.",
					"Counsel is typically needed for complex or extensive statutory inquiries. The appointment is high-profile and the process must be fair, open, and non-discriminatory. Counsel’s fees represent a significant cost, and a protocol on cost management should be agreed.",
				},
			},
		},
		Pitfalls: []string{
			"Appointing a chair without adequate conflict screening, leading to challenge or resignation.",
			"Delaying the solicitor appointment, creating procedural uncertainty in the inquiry’s early weeks.",
			"Underestimating the secretary role, treating it as an administrative position rather than a leadership one.",
			"Failing to plan staff welfare from the outset, leading to burnout and turnover when distressing material is encountered.",
			"Not putting arrangements in place for staff to return to parent departments, creating uncertainty and affecting morale.",
		},
		Questions: []Question{
			{
				Prompt:   "Does the chair have the right combination of subject matter credibility and procedural expertise?",
				Guidance: "A chair who is expert in the subject but unfamiliar with inquiry procedure will need strong support from the solicitor and counsel. A procedurally experienced chair with limited subject knowledge may need panel members or assessors to fill the gap.",
			},
			{
				Prompt:   "Is the secretary appointment at the right seniority level?",
				Guidance: "The secretary needs to operate at Deputy Director to Director General level to be effective. They must be able to engage with senior departmental officials and manage significant budgets. Under-grading this role creates problems.",
			},
			{
				Prompt:   "Has the inquiry planned for the emotional impact of its work on staff?",
				Guidance: "Staff may be exposed to deeply distressing evidence. Trauma-informed training, access to psychological support, and a culture that acknowledges this impact should be established before evidence gathering begins, not in response to problems.",
			},
		},
	},
	{
		Title: "Phase 3: Infrastructure and Operations",
		Overview: []string{
			"Before the inquiry can begin its substantive work, it needs physical premises, IT systems, security arrangements, a website, data protection registration, and records management planning. This phase is often rushed because there is political pressure to be seen to be making progress, but cutting corners here creates problems that persist throughout the inquiry.",
		},
		Topics: []Topic{
			{
				Title: "Evidence Management Systems",
				Paras: []string{
					"Almost every inquiry of any size needs an eDiscovery or evidence management system for secure storage, review, and disclosure of documentary evidence. Procurement of these systems takes longer than most teams expect. The sponsor department should have a ready-to-deliver IT plan for the incoming chair and secretary.",
				},
			},
			{
				Title: "Location",
				Paras: []string{
					"The hearing venue should not automatically be London. Proximity to affected communities can be important for public confidence and access, particularly for inquiries into events with a strong local dimension. Cost, accessibility, security, and the practical separation of different categories of participants all need to be considered.",
				},
			},
			{
				Title: "Records Management from Day One",
				Paras: []string{
					"The National Archives should be engaged at the earliest opportunity. Inquiries that manage records, websites, and copyright effectively from the start encounter far fewer problems during closing down and are likely to be more cost-effective. Failure to plan for records transfer at an early stage can lead to significant costs and delays at the end.",
				},
			},
		},
		Pitfalls: []string{
			"Underestimating IT procurement timeframes, leaving the inquiry without evidence management capability when documents start arriving.",
			"Failing to establish data security protocols before receiving sensitive material, creating breach risk.",
			"Not engaging the National Archives early, leading to expensive and time-consuming archiving problems at closure.",
			"Choosing a venue without adequate consideration of participant separation, security, and accessibility.",
		},
		Questions: []Question{
			{
				Prompt:   "Is there a ready-to-deliver IT plan, or is procurement still in progress?",
				Guidance: "If the evidence management system is not in place or close to being in place, this is a critical gap. The inquiry cannot effectively begin its investigative work without it.",
			},
			{
				Prompt:   "Has copyright been addressed for audiovisual recordings?",
				Guidance: "If the inquiry intends to broadcast hearings or create audiovisual records, copyright must be addressed with the National Archives before contractual arrangements are made.",
			},
			{
				Prompt:   "Is the inquiry registered as a data controller and does it have a DPO?",
				Guidance: "The inquiry is an independent data controller from day one. Registration with the ICO, appointment of a Data Protection Officer, and production of a privacy notice are not optional.",
			},
		},
	},
	{
		Title: "Phase 4: Protocols and Procedures",
		Overview: []string{
			"This phase establishes the rules of engagement for the inquiry’s work. The issues list is developed from the terms of reference, protocols are drafted and published covering core participant designation, legal representation funding, disclosure, witness statements, hearings, redaction, and media engagement. A management statement is agreed with the sponsor department.",
		},
		Topics: []Topic{
			{
				Title: "Core Participant Framework",
				Paras: []string{
					"The designation of core participants is one of the chair’s most important early decisions. It determines who has formal rights within the inquiry — including advance disclosure, the ability to suggest questions, and advance access to the report. The criteria are set out in Rule 5 of the Inquiry Rules 2006, but the chair has significant discretion.",
					"Core participant status can be phase-specific, which is useful for large inquiries covering multiple topics. Designation should not be automatic — formal applications should be required and assessed against published criteria.",
				},
			},
			{
				Title: "Section 40 Determination",
				Paras: []string{
					"For statutory inquiries, the minister can impose conditions on the chair’s power to award legal costs through a Section 40 determination. This should be requested shortly after the terms of reference are finalised. Delay creates uncertainty for participants about whether their legal costs will be met and can inhibit cooperation.",
				},
			},
			{
				Title: "The Management Statement",
				Paras: []string{
					"The relationship between the inquiry and its sponsor department is one of the most sensitive dynamics in the whole process. The inquiry must be independent, but it is funded by public money and the department is accountable to Parliament for that expenditure. A management statement sets out the respective roles, responsibilities, and procedures to manage this tension.",
				},
			},
		},
		Pitfalls: []string{
			"Publishing protocols without consulting core participants, leading to challenges or loss of cooperation.",
			"Delaying the Section 40 determination, leaving funding arrangements uncertain for participants.",
			"Failing to establish clear cost controls for legal representation, allowing costs to escalate unchecked.",
			"Not having a media strategy, resulting in reactive rather than proactive communications.",
		},
		Questions: []Question{
			{
				Prompt:   "Is the issues list being treated as a living document?",
				Guidance: "The issues list should evolve as evidence emerges. If it was fixed at the outset and never revisited, it may no longer reflect the actual scope of the investigation.",
			},
			{
				Prompt:   "Have core participants been consulted on draft protocols?",
				Guidance: "Protocols drafted without input from those affected by them are more likely to be challenged or to fail in practice. Consultation builds buy-in and surfaces practical problems early.",
			},
			{
				Prompt:   "Is there a published costs protocol with effective controls?",
				Guidance: "Legal costs of participants are often the largest single expenditure category. Without clear controls, costs can run to millions of pounds per year per core participant group.",
			},
		},
	},
	{
		Title: "Phase 5: Evidence and Investigation",
		Overview: []string{
			"The inquiry issues requests for documentary evidence, manages incoming volumes, takes witness statements, discloses relevant material to core participants, and may commission expert reports or use other investigative methods such as seminars, site visits, and intermediaries for vulnerable witnesses.",
		},
		Topics: []Topic{
			{
				Title: "Managing Document Volumes",
				Paras: []string{
					"The volume of material an inquiry receives can be enormous. Poorly targeted requests can elicit hundreds of thousands or even millions of items. Requests should be crafted carefully — broad enough to fulfil the terms of reference but targeted enough to be manageable. It can be valuable to discuss potential requests with information holders to understand what material exists and how it can be searched and retrieved.",
				},
			},
			{
				Title: "Compulsion Powers",
				Paras: []string{
					"For statutory inquiries, Section 21 notices are typically used in three scenarios: where a person is unwilling to comply with an informal request; where a person is willing but needs formal cover for the disclosure (for example, to avoid breaching a duty of confidence); or where a statutory bar prevents disclosure without a formal notice.",
				},
			},
			{
				Title: "Innovative Approaches",
				Paras: []string{
					"Inquiries have significant flexibility to develop evidence-gathering methods suited to their subject matter. Seminars bring in expert perspectives on policy questions. Intermediaries can reach people who would have difficulty providing evidence in traditional ways. Commemoration hearings allow families to provide pen-portraits of those who died, building a human record that pure documentary evidence cannot provide.",
				},
			},
		},
		Pitfalls: []string{
			"Issuing requests that are too broad, overwhelming the inquiry with irrelevant material.",
			"Not using disclosure statements to verify the completeness of responses from information providers.",
			"Failing to update the issues list as new evidence emerges, losing sight of the investigation’s evolving scope.",
			"Not providing adequate support for vulnerable witnesses during statement-taking.",
		},
		Questions: []Question{
			{
				Prompt:   "Is the inquiry being overwhelmed by document volumes?",
				Guidance: "If the review backlog is growing faster than it can be processed, the inquiry needs to reassess its disclosure requests, prioritise by relevance to the issues list, and potentially increase its evidence review team.",
			},
			{
				Prompt:   "Are information providers cooperating fully and in a timely manner?",
				Guidance: "Slow or incomplete cooperation is a common problem. For statutory inquiries, escalation to Section 21 compulsion notices is available. For non-statutory inquiries, the options are more limited.",
			},
		},
	},
	{
		Title: "Phase 6: Hearings",
		Overview: []string{
			"This phase covers preliminary hearings, substantive oral evidence sessions, and closing submissions. It is the most visible phase of the inquiry and typically attracts the most public and media attention.",
		},
		Topics: []Topic{
			{
				Title: "The Inquisitorial Nature of Inquiry Hearings",
				Paras: []string{
					"A public inquiry is not a trial. It operates on an inquisitorial rather than adversarial basis. Counsel to the inquiry conducts the primary questioning of witnesses. Core participant counsel may apply to ask questions or suggest lines of questioning, but the chair controls this process. This is a fundamental principle that is sometimes misunderstood by participants accustomed to courtroom advocacy.",
				},
			},
			{
				Title: "Witness Support",
				Paras: []string{
					"All inquiries should give careful consideration to how they support witnesses, particularly those who are traumatised or vulnerable. Good practice includes pre-hearing meetings with counsel, personal supporters in the hearing room, regular breaks, confidential psychological support, and accessible facilities. A trauma-informed approach should be embedded throughout.",
				},
			},
			{
				Title: "Judicial Review Risk",
				Paras: []string{
					"Procedural decisions during hearings can be challenged by judicial review within 14 days of the applicant becoming aware of the decision. The threshold for success is high — most challenges fail — but even unsuccessful challenges cause delay and disruption. Document the reasoning for all significant procedural decisions.",
				},
			},
		},
		Pitfalls: []string{
			"Inadequate witness support, leading to poor quality evidence and reputational damage for the inquiry.",
			"Failing to manage core participant expectations about questioning, leading to frustration and applications that slow proceedings.",
			"Not publishing transcripts promptly, undermining the transparency commitment.",
			"Underestimating the administrative burden of managing daily hearings over months or years.",
		},
		Questions: []Question{
			{
				Prompt:   "Is counsel to the inquiry effectively controlling the questioning process?",
				Guidance: "If hearings are becoming adversarial or core participant counsel is dominating, the inquisitorial character of the inquiry is being lost. The chair needs to reassert control.",
			},
			{
				Prompt:   "Are vulnerable witnesses receiving adequate support?",
				Guidance: "This should be assessed continuously, not just at the start. Witness needs can change, and what works for one witness may not work for another.",
			},
		},
	},
	{
		Title: "Phase 7: Report, Publication and Closure",
		Overview: []string{
			"The final phase covers writing the report, the Maxwellisation process, pre-publication reviews, advance access arrangements, publication and laying before Parliament, and then closing down the inquiry including archiving, contract termination, staff redeployment, and lessons learned.",
		},
		Topics: []Topic{
			{
				Title: "The Maxwellisation Process",
				Paras: []string{
					"Warning letters must be sent to anyone who may be subject to explicit or significant criticism in the report (this is mandatory for statutory inquiries under the Inquiry Rules). The process requires sufficient time for recipients to consider the draft criticisms and make representations. Building adequate time for Maxwellisation into the timetable from the outset is essential — it routinely takes longer than planned.",
				},
			},
			{
				Title: "Advance Access and the Lock-In",
				Paras: []string{
					"Core participants and their legal representatives receive embargoed copies of the report before publication. The minister also receives advance access to prepare a parliamentary response. Managing these competing expectations — particularly where victims feel ministers should not have more time with the report than they do — requires careful negotiation.",
					"The lock-in itself is a significant logistical operation: venue security, device surrender, separate rooms for different participant groups, signed confidentiality undertakings, staggered access periods, and provisions for warning letter recipients who should not be identified.",
				},
			},
			{
				Title: "Recommendation Implementation",
				Paras: []string{
					"Public inquiry recommendations are non-binding. Once the report is delivered and the chair notifies the minister that the terms of reference are fulfilled, the inquiry comes to an end. Beyond public criticism and political pressure, there is currently no recourse if the government fails to implement recommendations or explain its reasons.",
					"Good practice is for the government to respond within six months, clearly stating which recommendations are accepted, with reasons for any that are not, and providing annual updates to Parliament on implementation. Some chairs have chosen to monitor implementation personally or to adjourn rather than formally close.",
				},
			},
		},
		Pitfalls: []string{
			"Underestimating the time needed for Maxwellisation, delaying publication.",
			"Allowing extended ministerial advance access, creating a perception that the report has been influenced.",
			"Not planning for closure from the outset, leading to expensive and chaotic wind-down.",
			"Failing to submit a lessons learned paper, wasting the institutional knowledge the inquiry has generated.",
			"Not arranging for continuation of witness and stakeholder support after the inquiry closes.",
		},
		Questions: []Question{
			{
				Prompt:   "Has sufficient time been built into the timetable for Maxwellisation?",
				Guidance: "If the answer is no, or if the process is already underway and proving more extensive than expected, the publication date may need to be revised. Under-allocating time for this process is one of the most common planning failures.",
			},
			{
				Prompt:   "Are there clear arrangements for who manages queries after the inquiry closes?",
				Guidance: "Once the inquiry closes, responsibility for FOI requests, parliamentary questions, and public queries transfers to the sponsor department. If this handover is not planned, things fall through the cracks.",
			},
			{
				Prompt:   "Is there a plan for monitoring whether recommendations are actually implemented?",
				Guidance: "The inquiry’s credibility ultimately rests on whether its recommendations lead to change. If there is no mechanism for monitoring implementation, the risk is that recommendations are quietly shelved.",
			},
		},
	},
}
