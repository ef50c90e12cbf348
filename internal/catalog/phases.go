package catalog

// phases is the fixed questionnaire covering the UK public inquiry lifecycle,
// from establishment through to closure. Insertion order is the canonical
// display and report order.
var phases = []Phase{
	{
		ID:    "establish",
		Name:  "Establish & Scope",
		Color: "#2C3E6B",
		Icon:  "🏛️",
		Questions: []Question{
			{ID: "est-1", Text: "Has the statutory basis been confirmed?", Category: "Sponsor / Minister", Risk: RiskHigh, Guidance: "Determine whether the inquiry will be statutory (Inquiries Act 2005) or non-statutory. Assess need for compulsion powers, public hearing presumption, and legal framework implications."},
			{ID: "est-2", Text: "Have terms of reference been drafted and consulted on?", Category: "Sponsor / Minister", Risk: RiskHigh, Guidance: "Terms should set out purpose, matters to investigate, whether recommendations are required, reporting line, publication responsibility, and realistic scope. Consult PM, Cabinet Office, devolved administrations, GLD, chair, and affected parties."},
			{ID: "est-3", Text: "Have ECHR obligations been assessed?", Category: "GLD / Sponsor", Risk: RiskHigh, Guidance: "Consider whether Articles 2 or 3 create investigative obligations requiring a public inquiry. Take legal advice."},
			{ID: "est-4", Text: "Have concurrent proceedings been checked?", Category: "Sponsor / GLD", Risk: RiskHigh, Guidance: "Identify any criminal investigations, inquests, regulatory investigations, or civil proceedings that may affect timing, scope, or conduct. Consult the Attorney General if needed."},
			{ID: "est-5", Text: "Has a scoping exercise been carried out?", Category: "Sponsor Team", Risk: RiskHigh, Guidance: "Officials should examine key issues, likely timescale, cost, volume of evidence, and number of potential witnesses and participants."},
			{ID: "est-6", Text: "Have previous administrations been consulted?", Category: "Cabinet Secretary", Risk: RiskMedium, Guidance: "If events occurred under a prior government, consult former ministers via the Cabinet Secretary before announcement."},
			{ID: "est-7", Text: "Has a Public Sector Equality Duty assessment been documented?", Category: "Sponsor", Risk: RiskMedium, Guidance: "Document how PSED has been considered in decisions about establishing the inquiry and framing terms of reference."},
			{ID: "est-8", Text: "Is the announcement prepared?", Category: "Sponsor / Private Office", Risk: RiskHigh, Guidance: "Draft ministerial statement including full terms of reference, chair name, panel details, and relevant part of the UK. Parliament first when in session."},
			{ID: "est-9", Text: "Have terms of reference been finalised and published?", Category: "Chair / Sponsor", Risk: RiskHigh, Guidance: "Finalise and publish. Ensure they are clear, unambiguous, deliverable, and do not extend beyond what is necessary."},
			{ID: "est-10", Text: "Has a cost and duration estimate been commissioned?", Category: "Sponsor / Secretary", Risk: RiskMedium, Guidance: "Provide the minister with a best assessment of costs, uncertainties, and risks. Reference benchmarks from comparable inquiries."},
		},
	},
	{
		ID:    "team",
		Name:  "Appointments & Team",
		Color: "#3A5BA0",
		Icon:  "👥",
		Questions: []Question{
			{ID: "team-1", Text: "Has the chair been appointed?", Category: "Minister / Sponsor", Risk: RiskHigh, Guidance: "Identify and appoint a chair with appropriate expertise, integrity, leadership, and communication skills. Consult the PM for judicial appointments. Consider diversity."},
			{ID: "team-2", Text: "Has the need for panel members been assessed?", Category: "Minister / Chair", Risk: RiskHigh, Guidance: "Decide whether the chair sits alone or with a panel. If a panel, identify subject matter expertise gaps. The chair must be consulted."},
			{ID: "team-3", Text: "Has the inquiry secretary been appointed?", Category: "Sponsor / Chair", Risk: RiskHigh, Guidance: "Usually Deputy Director to DG seniority. Key adviser to the chair on policy and procedures, responsible for budget and team leadership."},
			{ID: "team-4", Text: "Has the solicitor to the inquiry been appointed?", Category: "Chair / GLD", Risk: RiskHigh, Guidance: "Usually from GLD. Main source of legal and procedural advice. Appoint early to avoid procedural issues."},
			{ID: "team-5", Text: "Has the need for counsel been assessed and counsel appointed?", Category: "Chair / Solicitor", Risk: RiskHigh, Guidance: "Required for complex statutory inquiries. Fair, open, non-discriminatory appointment process. Significant cost implications."},
			{ID: "team-6", Text: "Are engagement letters and terms agreed?", Category: "Sponsor / Secretary", Risk: RiskHigh, Guidance: "Cover role, accountability, conflict management, pay, and duration. HM Treasury approval if pay exceeds thresholds."},
			{ID: "team-7", Text: "Has national security vetting been considered?", Category: "Secretary / Sponsor", Risk: RiskMedium, Guidance: "Consider the appropriate vetting level for chair, panel, and key staff based on the nature of the inquiry and material likely to be handled."},
			{ID: "team-8", Text: "Have conflict of interest checks been completed?", Category: "Secretary", Risk: RiskHigh, Guidance: "Screen all appointees for conflicts. Document the assessment. Consider both actual and perceived conflicts."},
			{ID: "team-9", Text: "Is the wider secretariat being built?", Category: "Secretary", Risk: RiskMedium, Guidance: "Recruit across: subject matter expertise, operations, information management, communications, HR, finance, security. Staff work independently of parent departments."},
			{ID: "team-10", Text: "Are staff welfare and support arrangements agreed?", Category: "Secretary", Risk: RiskMedium, Guidance: "Consider the impact of potentially distressing material. Plan trauma-informed training and psychological support from the outset."},
			{ID: "team-11", Text: "Is there a plan for returning staff to parent departments?", Category: "Secretary / HR", Risk: RiskLow, Guidance: "Put arrangements in place for Civil Service staff redeployment at inquiry conclusion. Complete reports and appraisals."},
		},
	},
	{
		ID:    "ops",
		Name:  "Infrastructure & Ops",
		Color: "#4A7FB5",
		Icon:  "🏗️",
		Questions: []Question{
			{ID: "ops-1", Text: "Has a hearing venue been identified and secured?", Category: "Secretary / Sponsor", Risk: RiskHigh, Guidance: "Consider: proximity to affected communities, cost, accessibility, public and media capacity, security, separation of participants. Not automatically London."},
			{ID: "ops-2", Text: "Is office accommodation secured?", Category: "Secretary / Sponsor", Risk: RiskHigh, Guidance: "Sufficient, accessible space with appropriate IT. May co-locate with the sponsor department if independence is not compromised."},
			{ID: "ops-3", Text: "Is basic IT infrastructure procured?", Category: "Secretary / Sponsor IT", Risk: RiskHigh, Guidance: "Laptops, phones, inquiry-branded email, document storage, collaboration tools, access to departmental HR and finance systems."},
			{ID: "ops-4", Text: "Is an eDiscovery / evidence management system procured?", Category: "Secretary / Solicitor", Risk: RiskHigh, Guidance: "Required by almost all inquiries for secure evidence storage, review, and management. Do not underestimate procurement timeframes."},
			{ID: "ops-5", Text: "Is secure document transfer capability in place?", Category: "Secretary / IT", Risk: RiskHigh, Guidance: "For receiving sensitive material from information providers."},
			{ID: "ops-6", Text: "Has the inquiry website been commissioned?", Category: "Secretary / Comms", Risk: RiskHigh, Guidance: "Host away from gov.uk. GDS-agreed domain. Content: terms of reference, team bios, procedures, hearing info, transcripts, costs, contact details."},
			{ID: "ops-7", Text: "Are physical security arrangements established?", Category: "Secretary / DSO", Risk: RiskHigh, Guidance: "Agree with the sponsor department. Cover office, hearing centre, and hard copy documents."},
			{ID: "ops-8", Text: "Are data security protocols established?", Category: "Secretary / DPO", Risk: RiskHigh, Guidance: "Align with the HMG Security Policy Framework. Cover how evidence is held, managed, disclosed, and how sensitive material is handled."},
			{ID: "ops-9", Text: "Are vetting levels agreed for all staff?", Category: "Secretary / DSO", Risk: RiskHigh, Guidance: "Commensurate with role and inquiry nature. Complete before staff access documents or data."},
			{ID: "ops-10", Text: "Are hearing room broadcast and transcription procured?", Category: "Secretary / Sponsor", Risk: RiskMedium, Guidance: "Electronic hearing support, audiovisual broadcast, live transcription services. Consider copyright for AV recordings."},
			{ID: "ops-11", Text: "Have the National Archives been engaged early?", Category: "Secretary", Risk: RiskMedium, Guidance: "For guidance on records management, website preservation, Crown copyright, and archiving planning from the start."},
			{ID: "ops-12", Text: "Is the inquiry registered as a data controller with the ICO?", Category: "Secretary / DPO", Risk: RiskHigh, Guidance: "The inquiry is an independent data controller. Appoint a DPO, produce a privacy notice and data protection policy."},
		},
	},
	{
		ID:    "protocols",
		Name:  "Protocols & Procedures",
		Color: "#5B9BD5",
		Icon:  "📋",
		Questions: []Question{
			{ID: "proto-1", Text: "Has an issues list been developed from the terms of reference?", Category: "Solicitor / Counsel", Risk: RiskHigh, Guidance: "Led by solicitor and counsel. Treat as a living document, kept under review. Share with core participants for proposed additions."},
			{ID: "proto-2", Text: "Has a provisional timetable been published?", Category: "Chair / Secretary", Risk: RiskHigh, Guidance: "Include dates for evidence requests, witness statements, oral proceedings, and proposed report publication date. Update regularly."},
			{ID: "proto-3", Text: "Is the core participant designation protocol published?", Category: "Chair / Solicitor", Risk: RiskHigh, Guidance: "Set out criteria, process, and approach. Consider phase-specific designation."},
			{ID: "proto-4", Text: "Is the legal representation and funding protocol drafted?", Category: "Chair / Solicitor", Risk: RiskHigh, Guidance: "Set out the approach to public funding of representation. Account for any Section 40 ministerial determination. Include cost controls."},
			{ID: "proto-5", Text: "Has a Section 40 determination been requested from the minister?", Category: "Sponsor / Secretary", Risk: RiskHigh, Guidance: "Determines conditions and qualifications on the chair's power to award legal costs. Do this shortly after terms of reference are finalised."},
			{ID: "proto-6", Text: "Is the disclosure and document handling protocol drafted?", Category: "Solicitor / Counsel", Risk: RiskHigh, Guidance: "Cover how the inquiry requests, receives, reviews, and discloses documents. Include redaction approach and confidentiality undertakings."},
			{ID: "proto-7", Text: "Is the witness statement protocol drafted?", Category: "Solicitor / Counsel", Risk: RiskHigh, Guidance: "Set out the process for requesting and preparing statements, whether witness-led, inquiry-led, or a hybrid approach."},
			{ID: "proto-8", Text: "Is the hearing procedure protocol drafted?", Category: "Solicitor / Counsel", Risk: RiskMedium, Guidance: "Cover questioning of witnesses, role of counsel, opening and closing statements, support for witnesses, breaks, and access arrangements."},
			{ID: "proto-9", Text: "Is there a media engagement strategy?", Category: "Secretary / Comms", Risk: RiskMedium, Guidance: "Press office support, approach to broadcasting hearings, transcript publication, media statements at key milestones."},
			{ID: "proto-10", Text: "Is the restriction order / notice protocol drafted?", Category: "Solicitor", Risk: RiskMedium, Guidance: "Set out the approach to restricting attendance, disclosure, or publication. Cover the process for applications."},
			{ID: "proto-11", Text: "Is the redaction protocol drafted?", Category: "Solicitor", Risk: RiskMedium, Guidance: "Process for redacting personal details and irrelevant information from disclosed material. Include a representations process for information providers."},
			{ID: "proto-12", Text: "Is a management statement agreed with the sponsor department?", Category: "Secretary / Sponsor", Risk: RiskMedium, Guidance: "Set out respective roles, responsibilities, and procedures to manage the independence and accountability balance."},
			{ID: "proto-13", Text: "Are internal working practices developed?", Category: "Secretary", Risk: RiskMedium, Guidance: "Staff code of conduct, information handling, communication channels, escalation procedures."},
		},
	},
	{
		ID:    "evidence",
		Name:  "Evidence & Investigation",
		Color: "#70AD47",
		Icon:  "🔍",
		Questions: []Question{
			{ID: "evid-1", Text: "Have written requests for documentary evidence been issued?", Category: "Solicitor / Counsel", Risk: RiskHigh, Guidance: "Identify information holders. Craft requests carefully, sufficiently broad but targeted. Set deadlines and format requirements."},
			{ID: "evid-2", Text: "Are incoming document volumes being managed?", Category: "Solicitor / Evidence Team", Risk: RiskHigh, Guidance: "Review for relevance against terms of reference and issues list. Log, index, and store securely in the evidence management system."},
			{ID: "evid-3", Text: "Has the need for Section 21 compulsion notices been assessed?", Category: "Chair / Solicitor", Risk: RiskMedium, Guidance: "For statutory inquiries where informal requests are not complied with, or where providers need formal cover for disclosure."},
			{ID: "evid-4", Text: "Are privilege claims and PII applications being handled?", Category: "Solicitor / Counsel", Risk: RiskMedium, Guidance: "Take legal advice on claims under Section 22 (legal professional privilege, self-incrimination, parliamentary proceedings). Manage the PII balancing exercise."},
			{ID: "evid-5", Text: "Are witness statement requests prepared and issued?", Category: "Solicitor / Counsel", Risk: RiskHigh, Guidance: "Rule 9 requests for statutory inquiries. Develop the approach: witness-led, inquiry-led interview, or hybrid. Set timelines."},
			{ID: "evid-6", Text: "Are inquiry-led witness interviews being conducted where needed?", Category: "Solicitor / Counsel", Risk: RiskMedium, Guidance: "Prepare interview plans. Consider vulnerability, support needs, interpreters. Produce a statement for witness approval."},
			{ID: "evid-7", Text: "Is relevant material being disclosed to core participants?", Category: "Solicitor", Risk: RiskHigh, Guidance: "Via the document management system. Subject to redactions and confidentiality undertakings. Disclose witness statements before oral evidence."},
			{ID: "evid-8", Text: "Are ongoing disclosure requests and challenges being managed?", Category: "Solicitor", Risk: RiskMedium, Guidance: "Handle disputes about scope, relevance, privilege. Keep the disclosure log updated."},
			{ID: "evid-9", Text: "Have expert reports or expert groups been commissioned?", Category: "Chair / Counsel", Risk: RiskMedium, Guidance: "Where specialist knowledge is needed to understand evidence or support recommendations."},
			{ID: "evid-10", Text: "Have innovative evidence-gathering methods been considered?", Category: "Chair / Solicitor", Risk: RiskLow, Guidance: "Seminars, site visits, intermediaries for vulnerable witnesses, listening exercises, pen portraits and commemoration hearings."},
			{ID: "evid-11", Text: "Have National Archives searches been conducted?", Category: "Solicitor / Evidence Team", Risk: RiskLow, Guidance: "Use the Discovery catalogue. Arrange private access at Kew. Request digital copies as needed."},
			{ID: "evid-12", Text: "Is the issues list under ongoing review and refinement?", Category: "Solicitor / Counsel", Risk: RiskMedium, Guidance: "As evidence emerges, update the issues list. Consult core participants on proposed changes."},
		},
	},
	{
		ID:    "hearings",
		Name:  "Hearings",
		Color: "#BF8F00",
		Icon:  "⚖️",
		Questions: []Question{
			{ID: "hear-1", Text: "Have preliminary hearings been planned and held?", Category: "Chair / Counsel", Risk: RiskHigh, Guidance: "Set out the outline plan, approach to core participants, legal representation, funding, and procedures. Invite evidence from others."},
			{ID: "hear-2", Text: "Is the hearing timetable prepared?", Category: "Counsel / Solicitor", Risk: RiskHigh, Guidance: "Sequence witnesses logically. Build in breaks, administrative time, and contingency. Publish and share with core participants."},
			{ID: "hear-3", Text: "Is the opening statement prepared?", Category: "Counsel / Chair", Risk: RiskHigh, Guidance: "Chair or counsel sets out background, investigative work, issues for oral evidence, procedures, and timescales."},
			{ID: "hear-4", Text: "Are witness preparation meetings taking place?", Category: "Counsel / Solicitor", Risk: RiskHigh, Guidance: "Counsel meets witnesses in advance. Explain the process, manage expectations, identify support needs."},
			{ID: "hear-5", Text: "Is witness support managed during hearings?", Category: "Secretary / Ops", Risk: RiskHigh, Guidance: "Personal supporters, breaks, psychological support, accessible facilities. Especially for vulnerable witnesses and core participants."},
			{ID: "hear-6", Text: "Are oral evidence sessions being conducted properly?", Category: "Chair / Counsel", Risk: RiskHigh, Guidance: "Counsel questions witnesses. Manage applications from core participant counsel to ask questions. The chair maintains control."},
			{ID: "hear-7", Text: "Is core participant engagement managed during hearings?", Category: "Counsel / Solicitor", Risk: RiskMedium, Guidance: "Handle suggested questions, disclosure of new material, applications for additional witnesses."},
			{ID: "hear-8", Text: "Are daily transcripts being published?", Category: "Secretary / Ops", Risk: RiskHigh, Guidance: "Corrected transcripts on the inquiry website the same day or next morning. Include necessary redactions."},
			{ID: "hear-9", Text: "Is live broadcast of proceedings managed?", Category: "Secretary / IT", Risk: RiskMedium, Guidance: "Ensure reliable streaming. Handle any restriction orders requiring closed sessions."},
			{ID: "hear-10", Text: "Are closed or private hearing sessions handled?", Category: "Chair / Solicitor", Risk: RiskMedium, Guidance: "Where restriction orders or notices require it. Manage separate transcription and record-keeping."},
			{ID: "hear-11", Text: "Is time set aside for closing statements from core participants?", Category: "Chair / Counsel", Risk: RiskMedium, Guidance: "Set aside time after oral evidence. Provides an opportunity for observations and suggested recommendations."},
			{ID: "hear-12", Text: "Is media being managed throughout the hearing period?", Category: "Secretary / Comms", Risk: RiskMedium, Guidance: "Press statements, briefings, managing public interest. Maintain balance with sub judice concerns."},
			{ID: "hear-13", Text: "Is judicial review risk being monitored?", Category: "Solicitor", Risk: RiskMedium, Guidance: "Track procedural decisions that could be challenged. Document reasoning. 14-day challenge window."},
		},
	},
	{
		ID:    "closure",
		Name:  "Report & Closure",
		Color: "#C00000",
		Icon:  "📕",
		Questions: []Question{
			{ID: "close-1", Text: "Is the report writing approach agreed?", Category: "Chair", Risk: RiskHigh, Guidance: "Who drafts which sections: counsel, solicitor, chair, or a combination. Consider engaging an editor or copy-editor for style consistency."},
			{ID: "close-2", Text: "Is the report being drafted?", Category: "Chair / Counsel", Risk: RiskHigh, Guidance: "Must address terms of reference, be supported by evidence, use clear language, include an executive summary and recommendations."},
			{ID: "close-3", Text: "Is the Maxwellisation / warning letter process conducted?", Category: "Chair / Solicitor", Risk: RiskHigh, Guidance: "Send warning letters to anyone who may be subject of explicit or significant criticism. Allow reasonable time for representations."},
			{ID: "close-4", Text: "Are pre-publication reviews and checks complete?", Category: "Solicitor / Editor", Risk: RiskHigh, Guidance: "Full review for personal data, protected information, accuracy of evidence references, typographical errors, and escaped criticisms."},
			{ID: "close-5", Text: "Are publication responsibility and process agreed?", Category: "Chair / Sponsor", Risk: RiskHigh, Guidance: "Confirm whether the minister or chair publishes. Agree practical steps including sensitivity checking by the sponsor department."},
			{ID: "close-6", Text: "Is advance access for the minister managed?", Category: "Chair / Secretary", Risk: RiskHigh, Guidance: "Balance the minister's need to prepare a parliamentary response against the perception of independence and victims' expectations."},
			{ID: "close-7", Text: "Is a lock-in organised for core participants?", Category: "Secretary / Ops", Risk: RiskHigh, Guidance: "Venue, security, separate rooms if needed, device surrender, confidentiality undertakings, staggered access periods."},
			{ID: "close-8", Text: "Is laying before Parliament arranged?", Category: "Sponsor / Secretary", Risk: RiskHigh, Guidance: "Coordinate with parliamentary authorities. Prepare a written or oral ministerial statement. Arrange opposition leader access."},
			{ID: "close-9", Text: "Is the report publication plan in place?", Category: "Chair / Secretary", Risk: RiskHigh, Guidance: "Website publication, chair's public statement, print run for key recipients. Coordinate timing with parliamentary laying."},
			{ID: "close-10", Text: "Is a lessons learned paper planned?", Category: "Secretary", Risk: RiskHigh, Guidance: "The secretary writes within two months of inquiry end. Cover timetable, costs, accommodation, IT, sponsor relationship, difficulties, good practice."},
			{ID: "close-11", Text: "Are contracts terminated and premises vacated?", Category: "Secretary / Ops", Risk: RiskMedium, Guidance: "Hearing space, offices, IT equipment, phone lines, email accounts, utilities. Allow a buffer period for unexpected applications."},
			{ID: "close-12", Text: "Are records archived and transferred to the National Archives?", Category: "Secretary / TNA", Risk: RiskHigh, Guidance: "Index all documents. Destroy duplicates methodically with a destruction record. Transfer to TNA or the sponsor department as directed."},
			{ID: "close-13", Text: "Is inquiry closure communicated to stakeholders?", Category: "Secretary / Comms", Risk: RiskMedium, Guidance: "Advance notice of when phone lines and email will cease. Direct future queries to the sponsor department."},
			{ID: "close-14", Text: "Is witness and stakeholder support transitioned?", Category: "Secretary / Sponsor", Risk: RiskMedium, Guidance: "Agree with the sponsor department what support continues, in what form, and who funds it."},
			{ID: "close-15", Text: "Is recommendation implementation monitored?", Category: "Chair / Sponsor", Risk: RiskMedium, Guidance: "Consider the chair's ongoing role. Government should respond within six months. Annual updates to Parliament until closed."},
		},
	},
}
