package ats

// Template is a named ATS-friendly resume skeleton with placeholder text.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// TemplatesNote accompanies every template listing.
const TemplatesNote = "Templates include placeholders ([...]) for easy customization with your details."

// Templates returns the fixed catalog of resume templates. Always exactly
// three entries with stable ids.
func Templates() []Template {
	return []Template{
		{
			ID:   "template_1",
			Name: "Minimal ATS-Friendly Resume",
			Content: "[Name]\n[Phone] | [Email] | [LinkedIn] | [Location]\n\n" +
				"PROFESSIONAL SUMMARY\n- 2–3 lines tailored to JD with keywords.\n\n" +
				"SKILLS\n- Skill 1 | Skill 2 | Skill 3 | Skill 4 | Skill 5\n\n" +
				"WORK EXPERIENCE\nJob Title — Company | Dates\n- Achievement using numbers\n" +
				"- Responsibility using JD keywords\n- Technology/Tools used\n\n" +
				"EDUCATION\nDegree — College — Year\n\n" +
				"PROJECTS\nProject Title\n- Tools used, metrics achieved\n\n" +
				"CERTIFICATIONS\n- List relevant ones",
		},
		{
			ID:   "template_2",
			Name: "Metrics-Focused Resume",
			Content: "[Name]\n[Contact Info]\n\n" +
				"SUMMARY\n- Short, keyword-rich summary aligned with JD.\n\n" +
				"CORE SKILLS\n- Categorized technical + soft skills\n\n" +
				"EXPERIENCE\nCompany — Role — Dates\nKey Achievements:\n- Increased X by Y%\n" +
				"- Improved Z using A\n- Automated process using B\n\n" +
				"TOOLS\n- List tools/software exactly matching JD\n\n" +
				"EDUCATION\n- Degree + Year",
		},
		{
			ID:   "template_3",
			Name: "Modern Clean Resume (Still ATS Friendly)",
			Content: "[Name]\n[Phone] | [Email] | [Portfolio]\n\n" +
				"SUMMARY (One Professional Paragraph)\n\n" +
				"TECHNICAL SKILLS\n- Grouped by category (Programming, Tools, Frameworks)\n\n" +
				"PROFESSIONAL EXPERIENCE\nRole | Company | Duration\n- STAR method bullet points\n" +
				"- Use measurable outcomes\n\n" +
				"EDUCATION\nDegree | Institute | Year\n\n" +
				"PROJECTS\n- Bullet points with quantifiable impact",
		},
	}
}
