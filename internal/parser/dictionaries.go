package parser

import "strings"

// SkillCategory is one immutable dictionary of lower-cased skill phrases.
// Priority orders categories for ranking: a higher value sorts first.
type SkillCategory struct {
	Name     string
	Priority int
	Terms    map[string]struct{}
}

// Dictionaries aggregates the skill category tables and the stoplist used by
// the skill extractor. Build once at startup and share; nothing mutates the
// tables after construction.
type Dictionaries struct {
	// Categories in descending priority order.
	Categories []SkillCategory
	// Irrelevant terms rejected from free-form skill captures.
	Irrelevant map[string]struct{}
}

// Category returns the category a phrase belongs to, or nil.
func (d *Dictionaries) Category(phrase string) *SkillCategory {
	for i := range d.Categories {
		if _, ok := d.Categories[i].Terms[phrase]; ok {
			return &d.Categories[i]
		}
	}
	return nil
}

// PriorityOf returns the ranking priority of a phrase, 0 if uncategorized.
func (d *Dictionaries) PriorityOf(phrase string) int {
	if c := d.Category(phrase); c != nil {
		return c.Priority
	}
	return 0
}

// IsIrrelevant reports whether the phrase contains a stoplisted term.
func (d *Dictionaries) IsIrrelevant(phrase string) bool {
	for term := range d.Irrelevant {
		if strings.Contains(phrase, term) {
			return true
		}
	}
	return false
}

func terms(list ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, t := range list {
		m[t] = struct{}{}
	}
	return m
}

// DefaultDictionaries builds the standard skill tables. Ranking priority runs
// technical > healthcare > hr > soft > education > creative > business.
func DefaultDictionaries() *Dictionaries {
	return &Dictionaries{
		Categories: []SkillCategory{
			{Name: "technical", Priority: 7, Terms: terms(
				// Software development
				"python", "java", "javascript", "c++", "ruby", "php", "swift",
				"react", "angular", "vue.js", "node.js", "django", "flask",
				"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
				"git", "ci/cd", "jenkins", "agile", "scrum", "devops",
				// Data science and analytics
				"machine learning", "deep learning", "artificial intelligence",
				"data analytics", "statistical analysis", "r",
				"sql", "tableau", "power bi", "data visualization",
				"natural language processing", "computer vision",
				// Project and product
				"project management", "agile methodologies",
				"product development", "requirements gathering",
				"stakeholder management", "risk management",
				"quality assurance", "software development lifecycle",
				// Infrastructure and security
				"network security", "cloud computing", "system administration",
				"infrastructure management", "cybersecurity", "penetration testing",
				"vulnerability assessment", "firewall configuration",
			)},
			{Name: "healthcare", Priority: 6, Terms: terms(
				"patient care", "medical diagnosis", "treatment planning",
				"clinical research", "medical documentation", "patient assessment",
				"healthcare compliance", "medical terminology",
				"healthcare management", "medical billing", "medical coding",
				"electronic health records", "hipaa compliance",
				"healthcare operations", "quality improvement",
				"emergency medicine", "pediatrics", "geriatrics",
				"mental health", "rehabilitation", "pharmacy",
				"laboratory management", "radiology",
				"clinical trials", "medical research", "drug development",
				"patient safety", "quality control", "regulatory compliance",
			)},
			{Name: "hr", Priority: 5, Terms: terms(
				"talent acquisition", "recruitment", "interviewing",
				"candidate sourcing", "onboarding", "employer branding",
				"job description writing", "applicant tracking systems",
				"employee relations", "performance management",
				"employee engagement", "workplace culture", "diversity & inclusion",
				"employee development", "succession planning",
				"hr policies", "benefits administration", "compensation",
				"payroll management", "hr compliance", "labor relations",
				"hr analytics", "hris management",
				"training program development", "learning management systems",
				"leadership development", "skill assessment",
				"career development", "mentoring programs",
			)},
			{Name: "soft", Priority: 4, Terms: terms(
				"verbal communication", "written communication",
				"presentation skills", "public speaking", "active listening",
				"interpersonal skills", "negotiation", "conflict resolution",
				"team leadership", "mentoring", "coaching", "delegation",
				"decision making", "strategic thinking", "problem solving",
				"change management", "innovation",
				"adaptability", "creativity", "critical thinking",
				"time management", "organization", "attention to detail",
				"initiative", "reliability", "professionalism",
				"team collaboration", "cross-functional coordination",
				"relationship building", "cultural awareness",
				"remote collaboration", "partnership management",
			)},
			{Name: "education", Priority: 3, Terms: terms(
				"curriculum development", "lesson planning", "student assessment",
				"classroom management", "educational technology",
				"distance learning", "special education",
				"research methodology", "data collection", "data analysis",
				"academic writing", "grant writing", "literature review",
				"experimental design",
				"educational leadership", "program development",
				"student counseling", "academic advising",
				"educational policy", "accreditation",
				"educational software", "online teaching tools",
				"digital assessment", "virtual classroom management",
			)},
			{Name: "creative", Priority: 2, Terms: terms(
				"ui design", "ux design", "graphic design", "web design",
				"adobe creative suite", "photoshop", "illustrator",
				"indesign", "sketch", "figma", "typography",
				"content writing", "copywriting", "technical writing",
				"blog writing", "content strategy", "storytelling",
				"video production", "animation", "photography",
				"brand design", "marketing collateral", "visual identity",
				"campaign design", "social media design",
				"presentation design", "email design",
				"user research", "usability testing", "wireframing",
				"prototyping", "information architecture",
				"user journey mapping", "a/b testing",
			)},
			{Name: "business", Priority: 1, Terms: terms(
				"strategic planning", "business strategy",
				"organizational development",
				"business development", "executive leadership",
				"operational excellence",
				"financial analysis", "budgeting", "forecasting",
				"risk assessment", "process improvement", "cost reduction",
				"supply chain management", "inventory management",
				"vendor management", "contract negotiation",
				"digital marketing", "social media marketing",
				"brand management", "market research", "sales strategy",
				"customer relationship management", "lead generation",
				"email marketing", "seo optimization",
				"project coordination", "resource allocation",
				"timeline management", "budget management",
				"scope management", "risk mitigation",
				"stakeholder communication", "vendor coordination",
			)},
		},
		Irrelevant: terms(
			// Education boilerplate
			"gpa", "university", "college", "school", "degree",
			"graduate", "undergraduate", "diploma", "certificate",
			// Activities
			"activities", "hobbies", "interests", "volunteer",
			"club", "society", "association", "member",
			// General
			"languages", "travel", "sports", "awards",
			"references", "portfolio", "availability",
			// Contact boilerplate
			"email", "phone", "address", "linkedin",
			"website", "social media", "github",
		),
	}
}

// IndustrySkills are the operations-management phrases the template variant
// looks for in Profile and Skills & Abilities sections.
var IndustrySkills = []string{
	"team management", "staff training", "customer service",
	"operations management", "inventory control", "quality assurance",
	"budget management", "scheduling", "leadership", "food safety",
	"cost control", "vendor relations", "performance management",
	"customer satisfaction", "revenue growth",
}
