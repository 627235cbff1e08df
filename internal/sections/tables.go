package sections

// ResumeTable lists the header phrases that delimit resume sections. Order
// within a group is irrelevant; phrases are matched as whole lines.
var ResumeTable = []HeaderGroup{
	NewHeaderGroup(Summary,
		"professional summary",
		"career summary",
		"summary",
		"objective",
		"career objective",
		"profile",
		"about me",
	),
	NewHeaderGroup(Experience,
		"work experience",
		"professional experience",
		"employment history",
		"work history",
		"career history",
		"relevant experience",
		"experience",
	),
	NewHeaderGroup(Education,
		"education",
		"academic background",
		"education & training",
		"education and training",
		"academic qualifications",
	),
	NewHeaderGroup(Skills,
		"technical skills",
		"core competencies",
		"skills & abilities",
		"skills and abilities",
		"technologies",
		"skills",
	),
	NewHeaderGroup(Projects,
		"personal projects",
		"side projects",
		"selected projects",
		"academic projects",
		"projects",
	),
}

// JobPostingTable lists the header phrases that delimit job-posting sections.
var JobPostingTable = []HeaderGroup{
	NewHeaderGroup(Required,
		"required skills",
		"required qualifications",
		"requirements",
		"minimum qualifications",
		"basic qualifications",
		"must have",
		"must haves",
		"must-haves",
		"what you'll need",
		"what you need",
		"what we're looking for",
		"your qualifications",
		"qualifications",
	),
	NewHeaderGroup(Preferred,
		"preferred skills",
		"preferred qualifications",
		"nice to have",
		"nice to haves",
		"nice-to-have",
		"nice-to-haves",
		"bonus points",
		"bonus skills",
		"desired skills",
		"desired qualifications",
		"pluses",
	),
	NewHeaderGroup(Responsibilities,
		"responsibilities",
		"key responsibilities",
		"what you'll do",
		"what you will do",
		"your role",
		"the role",
		"about the role",
		"duties",
		"day to day",
		"day-to-day",
		"job description",
	),
	NewHeaderGroup(Skip,
		"benefits",
		"perks",
		"perks & benefits",
		"perks and benefits",
		"compensation",
		"about us",
		"about the company",
		"our culture",
		"culture",
		"why join us",
		"what we offer",
		"equal opportunity",
		"how to apply",
	),
}
