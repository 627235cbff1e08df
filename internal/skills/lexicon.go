package skills

import "strings"

// KnownSkills is the lexicon scanned when extracting skills from job-posting
// text. Entries are display-cased; matching is canonical and word-boundary
// aware. Extended independently of any control flow.
var KnownSkills = []string{
	// Languages
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C", "C++",
	"C#", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
	"SQL", "HTML", "CSS", "Bash", "PowerShell", "Dart", "Elixir", "Haskell",

	// Frameworks and libraries
	"React", "Angular", "Vue", "Next.js", "Svelte", "Node", "Express",
	"Django", "Flask", "FastAPI", "Spring", "Spring Boot", "Rails",
	"Laravel", "React Native", "Flutter", "jQuery", "Bootstrap", "Tailwind",

	// Data stores and pipelines
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
	"DynamoDB", "SQLite", "Oracle", "SQL Server", "Kafka", "RabbitMQ",
	"Spark", "Hadoop", "Airflow", "Snowflake", "BigQuery", "Redshift",
	"ETL",

	// Cloud and infrastructure
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "CircleCI", "GitHub Actions", "GitLab", "Git", "Linux",
	"Nginx", "CI/CD", "Helm", "Prometheus", "Grafana", "Serverless",
	"Lambda", "S3", "EC2", "DevOps",

	// APIs and architecture
	"REST", "GraphQL", "gRPC", "Microservices", "WebSockets", "OAuth",
	"System Design", "Distributed Systems", "Security",

	// Machine learning and data
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"scikit-learn", "Pandas", "NumPy", "NLP", "Computer Vision",
	"Data Analysis", "Data Science",

	// Practices and collaboration
	"Agile", "Scrum", "Kanban", "Jira", "TDD", "Unit Testing", "Testing",
	"Debugging", "Code Review", "Mentoring", "Leadership", "Communication",
	"Teamwork", "Project Management", "Problem Solving", "Documentation",
	"Stakeholder Management",
}

// canonicalLexicon maps canonical tokens of KnownSkills to their display names.
var canonicalLexicon = DisplayNames(KnownSkills)

// FindKnown scans text for known skills and returns their display names in
// lexicon order, deduplicated.
func FindKnown(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, skill := range KnownSkills {
		token := Canonicalize(skill)
		if seen[token] {
			continue
		}
		if ContainsToken(text, skill) || ContainsToken(text, token) {
			found = append(found, skill)
			seen[token] = true
		}
	}
	return found
}

// IsKnown reports whether a skill canonicalizes to a lexicon entry.
func IsKnown(skill string) bool {
	_, ok := canonicalLexicon[Canonicalize(skill)]
	return ok
}

// DisplayName returns the lexicon's display casing for a skill, or a
// title-cased form of the input when the skill is not in the lexicon.
func DisplayName(skill string) string {
	if display, ok := canonicalLexicon[Canonicalize(skill)]; ok {
		return display
	}
	words := strings.Fields(strings.ToLower(skill))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
