package types

// JobPosting represents a structured job posting extracted from raw text.
// Created once by the job-posting analyzer; immutable thereafter.
type JobPosting struct {
	Title                string   `json:"title"`
	Company              string   `json:"company"`
	RequiredSkills       []string `json:"required_skills"`
	PreferredSkills      []string `json:"preferred_skills"`
	Responsibilities     []string `json:"responsibilities"`
	Qualifications       []string `json:"qualifications"`
	ImplicitExpectations []string `json:"implicit_expectations"`
	RawText              string   `json:"raw_text,omitempty"`
}

// AllSkills returns required and preferred skills as one list, required first.
func (j *JobPosting) AllSkills() []string {
	all := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	all = append(all, j.RequiredSkills...)
	all = append(all, j.PreferredSkills...)
	return all
}
