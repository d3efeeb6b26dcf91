package domains

import "strings"

// Domain names.
const (
	AI          = "AI"
	Healthcare  = "Healthcare"
	Design      = "Design"
	Business    = "Business"
	Education   = "Education"
	Engineering = "Engineering"
	Law         = "Law"
)

// Domain is one entry of the knowledge base.
type Domain struct {
	Name    string   `json:"name"`
	Careers []string `json:"careers"`
	Skills  []string `json:"skills"`
	Exams   []string `json:"exams"`
	// Aptitude lists the aptitude score keys averaged when ranking.
	Aptitude []string `json:"aptitude"`
}

// Text is the description embedded for similarity matching.
func (d Domain) Text() string {
	return d.Name + ": " + strings.Join(d.Careers, ", ") + ". " + strings.Join(d.Skills, ", ") + "."
}

var knowledge = []Domain{
	{
		Name:     AI,
		Careers:  []string{"Machine Learning Engineer", "Data Scientist", "AI Researcher"},
		Skills:   []string{"Python", "Math", "Statistics"},
		Exams:    []string{"JEE", "GATE"},
		Aptitude: []string{"Math", "Logic"},
	},
	{
		Name:     Healthcare,
		Careers:  []string{"Doctor", "Biotechnologist", "Healthcare Analyst"},
		Skills:   []string{"Biology", "Empathy", "Chemistry"},
		Exams:    []string{"NEET"},
		Aptitude: []string{"Biology", "Chemistry"},
	},
	{
		Name:     Design,
		Careers:  []string{"UX Designer", "Graphic Designer", "Product Designer"},
		Skills:   []string{"Creativity", "Figma", "Adobe XD"},
		Exams:    []string{"NID", "UCEED"},
		Aptitude: []string{"Creativity"},
	},
	{
		Name:     Business,
		Careers:  []string{"Business Analyst", "Entrepreneur", "Product Manager"},
		Skills:   []string{"Communication", "Excel", "Finance"},
		Exams:    []string{"CAT", "GMAT"},
		Aptitude: []string{"Logic", "Economics"},
	},
	{
		Name:     Education,
		Careers:  []string{"Teacher", "Education Consultant", "Instructional Designer"},
		Skills:   []string{"Teaching", "Pedagogy", "Patience"},
		Exams:    []string{"CTET", "TET"},
		Aptitude: []string{"Language", "General Knowledge"},
	},
	{
		Name:     Engineering,
		Careers:  []string{"Mechanical Engineer", "Electrical Engineer", "Civil Engineer"},
		Skills:   []string{"Physics", "CAD", "Problem Solving"},
		Exams:    []string{"JEE", "GATE"},
		Aptitude: []string{"Math", "Physics"},
	},
	{
		Name:     Law,
		Careers:  []string{"Advocate", "Legal Advisor", "Judge"},
		Skills:   []string{"Critical Thinking", "Ethics", "Legal Writing"},
		Exams:    []string{"CLAT", "AILET"},
		Aptitude: []string{"Language", "Ethics"},
	},
}

// All returns a copy of the knowledge base in catalog order.
func All() []Domain {
	out := make([]Domain, len(knowledge))
	copy(out, knowledge)
	return out
}

// Names returns every domain name in catalog order.
func Names() []string {
	names := make([]string, len(knowledge))
	for i, d := range knowledge {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the domain with the given name, ignoring case.
func Lookup(name string) (Domain, bool) {
	for _, d := range knowledge {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Domain{}, false
}

// MissingSkills returns the domain skills not in have, in domain order.
// Skills compare case-insensitively.
func (d Domain) MissingSkills(have []string) []string {
	owned := make(map[string]struct{}, len(have))
	for _, s := range have {
		owned[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	var missing []string
	for _, s := range d.Skills {
		if _, ok := owned[strings.ToLower(s)]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// AptitudeMatch is the mean of the domain's aptitude keys in scores; absent
// keys count as zero. Keys compare case-insensitively.
func (d Domain) AptitudeMatch(scores map[string]float64) float64 {
	if len(d.Aptitude) == 0 {
		return 0
	}
	lower := make(map[string]float64, len(scores))
	for k, v := range scores {
		lower[strings.ToLower(strings.TrimSpace(k))] = v
	}
	var sum float64
	for _, k := range d.Aptitude {
		sum += lower[strings.ToLower(k)]
	}
	return sum / float64(len(d.Aptitude))
}
