package catalog

import "slices"

// Career names.
const (
	CareerDoctor             = "Doctor"
	CareerNurse              = "Nurse"
	CareerSoftwareEngineer   = "Software Engineer"
	CareerMechanicalEngineer = "Mechanical Engineer"
	CareerMBA                = "MBA"
	CareerCA                 = "Chartered Accountant"
	CareerLawyer             = "Lawyer"
	CareerCivilServant       = "Civil Servant"
	CareerBiomedical         = "Biomedical Scientist"
	CareerDataScientist      = "Data Scientist"
)

// CareerProfile is a static catalog entry.
type CareerProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// ValidFor holds the exam and stream names the career is offered for.
	ValidFor    []string `json:"valid_for"`
}

var careers = []CareerProfile{
	{CareerDoctor, "Medicine, patient care, biology, diagnostics, healthcare, NEET, PCB", []string{"NEET", "PCB"}},
	{CareerNurse, "Patient care, biology, nursing, empathy, healthcare, NEET, PCB", []string{"NEET", "PCB"}},
	{CareerSoftwareEngineer, "Coding, algorithms, software development, problem-solving, JEE, PCM, GATE", []string{"JEE", "PCM", "GATE", "SAT"}},
	{CareerMechanicalEngineer, "Mechanics, engineering, design, problem-solving, JEE, PCM", []string{"JEE", "PCM"}},
	{CareerMBA, "Business, management, finance, leadership, CAT, Commerce", []string{"CAT", "Commerce"}},
	{CareerCA, "Accounting, finance, taxation, auditing, CA, Commerce", []string{"Commerce"}},
	{CareerLawyer, "Legal analysis, advocacy, justice, ethics, CLAT, Arts", []string{"CLAT", "Arts"}},
	{CareerCivilServant, "Public service, administration, history, policy, UPSC, Arts", []string{"UPSC", "Arts"}},
	{CareerBiomedical, "Research, biology, innovation, healthcare, NEET, PCB", []string{"NEET", "PCB"}},
	{CareerDataScientist, "Data analysis, machine learning, coding, statistics, GATE, PCM", []string{"GATE", "PCM", "SAT"}},
}

// Careers returns the career catalog in its fixed order.
func Careers() []CareerProfile {
	out := make([]CareerProfile, len(careers))
	copy(out, careers)
	return out
}

// CareerNames returns every career name in catalog order.
func CareerNames() []string {
	names := make([]string, len(careers))
	for i, c := range careers {
		names[i] = c.Name
	}
	return names
}

// Career returns the profile with the given name.
func Career(name string) (CareerProfile, bool) {
	for _, c := range careers {
		if c.Name == name {
			return c, true
		}
	}
	return CareerProfile{}, false
}

// ValidCareers returns the candidate careers for a profile: those tagged
// with the exam first, then those tagged with the stream, then the whole
// catalog.
func ValidCareers(p Profile) []string {
	if p.Exam.IsSet() {
		if names := careersFor(string(p.Exam)); len(names) > 0 {
			return names
		}
	}
	if names := careersFor(string(p.Stream)); len(names) > 0 {
		return names
	}
	return CareerNames()
}

// careersFor lists, in catalog order, the careers whose ValidFor holds tag.
func careersFor(tag string) []string {
	var names []string
	for _, c := range careers {
		if slices.Contains(c.ValidFor, tag) {
			names = append(names, c.Name)
		}
	}
	return names
}
