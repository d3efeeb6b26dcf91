package recommend

import "github.com/abhisek/careerquest/internal/catalog"

// DefaultDemand is reported for careers without a demand figure.
const DefaultDemand = 60.0

// Demand is a mock job-market demand index for a career.
type Demand struct {
	Career string  `json:"career"`
	Demand float64 `json:"demand"`
}

func demandFor(career string) float64 {
	switch career {
	case catalog.CareerSoftwareEngineer:
		return 85
	case catalog.CareerDoctor:
		return 90
	case catalog.CareerMBA, catalog.CareerCA:
		return 75
	case catalog.CareerLawyer, catalog.CareerMechanicalEngineer:
		return 70
	case catalog.CareerCivilServant, catalog.CareerBiomedical:
		return 65
	case catalog.CareerNurse, catalog.CareerDataScientist:
		return 80
	default:
		return DefaultDemand
	}
}

// JobMarket returns the demand index for each career, in input order.
func JobMarket(careers []string) []Demand {
	out := make([]Demand, len(careers))
	for i, c := range careers {
		out[i] = Demand{Career: c, Demand: demandFor(c)}
	}
	return out
}
