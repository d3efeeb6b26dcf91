package catalog

import (
	"slices"

	qb "github.com/abhisek/careerquest/internal/questionbank"
)

// ValidCategories returns the quiz and slider categories for a profile.
// A degree track (post-graduation only) overrides an exam track, which
// overrides the stream. The result is never empty.
func ValidCategories(p Profile) []qb.Category {
	if p.Stage == StagePostGraduation && p.Degree != DegreeNone {
		return degreeCategories(p.Degree)
	}
	if p.Exam.IsSet() {
		return examCategories(p.Exam, p.Stream)
	}
	return streamCategories(p.Stream)
}

// CategoryAllowed reports whether c is scored for the profile. Quiz
// materialization and score intake both gate on it.
func CategoryAllowed(p Profile, c qb.Category) bool {
	return slices.Contains(ValidCategories(p), c)
}

func streamCategories(s Stream) []qb.Category {
	switch s {
	case StreamPCM:
		return []qb.Category{qb.CategoryMath, qb.CategoryPhysics, qb.CategoryChemistry, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra, qb.CategoryActivity}
	case StreamPCB:
		return []qb.Category{qb.CategoryBiology, qb.CategoryPhysics, qb.CategoryChemistry, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra, qb.CategoryActivity}
	case StreamCommerce:
		return []qb.Category{qb.CategoryMath, qb.CategoryAccounting, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra, qb.CategoryActivity}
	case StreamArts:
		return []qb.Category{qb.CategoryVerbal, qb.CategoryAnalytical, qb.CategoryExtra, qb.CategoryActivity}
	default:
		return []qb.Category{qb.CategoryMath, qb.CategoryVerbal, qb.CategoryAnalytical, qb.CategoryPhysics, qb.CategoryChemistry, qb.CategoryExtra, qb.CategoryActivity}
	}
}

// examCategories falls back to the stream list for Other and for exams the
// table has no entry for (GRE, GMAT).
func examCategories(e Exam, s Stream) []qb.Category {
	switch e {
	case ExamJEE:
		return []qb.Category{qb.CategoryMath, qb.CategoryPhysics, qb.CategoryChemistry, qb.CategoryAnalytical, qb.CategoryVerbal}
	case ExamNEET:
		return []qb.Category{qb.CategoryBiology, qb.CategoryPhysics, qb.CategoryChemistry, qb.CategoryAnalytical, qb.CategoryVerbal}
	case ExamCLAT, ExamUPSC:
		return []qb.Category{qb.CategoryVerbal, qb.CategoryAnalytical, qb.CategoryExtra}
	case ExamCAT:
		return []qb.Category{qb.CategoryMath, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra}
	case ExamGATE:
		return []qb.Category{qb.CategoryCoding, qb.CategoryMath, qb.CategoryAnalytical, qb.CategoryVerbal}
	case ExamSAT:
		return []qb.Category{qb.CategoryMath, qb.CategoryVerbal, qb.CategoryAnalytical, qb.CategoryExtra}
	default:
		// TODO: add GRE and GMAT category lists.
		return streamCategories(s)
	}
}

func degreeCategories(d Degree) []qb.Category {
	switch d {
	case DegreeBTech:
		return []qb.Category{qb.CategoryCoding, qb.CategoryMath, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra}
	case DegreeBCom:
		return []qb.Category{qb.CategoryAccounting, qb.CategoryMath, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra}
	case DegreeBSc:
		return []qb.Category{qb.CategoryBiology, qb.CategoryPhysics, qb.CategoryChemistry, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra}
	case DegreeBA, DegreeLLB:
		return []qb.Category{qb.CategoryVerbal, qb.CategoryAnalytical, qb.CategoryExtra}
	case DegreeBBA:
		return []qb.Category{qb.CategoryAccounting, qb.CategoryAnalytical, qb.CategoryVerbal, qb.CategoryExtra}
	case DegreeMBBS:
		return []qb.Category{qb.CategoryBiology, qb.CategoryExtra, qb.CategoryAnalytical, qb.CategoryVerbal}
	default:
		return []qb.Category{qb.CategoryMath, qb.CategoryVerbal, qb.CategoryAnalytical, qb.CategoryExtra}
	}
}
