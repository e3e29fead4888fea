package gap

import "github.com/jonathan/resume-gap/internal/types"

const (
	criticalBoostPerKeyword  = 10
	criticalBoostCap         = 30
	importantBoostPerKeyword = 5
	importantBoostCap        = 15
	emphasizeBoost           = 5
	maxScore                 = 100
)

// CalculateImprovementPotential estimates the overall score reachable by
// acting on the analysis: +10 per critical keyword (max 30), +5 per important
// keyword (max 15), +5 when there is anything to emphasize, capped at 100.
func CalculateImprovementPotential(analysis types.GapAnalysis) types.ImprovementPotential {
	potential := types.ImprovementPotential{
		CurrentScore:   analysis.OverallMatchScore,
		CriticalBoost:  min(len(analysis.MissingKeywords.Critical)*criticalBoostPerKeyword, criticalBoostCap),
		ImportantBoost: min(len(analysis.MissingKeywords.Important)*importantBoostPerKeyword, importantBoostCap),
	}
	if len(analysis.SkillsToEmphasize) > 0 {
		potential.EmphasizeBoost = emphasizeBoost
	}

	total := potential.CurrentScore + potential.CriticalBoost + potential.ImportantBoost + potential.EmphasizeBoost
	potential.PotentialScore = min(total, maxScore)
	return potential
}
