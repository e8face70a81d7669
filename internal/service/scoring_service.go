package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/hyrind/role-recommender/internal/config"
	"github.com/hyrind/role-recommender/internal/model"
)

// Degree levels for education matching. Unrecognized degrees map to 0.
var degreeHierarchy = map[string]int{
	"phd":        4,
	"master's":   3,
	"masters":    3,
	"bachelor's": 2,
	"bachelors":  2,
	"diploma":    1,
}

// Reason-string thresholds.
const (
	strongSkillThreshold  = 70
	goodSkillThreshold    = 50
	perfectExpThreshold   = 90
	alignedExpThreshold   = 70
	educationMetThreshold = 90
	preferenceThreshold   = 50
)

// SkillMatch carries the skill sub-score together with its explanation.
type SkillMatch struct {
	Score   float64
	Matched []string
	Missing []string
}

// RoleScore is the full scoring result for one (candidate, role) pair.
type RoleScore struct {
	Total      float64
	Skill      float64
	Experience float64
	Education  float64
	Preference float64
	Matched    []string
	Missing    []string
	Reason     string
}

// ScoringService computes match scores between a skill profile and a job
// role. It is pure: no I/O, deterministic for a given config.
type ScoringService struct {
	cfg config.Scoring
}

func NewScoringService(cfg config.Scoring) *ScoringService {
	return &ScoringService{cfg: cfg}
}

// ScoreRole runs all four sub-scorers and combines them.
func (s *ScoringService) ScoreRole(profile *model.SkillProfile, role *model.JobRole) RoleScore {
	skill := s.SkillMatch(profile.AllSkills(), role)
	experience := s.ExperienceMatch(profile.TotalYearsExperience, role)
	education := s.EducationMatch(profile.HighestDegree, role)
	preference := s.PreferenceMatch(profile.DesiredRoles, role)

	total := (skill.Score * s.cfg.SkillWeight / 100) +
		(experience * s.cfg.ExperienceWeight / 100) +
		(education * s.cfg.EducationWeight / 100) +
		(preference * s.cfg.PreferenceWeight / 100)

	return RoleScore{
		Total:      round2(total),
		Skill:      skill.Score,
		Experience: experience,
		Education:  education,
		Preference: preference,
		Matched:    skill.Matched,
		Missing:    skill.Missing,
		Reason:     s.Reason(skill, experience, education, preference),
	}
}

// SkillMatch scores 0-100 based on coverage of the role's required and
// preferred skills. A role with no required (or preferred) skills counts as
// full coverage on that component.
func (s *ScoringService) SkillMatch(userSkills []string, role *model.JobRole) SkillMatch {
	userSet := make(map[string]bool, len(userSkills))
	for _, sk := range userSkills {
		userSet[NormalizeSkill(sk)] = true
	}

	required := normalizeAll(role.RequiredSkills)
	preferred := normalizeAll(role.PreferredSkills)

	matchedRequired := []string{}
	missingRequired := []string{}
	for _, sk := range required {
		if userSet[sk] {
			matchedRequired = append(matchedRequired, sk)
		} else {
			missingRequired = append(missingRequired, sk)
		}
	}
	matchedPreferred := []string{}
	for _, sk := range preferred {
		if userSet[sk] {
			matchedPreferred = append(matchedPreferred, sk)
		}
	}

	requiredScore := 100.0
	if len(required) > 0 {
		requiredScore = float64(len(matchedRequired)) / float64(len(required)) * 100
	}
	preferredScore := 100.0
	if len(preferred) > 0 {
		preferredScore = float64(len(matchedPreferred)) / float64(len(preferred)) * 100
	}

	return SkillMatch{
		Score:   round2(requiredScore*s.cfg.RequiredShare + preferredScore*s.cfg.PreferredShare),
		Matched: append(matchedRequired, matchedPreferred...),
		Missing: missingRequired,
	}
}

// ExperienceMatch scores 0-100 against the role's experience band. Being
// under the minimum is penalized steeply, being over the maximum gently.
func (s *ScoringService) ExperienceMatch(userYears float64, role *model.JobRole) float64 {
	minYears := role.MinYearsExperience
	maxYears := 100.0
	if role.MaxYearsExperience != nil {
		maxYears = *role.MaxYearsExperience
	}

	if userYears >= minYears && userYears <= maxYears {
		return 100
	}
	if userYears < minYears {
		penalty := math.Min((minYears-userYears)*s.cfg.UnderExperienceSlope, s.cfg.UnderExperienceCap)
		return math.Max(100-penalty, 0)
	}
	penalty := math.Min((userYears-maxYears)*s.cfg.OverExperienceSlope, s.cfg.OverExperienceCap)
	return math.Max(100-penalty, 0)
}

// EducationMatch scores 0-100 against the role's degree requirements. The
// candidate is compared with the lowest degree the role accepts: meeting it
// scores 100, one level short scores 50, further short scores 0.
func (s *ScoringService) EducationMatch(userDegree string, role *model.JobRole) float64 {
	if len(role.RequiredDegrees) == 0 {
		return 100
	}
	if userDegree == "" {
		return 0
	}

	userLevel := degreeHierarchy[strings.ToLower(userDegree)]

	minRequired := 0
	for i, d := range role.RequiredDegrees {
		level := degreeHierarchy[strings.ToLower(d)]
		if i == 0 || level < minRequired {
			minRequired = level
		}
	}

	switch {
	case userLevel >= minRequired:
		return 100
	case userLevel == minRequired-1:
		return 50
	default:
		return 0
	}
}

// PreferenceMatch scores 0-100 from desired-role title affinity plus a
// popularity bonus. Title matching is substring containment in either
// direction against the role title and its alternative titles; the first hit
// wins the full bonus.
func (s *ScoringService) PreferenceMatch(desiredRoles []string, role *model.JobRole) float64 {
	score := 0.0

	if len(desiredRoles) > 0 {
		title := NormalizeSkill(role.Title)
		altTitles := normalizeAll(role.AlternativeTitles)

	scan:
		for _, desired := range desiredRoles {
			d := NormalizeSkill(desired)
			if d == "" {
				continue
			}
			if strings.Contains(title, d) || strings.Contains(d, title) {
				score += s.cfg.DesiredRoleBonus
				break scan
			}
			for _, alt := range altTitles {
				if strings.Contains(alt, d) || strings.Contains(d, alt) {
					score += s.cfg.DesiredRoleBonus
					break scan
				}
			}
		}
	}

	if role.PopularityScore > 0 {
		score += math.Min(role.PopularityScore/s.cfg.PopularityDivisor, s.cfg.PopularityBonusCap)
	}

	return math.Min(score, 100)
}

// Reason builds the human-readable explanation from the sub-scores. The
// fragment order is fixed so regeneration is deterministic.
func (s *ScoringService) Reason(skill SkillMatch, experience, education, preference float64) string {
	parts := []string{}

	if skill.Score >= strongSkillThreshold {
		parts = append(parts, fmt.Sprintf("Strong skill match (%d matching skills)", len(skill.Matched)))
	} else if skill.Score >= goodSkillThreshold {
		parts = append(parts, fmt.Sprintf("Good skill match (%d matching skills)", len(skill.Matched)))
	}

	if experience >= perfectExpThreshold {
		parts = append(parts, "Experience level is a perfect fit")
	} else if experience >= alignedExpThreshold {
		parts = append(parts, "Experience level aligns well")
	}

	if education >= educationMetThreshold {
		parts = append(parts, "Education requirements met")
	}

	if preference >= preferenceThreshold {
		parts = append(parts, "Matches your career preferences")
	}

	if len(skill.Missing) > 0 {
		top := skill.Missing
		if len(top) > 3 {
			top = top[:3]
		}
		parts = append(parts, "Consider learning: "+strings.Join(top, ", "))
	}

	if len(parts) == 0 {
		return "This role may be a good fit for you."
	}
	return strings.Join(parts, ". ") + "."
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, NormalizeSkill(s))
	}
	return out
}
