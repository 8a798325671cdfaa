// selection.go
//
// Multi-step job application form state service.
// Pure selection rules for the job-interest step. No persistence here: the
// caller supplies the current selections and a candidate, and gets back an
// accept/reject decision with a reason.

package validation

import (
	"fmt"
	"strings"

	"github.com/hireflow/formstate/internal/formdata"
)

// Selection caps. Two regular categories normally; a third slot opens only
// for one of the special categories. Role allowance scales with the regular
// category count.
const (
	MaxRegularCategories     = 2
	MaxCategoriesWithSpecial = 3
	MaxSkillsPerList         = 10

	rolesPerSingleCategory = 3
	rolesPerTwoCategories  = 4
)

// SpecialCategories identifies the two experience-level categories that
// relax the regular category cap. Either ID may be empty when the reference
// data does not carry that category.
type SpecialCategories struct {
	StudentID      string
	NoExperienceID string
}

// FindSpecialCategories resolves the special category IDs from an
// id-to-name mapping of the seeded categories, matching by name the way the
// picker labels them.
func FindSpecialCategories(names map[string]string) SpecialCategories {
	var s SpecialCategories
	for id, name := range names {
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "student"):
			s.StudentID = id
		case strings.Contains(lower, "no experience"):
			s.NoExperienceID = id
		}
	}
	return s
}

func (s SpecialCategories) isSpecial(id string) bool {
	if id == "" {
		return false
	}
	return id == s.StudentID || id == s.NoExperienceID
}

func (s SpecialCategories) hasSpecial(ids []string) bool {
	for _, id := range ids {
		if s.isSpecial(id) {
			return true
		}
	}
	return false
}

func (s SpecialCategories) countRegular(ids []string) int {
	n := 0
	for _, id := range ids {
		if !s.isSpecial(id) {
			n++
		}
	}
	return n
}

// Decision is an accept/reject answer for a candidate addition.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanAddCategory decides whether candidate may join the current category
// selection.
func (s SpecialCategories) CanAddCategory(current []string, candidate string) Decision {
	if contains(current, candidate) {
		return deny("category already selected")
	}

	if s.isSpecial(candidate) {
		if (candidate == s.StudentID && contains(current, s.NoExperienceID)) ||
			(candidate == s.NoExperienceID && contains(current, s.StudentID)) {
			return deny("cannot select both Student and No Experience")
		}
		if len(current) >= MaxCategoriesWithSpecial {
			return deny(fmt.Sprintf("maximum %d categories allowed", MaxCategoriesWithSpecial))
		}
		return allow()
	}

	if s.hasSpecial(current) {
		if len(current) >= MaxCategoriesWithSpecial {
			return deny(fmt.Sprintf("maximum %d categories allowed", MaxCategoriesWithSpecial))
		}
		return allow()
	}

	// The second regular slot is the last one; the third is reserved for a
	// special category.
	if len(current) >= MaxRegularCategories {
		return deny(fmt.Sprintf("maximum %d regular categories; Student or No Experience may still be added", MaxRegularCategories))
	}

	return allow()
}

// RoleLimit reports how many roles the current categories allow. Special
// categories carry no roles and do not raise the limit.
func (s SpecialCategories) RoleLimit(categoryIDs []string) int {
	switch s.countRegular(categoryIDs) {
	case 0:
		return 0
	case 1:
		return rolesPerSingleCategory
	default:
		return rolesPerTwoCategories
	}
}

// CanAddRole decides whether candidate may join the current role selection
// under the limit implied by the selected categories.
func (s SpecialCategories) CanAddRole(categoryIDs, currentRoles []string, candidate string) Decision {
	if contains(currentRoles, candidate) {
		return deny("role already selected")
	}

	limit := s.RoleLimit(categoryIDs)
	if limit == 0 {
		return deny("select a category before choosing roles")
	}
	if len(currentRoles) >= limit {
		return deny(fmt.Sprintf("maximum %d roles with the current categories", limit))
	}

	return allow()
}

// CanAddSkill decides whether candidate may join the given skill list. The
// mandatory and advantage lists are capped independently and must stay
// disjoint.
func CanAddSkill(target, other []string, candidate string) Decision {
	if contains(target, candidate) {
		return deny("skill already selected")
	}
	if contains(other, candidate) {
		return deny("skill already selected in the other list")
	}
	if len(target) >= MaxSkillsPerList {
		return deny(fmt.Sprintf("maximum %d skills per list", MaxSkillsPerList))
	}
	return allow()
}

// CheckJobInterest validates a full job-interest selection, returning one
// message per violated rule. An empty result means the selection is
// acceptable.
func (s SpecialCategories) CheckJobInterest(ji formdata.JobInterest) []string {
	var problems []string

	if contains(ji.CategoryIDs, s.StudentID) && s.StudentID != "" &&
		contains(ji.CategoryIDs, s.NoExperienceID) && s.NoExperienceID != "" {
		problems = append(problems, "cannot select both Student and No Experience")
	}

	if s.hasSpecial(ji.CategoryIDs) {
		if len(ji.CategoryIDs) > MaxCategoriesWithSpecial {
			problems = append(problems,
				fmt.Sprintf("maximum %d categories allowed", MaxCategoriesWithSpecial))
		}
	} else if len(ji.CategoryIDs) > MaxRegularCategories {
		problems = append(problems,
			fmt.Sprintf("maximum %d regular categories allowed", MaxRegularCategories))
	}

	if limit := s.RoleLimit(ji.CategoryIDs); len(ji.RoleIDs) > limit {
		problems = append(problems,
			fmt.Sprintf("maximum %d roles with the current categories", limit))
	}

	if len(ji.MandatorySkills) > MaxSkillsPerList {
		problems = append(problems,
			fmt.Sprintf("maximum %d mandatory skills", MaxSkillsPerList))
	}
	if len(ji.AdvantageSkills) > MaxSkillsPerList {
		problems = append(problems,
			fmt.Sprintf("maximum %d advantage skills", MaxSkillsPerList))
	}
	for _, skill := range ji.AdvantageSkills {
		if contains(ji.MandatorySkills, skill) {
			problems = append(problems,
				fmt.Sprintf("skill %q appears in both mandatory and advantage lists", skill))
		}
	}

	return problems
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
