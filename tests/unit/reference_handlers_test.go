// reference_handlers_test.go
//
// Multi-step job application form state service.
// HTTP tests for the reference-data routes.

package unit

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/models"
	"github.com/hireflow/formstate/tests/helpers"
)

func TestCategoriesList(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doGet(t, app, "/api/reference/categories")
	helpers.AssertStatus(t, resp, http.StatusOK)
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var categories []models.Category
	helpers.ParseData(t, env, &categories)
	if len(categories) != 4 {
		t.Fatalf("Expected 4 categories, got %d", len(categories))
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name > categories[i].Name {
			t.Errorf("Expected name order, got %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}
}

func TestRolesOptionalCategoryScope(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doGet(t, app, "/api/reference/roles")
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)
	var all []models.Role
	helpers.ParseData(t, env, &all)
	if len(all) != 3 {
		t.Errorf("Expected 3 roles unscoped, got %d", len(all))
	}

	resp = doGet(t, app, "/api/reference/roles/cat-dev")
	env = helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)
	var scoped []models.Role
	helpers.ParseData(t, env, &scoped)
	if len(scoped) != 2 {
		t.Fatalf("Expected 2 roles for cat-dev, got %d", len(scoped))
	}
	for _, role := range scoped {
		if role.CategoryID != "cat-dev" {
			t.Errorf("Expected role scoped to cat-dev, got %q", role.CategoryID)
		}
	}
}

func TestLocationsList(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doGet(t, app, "/api/reference/locations")
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)
	var locations []models.Location
	helpers.ParseData(t, env, &locations)
	if len(locations) != 2 {
		t.Errorf("Expected 2 locations, got %d", len(locations))
	}
}

func TestSkillsOptionalCategoryScope(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doGet(t, app, "/api/reference/skill-categories")
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)
	var skillCategories []models.SkillCategory
	helpers.ParseData(t, env, &skillCategories)
	if len(skillCategories) != 1 {
		t.Errorf("Expected 1 skill category, got %d", len(skillCategories))
	}

	resp = doGet(t, app, "/api/reference/skills/sc-lang")
	env = helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)
	var skills []models.Skill
	helpers.ParseData(t, env, &skills)
	if len(skills) != 2 {
		t.Errorf("Expected 2 skills for sc-lang, got %d", len(skills))
	}
}

func TestSearchRoles(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/reference/roles/search", fiber.Map{
		"categoryIds": []string{"cat-dev"},
		"searchText":  "BACK",
	})
	helpers.AssertStatus(t, resp, http.StatusOK)
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var roles []models.Role
	helpers.ParseData(t, env, &roles)
	if len(roles) != 1 || roles[0].Name != "Backend Engineer" {
		t.Errorf("Expected case-insensitive match on Backend Engineer, got %v", roles)
	}
}

func TestSearchRolesCategoryNarrowing(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	// Both dev roles match "engineer"; the category filter hides them.
	resp := doJSON(t, app, http.MethodPost, "/api/reference/roles/search", fiber.Map{
		"categoryIds": []string{"cat-data"},
		"searchText":  "engineer",
	})
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var roles []models.Role
	helpers.ParseData(t, env, &roles)
	if len(roles) != 0 {
		t.Errorf("Expected no engineer roles under cat-data, got %v", roles)
	}
}

func TestSearchRolesBareStringCategory(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/reference/roles/search", fiber.Map{
		"categoryIds": "cat-dev",
		"searchText":  "engineer",
	})
	helpers.AssertStatus(t, resp, http.StatusOK)
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var roles []models.Role
	helpers.ParseData(t, env, &roles)
	if len(roles) != 2 {
		t.Errorf("Expected 2 dev roles, got %d", len(roles))
	}
}

func TestSearchRolesBlankFragment(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/reference/roles/search", fiber.Map{})
	helpers.AssertStatus(t, resp, http.StatusOK)
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var roles []models.Role
	helpers.ParseData(t, env, &roles)
	if len(roles) != 3 {
		t.Errorf("Expected blank search to list all roles, got %d", len(roles))
	}
}

func TestReferenceAll(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doGet(t, app, "/api/reference/all")
	helpers.AssertStatus(t, resp, http.StatusOK)
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var data struct {
		Categories      []models.Category      `json:"categories"`
		Roles           []models.Role          `json:"roles"`
		Locations       []models.Location      `json:"locations"`
		SkillCategories []models.SkillCategory `json:"skillCategories"`
		Skills          []models.Skill         `json:"skills"`
	}
	helpers.ParseData(t, env, &data)
	if len(data.Categories) != 4 || len(data.Roles) != 3 || len(data.Locations) != 2 ||
		len(data.SkillCategories) != 1 || len(data.Skills) != 2 {
		t.Errorf("Unexpected combined payload sizes: %d/%d/%d/%d/%d",
			len(data.Categories), len(data.Roles), len(data.Locations),
			len(data.SkillCategories), len(data.Skills))
	}
}

func TestSkillsSearchQuery(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doGet(t, app, "/api/reference/skills?search=eng")
	helpers.AssertStatus(t, resp, http.StatusOK)
	env := helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)

	var skills []models.Skill
	helpers.ParseData(t, env, &skills)
	if len(skills) != 1 || skills[0].Name != "English" {
		t.Errorf("Expected English from skills search, got %v", skills)
	}

	// A wildcard fragment is a literal, not a match-all.
	resp = doGet(t, app, "/api/reference/skills?search=%25")
	env = helpers.ParseEnvelope(t, resp)
	helpers.AssertSuccess(t, env)
	skills = nil
	helpers.ParseData(t, env, &skills)
	if len(skills) != 0 {
		t.Errorf("Expected no matches for a literal percent, got %d", len(skills))
	}
}

func TestSearchRolesRejectsWrongTypes(t *testing.T) {
	app, db := newTestApp(t)
	helpers.SeedReferenceData(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/reference/roles/search", fiber.Map{
		"searchText": 42,
	})
	helpers.AssertStatus(t, resp, http.StatusBadRequest)
	helpers.AssertFailure(t, helpers.ParseEnvelope(t, resp))
}
