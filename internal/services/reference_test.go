package services

import (
	"context"
	"testing"
	"time"

	"github.com/hireflow/formstate/internal/cache"
	"github.com/hireflow/formstate/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := []models.Category{
		{ID: "cat-dev", Name: "Software Development"},
		{ID: "cat-data", Name: "Data & Analytics"},
		{ID: "cat-student", Name: "Student"},
		{ID: "cat-noexp", Name: "No Experience"},
	}
	roles := []models.Role{
		{ID: "role-be", CategoryID: "cat-dev", Name: "Backend Engineer"},
		{ID: "role-fe", CategoryID: "cat-dev", Name: "Frontend Engineer"},
		{ID: "role-qa", CategoryID: "cat-dev", Name: "QA Engineer"},
		{ID: "role-da", CategoryID: "cat-data", Name: "Data Analyst"},
		{ID: "role-de", CategoryID: "cat-data", Name: "Data Engineer"},
	}
	locations := []models.Location{
		{ID: "loc-tlv", Name: "Tel Aviv"},
		{ID: "loc-remote", Name: "Remote"},
	}
	skillCategories := []models.SkillCategory{
		{ID: "sc-lang", Name: "Languages"},
	}
	skills := []models.Skill{
		{ID: "sk-he", SkillCategoryID: "sc-lang", Name: "Hebrew", Kind: models.SkillKindMandatory},
		{ID: "sk-en", SkillCategoryID: "sc-lang", Name: "English", Kind: models.SkillKindMandatory},
	}

	for _, seed := range []interface{}{&categories, &roles, &locations, &skillCategories, &skills} {
		if err := db.Create(seed).Error; err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
	}
}

func newReferenceService(t *testing.T, db *gorm.DB) *ReferenceService {
	t.Helper()
	return NewReferenceService(db, cache.New(30*time.Minute), zap.NewNop(), 50)
}

func TestCategoriesCached(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)
	ctx := context.Background()

	categories, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 4 {
		t.Errorf("Expected 4 categories, got %d", len(categories))
	}

	// A row added behind the cache is invisible until eviction.
	if err := db.Create(&models.Category{ID: "cat-new", Name: "Logistics"}).Error; err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	categories, _ = svc.Categories(ctx)
	if len(categories) != 4 {
		t.Errorf("Expected cached list of 4, got %d", len(categories))
	}

	svc.ClearCache()
	categories, _ = svc.Categories(ctx)
	if len(categories) != 5 {
		t.Errorf("Expected 5 categories after eviction, got %d", len(categories))
	}
}

func TestRolesFilteredByCategory(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)
	ctx := context.Background()

	all, err := svc.Roles(ctx, "")
	if err != nil {
		t.Fatalf("Roles failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 roles, got %d", len(all))
	}

	dev, err := svc.Roles(ctx, "cat-dev")
	if err != nil {
		t.Fatalf("Roles failed: %v", err)
	}
	if len(dev) != 3 {
		t.Errorf("Expected 3 dev roles, got %d", len(dev))
	}
	for _, role := range dev {
		if role.CategoryID != "cat-dev" {
			t.Errorf("Expected only cat-dev roles, got %q", role.CategoryID)
		}
	}
}

func TestSearchRoles(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)
	ctx := context.Background()

	// Case-insensitive substring across the given categories.
	roles, err := svc.SearchRoles(ctx, []string{"cat-dev", "cat-data"}, "ENGINEER")
	if err != nil {
		t.Fatalf("SearchRoles failed: %v", err)
	}
	if len(roles) != 4 {
		t.Errorf("Expected 4 engineer roles, got %d", len(roles))
	}

	// Category filter narrows the match set.
	roles, _ = svc.SearchRoles(ctx, []string{"cat-data"}, "engineer")
	if len(roles) != 1 {
		t.Errorf("Expected 1 data engineer, got %d", len(roles))
	}

	// Empty category list searches everything.
	roles, _ = svc.SearchRoles(ctx, nil, "analyst")
	if len(roles) != 1 {
		t.Errorf("Expected 1 analyst, got %d", len(roles))
	}

	// No fragment returns the capped full listing.
	roles, _ = svc.SearchRoles(ctx, []string{"cat-dev"}, "  ")
	if len(roles) != 3 {
		t.Errorf("Expected 3 dev roles for blank fragment, got %d", len(roles))
	}
}

func TestSearchEscapesLikeWildcards(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)
	ctx := context.Background()

	// Wildcards in the fragment are literals, not match-alls.
	for _, fragment := range []string{"%", "_", "!", "["} {
		roles, err := svc.SearchRoles(ctx, nil, fragment)
		if err != nil {
			t.Fatalf("SearchRoles(%q) failed: %v", fragment, err)
		}
		if len(roles) != 0 {
			t.Errorf("Expected no matches for literal %q, got %d", fragment, len(roles))
		}
	}

	// A literal metacharacter in a name still matches itself.
	if err := db.Create(&models.Role{ID: "role-pct", CategoryID: "cat-dev", Name: "100% Remote Support"}).Error; err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	roles, err := svc.SearchRoles(ctx, nil, "0% rem")
	if err != nil {
		t.Fatalf("SearchRoles failed: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != "role-pct" {
		t.Errorf("Expected the literal-percent role, got %v", roles)
	}
}

func TestSearchSkills(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)
	ctx := context.Background()

	skills, err := svc.SearchSkills(ctx, "", "ENG", 0)
	if err != nil {
		t.Fatalf("SearchSkills failed: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "English" {
		t.Errorf("Expected English, got %v", skills)
	}

	// Category scope applies on top of the fragment.
	skills, _ = svc.SearchSkills(ctx, "sc-other", "ENG", 0)
	if len(skills) != 0 {
		t.Errorf("Expected no matches outside the category, got %d", len(skills))
	}

	// An explicit limit caps the result below the configured maximum.
	skills, _ = svc.SearchSkills(ctx, "sc-lang", "", 1)
	if len(skills) != 1 {
		t.Errorf("Expected 1 skill with limit 1, got %d", len(skills))
	}
}

func TestAllCombinesReferenceLists(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)

	data, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(data.Categories) != 4 || len(data.Roles) != 5 || len(data.Locations) != 2 ||
		len(data.SkillCategories) != 1 || len(data.Skills) != 2 {
		t.Errorf("Unexpected combined payload sizes: %d/%d/%d/%d/%d",
			len(data.Categories), len(data.Roles), len(data.Locations),
			len(data.SkillCategories), len(data.Skills))
	}
}

func TestSearchRolesCapped(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := NewReferenceService(db, cache.New(time.Minute), zap.NewNop(), 2)

	roles, err := svc.SearchRoles(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("SearchRoles failed: %v", err)
	}
	if len(roles) != 2 {
		t.Errorf("Expected result capped at 2, got %d", len(roles))
	}
}

func TestSpecialCategories(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)

	special, err := svc.SpecialCategories(context.Background())
	if err != nil {
		t.Fatalf("SpecialCategories failed: %v", err)
	}
	if special.StudentID != "cat-student" {
		t.Errorf("Expected student id cat-student, got %q", special.StudentID)
	}
	if special.NoExperienceID != "cat-noexp" {
		t.Errorf("Expected no-experience id cat-noexp, got %q", special.NoExperienceID)
	}
}

func TestRefreshCache(t *testing.T) {
	db := openTestDB(t)
	seedReferenceData(t, db)
	svc := newReferenceService(t, db)
	ctx := context.Background()

	if _, err := svc.Locations(ctx); err != nil {
		t.Fatalf("Locations failed: %v", err)
	}

	if err := db.Create(&models.Location{ID: "loc-new", Name: "Eilat"}).Error; err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := svc.RefreshCache(ctx); err != nil {
		t.Fatalf("RefreshCache failed: %v", err)
	}

	locations, err := svc.Locations(ctx)
	if err != nil {
		t.Fatalf("Locations failed: %v", err)
	}
	if len(locations) != 3 {
		t.Errorf("Expected 3 locations after refresh, got %d", len(locations))
	}
}
