// reference.go
//
// Multi-step job application form state service.
// Cached reference-data queries: categories, roles, locations, skills, and
// the composite role search.

package services

import (
	"context"
	"strings"

	"github.com/hireflow/formstate/internal/cache"
	"github.com/hireflow/formstate/internal/models"
	"github.com/hireflow/formstate/internal/types"
	"github.com/hireflow/formstate/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Cache keys. Filtered role/skill lookups append ":<filterID>".
const (
	keyCategories      = "categories"
	keyRoles           = "roles"
	keyLocations       = "locations"
	keySkillCategories = "skill-categories"
	keySkills          = "skills"
)

// ReferenceService serves the reference tables through a fixed-TTL
// read-through cache. Role search always hits the database: its result
// space is unbounded by operation name.
type ReferenceService struct {
	db          *gorm.DB
	cache       *cache.Cache
	log         *zap.Logger
	searchLimit int
}

// NewReferenceService wires the reference queries to a cache and a search
// result cap.
func NewReferenceService(db *gorm.DB, c *cache.Cache, log *zap.Logger, searchLimit int) *ReferenceService {
	return &ReferenceService{db: db, cache: c, log: log, searchLimit: searchLimit}
}

// Categories returns all job categories.
func (s *ReferenceService) Categories(ctx context.Context) ([]models.Category, error) {
	return cache.GetOrLoad(s.cache, ctx, keyCategories, func(ctx context.Context) ([]models.Category, error) {
		var out []models.Category
		if err := s.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
			return nil, types.NewStorageError("load categories", err)
		}
		s.log.Debug("reference cache repopulated", zap.String("key", keyCategories), zap.Int("rows", len(out)))
		return out, nil
	})
}

// Roles returns roles, optionally filtered by category.
func (s *ReferenceService) Roles(ctx context.Context, categoryID string) ([]models.Role, error) {
	key := keyRoles
	if categoryID != "" {
		key += ":" + categoryID
	}
	return cache.GetOrLoad(s.cache, ctx, key, func(ctx context.Context) ([]models.Role, error) {
		query := s.db.WithContext(ctx).Order("name")
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		var out []models.Role
		if err := query.Find(&out).Error; err != nil {
			return nil, types.NewStorageError("load roles", err)
		}
		s.log.Debug("reference cache repopulated", zap.String("key", key), zap.Int("rows", len(out)))
		return out, nil
	})
}

// Locations returns all work locations.
func (s *ReferenceService) Locations(ctx context.Context) ([]models.Location, error) {
	return cache.GetOrLoad(s.cache, ctx, keyLocations, func(ctx context.Context) ([]models.Location, error) {
		var out []models.Location
		if err := s.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
			return nil, types.NewStorageError("load locations", err)
		}
		return out, nil
	})
}

// SkillCategories returns the skill groupings.
func (s *ReferenceService) SkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	return cache.GetOrLoad(s.cache, ctx, keySkillCategories, func(ctx context.Context) ([]models.SkillCategory, error) {
		var out []models.SkillCategory
		if err := s.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
			return nil, types.NewStorageError("load skill categories", err)
		}
		return out, nil
	})
}

// Skills returns skills, optionally filtered by skill category.
func (s *ReferenceService) Skills(ctx context.Context, skillCategoryID string) ([]models.Skill, error) {
	key := keySkills
	if skillCategoryID != "" {
		key += ":" + skillCategoryID
	}
	return cache.GetOrLoad(s.cache, ctx, key, func(ctx context.Context) ([]models.Skill, error) {
		query := s.db.WithContext(ctx).Order("name")
		if skillCategoryID != "" {
			query = query.Where("skill_category_id = ?", skillCategoryID)
		}
		var out []models.Skill
		if err := query.Find(&out).Error; err != nil {
			return nil, types.NewStorageError("load skills", err)
		}
		return out, nil
	})
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied fragments.
// '!' is the escape character ('[' matters on SQL Server only).
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_", "[", "![")

func likePattern(fragment string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(fragment)) + "%"
}

// SearchRoles returns roles in any of the given categories whose name
// contains searchText case-insensitively, capped at the configured limit.
// Empty categoryIDs searches every category.
func (s *ReferenceService) SearchRoles(ctx context.Context, categoryIDs []string, searchText string) ([]models.Role, error) {
	query := s.db.WithContext(ctx).Order("name").Limit(s.searchLimit)
	if len(categoryIDs) > 0 {
		query = query.Where("category_id IN ?", categoryIDs)
	}
	if fragment := strings.TrimSpace(searchText); fragment != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", likePattern(fragment))
	}

	var out []models.Role
	if err := query.Find(&out).Error; err != nil {
		return nil, types.NewStorageError("search roles", err)
	}
	return out, nil
}

// SearchSkills returns skills whose name contains searchText
// case-insensitively, optionally scoped to one skill category. A
// non-positive or oversized limit falls back to the configured cap.
func (s *ReferenceService) SearchSkills(ctx context.Context, skillCategoryID, searchText string, limit int) ([]models.Skill, error) {
	if limit <= 0 || limit > s.searchLimit {
		limit = s.searchLimit
	}

	query := s.db.WithContext(ctx).Order("name").Limit(limit)
	if skillCategoryID != "" {
		query = query.Where("skill_category_id = ?", skillCategoryID)
	}
	if fragment := strings.TrimSpace(searchText); fragment != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", likePattern(fragment))
	}

	var out []models.Skill
	if err := query.Find(&out).Error; err != nil {
		return nil, types.NewStorageError("search skills", err)
	}
	return out, nil
}

// ReferenceData is the combined payload for clients that want every
// reference list in one round trip.
type ReferenceData struct {
	Categories      []models.Category      `json:"categories"`
	Roles           []models.Role          `json:"roles"`
	Locations       []models.Location      `json:"locations"`
	SkillCategories []models.SkillCategory `json:"skillCategories"`
	Skills          []models.Skill         `json:"skills"`
}

// All assembles the combined reference payload from the cached lists.
func (s *ReferenceService) All(ctx context.Context) (*ReferenceData, error) {
	var (
		data ReferenceData
		err  error
	)
	if data.Categories, err = s.Categories(ctx); err != nil {
		return nil, err
	}
	if data.Roles, err = s.Roles(ctx, ""); err != nil {
		return nil, err
	}
	if data.Locations, err = s.Locations(ctx); err != nil {
		return nil, err
	}
	if data.SkillCategories, err = s.SkillCategories(ctx); err != nil {
		return nil, err
	}
	if data.Skills, err = s.Skills(ctx, ""); err != nil {
		return nil, err
	}
	return &data, nil
}

// SpecialCategories resolves the experience-level categories from the
// cached category list.
func (s *ReferenceService) SpecialCategories(ctx context.Context) (validation.SpecialCategories, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return validation.SpecialCategories{}, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return validation.FindSpecialCategories(names), nil
}

// RefreshCache drops every cached entry and pre-warms the unfiltered
// lists. Filtered entries repopulate lazily on next read.
func (s *ReferenceService) RefreshCache(ctx context.Context) error {
	s.cache.Clear()

	if _, err := s.Categories(ctx); err != nil {
		return err
	}
	if _, err := s.Roles(ctx, ""); err != nil {
		return err
	}
	if _, err := s.Locations(ctx); err != nil {
		return err
	}
	if _, err := s.SkillCategories(ctx); err != nil {
		return err
	}
	if _, err := s.Skills(ctx, ""); err != nil {
		return err
	}

	s.log.Info("reference cache refreshed")
	return nil
}

// ClearCache is the bare eviction primitive.
func (s *ReferenceService) ClearCache() {
	s.cache.Clear()
}
