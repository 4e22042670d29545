// Package seed loads the sample gallery catalog.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/headz-api/internal/models"
)

type Result struct {
	Categories int `json:"categories"`
	Hairstyles int `json:"hairstyles"`
}

// Seed upserts the sample categories and hairstyles by name.
func Seed(ctx context.Context, db *gorm.DB) (Result, error) {
	var res Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range categories {
			row := models.HairstyleCategory{Name: c.Name, Description: c.Description}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"description"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", c.Name, err)
			}
			res.Categories++
		}

		ids, err := categoryIDs(tx)
		if err != nil {
			return err
		}

		for _, h := range hairstyles {
			row := models.Hairstyle{
				Name:        h.Name,
				Description: h.Description,
				ImageURL:    h.ImageURL,
				CategoryID:  ids[categoryFor(h.Gender)],
				Gender:      string(h.Gender),
				Length:      string(h.Length),
			}
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"description", "image_url", "category_id", "gender", "length", "updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed hairstyle %q: %w", h.Name, err)
			}
			res.Hairstyles++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

func categoryIDs(tx *gorm.DB) (map[string]uuid.UUID, error) {
	var rows []models.HairstyleCategory
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	out := make(map[string]uuid.UUID, len(rows))
	for _, r := range rows {
		out[r.Name] = r.ID
	}
	return out, nil
}

// Clear removes every hairstyle, then every category. Try-on sessions and
// saved hairstyles pointing at them go with them through the foreign keys.
func Clear(ctx context.Context, db *gorm.DB) (Result, error) {
	var res Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		h := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Hairstyle{})
		if h.Error != nil {
			return fmt.Errorf("clear hairstyles: %w", h.Error)
		}
		c := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.HairstyleCategory{})
		if c.Error != nil {
			return fmt.Errorf("clear categories: %w", c.Error)
		}

		res = Result{Categories: int(c.RowsAffected), Hairstyles: int(h.RowsAffected)}
		return nil
	})
	return res, err
}

// Status counts the catalog rows.
func Status(ctx context.Context, db *gorm.DB) (Result, error) {
	var cats, styles int64

	if err := db.WithContext(ctx).Model(&models.HairstyleCategory{}).Count(&cats).Error; err != nil {
		return Result{}, fmt.Errorf("count categories: %w", err)
	}
	if err := db.WithContext(ctx).Model(&models.Hairstyle{}).Count(&styles).Error; err != nil {
		return Result{}, fmt.Errorf("count hairstyles: %w", err)
	}

	return Result{Categories: int(cats), Hairstyles: int(styles)}, nil
}

// AutoSeedIfEmpty seeds when either table is empty and reports whether it did.
func AutoSeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	st, err := Status(ctx, db)
	if err != nil {
		return false, err
	}
	if st.Categories > 0 && st.Hairstyles > 0 {
		slog.InfoContext(ctx, "catalog present, skipping seed",
			slog.Int("categories", st.Categories),
			slog.Int("hairstyles", st.Hairstyles),
		)
		return false, nil
	}

	res, err := Seed(ctx, db)
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "catalog seeded",
		slog.Int("categories", res.Categories),
		slog.Int("hairstyles", res.Hairstyles),
	)
	return true, nil
}
