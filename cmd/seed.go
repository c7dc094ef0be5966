package main

import (
	"context"
	"discovery/internal/catalog"
	"discovery/internal/config"
	"discovery/internal/suggestions"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"discovery/pkg/logger"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// seedFile is the layout of a catalog seed file. Event times are relative to
// the moment the seed runs so a seeded catalog always has upcoming events.
type seedFile struct {
	Curator uuid.UUID   `yaml:"curator"`
	Places  []seedPlace `yaml:"places"`
}

type seedPlace struct {
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description"`
	Category     string      `yaml:"category"`
	Tags         []string    `yaml:"tags"`
	Neighborhood string      `yaml:"neighborhood"`
	Location     geo.Point   `yaml:"location"`
	PriceLevel   int         `yaml:"priceLevel"`
	Events       []seedEvent `yaml:"events"`
}

type seedEvent struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Category    string        `yaml:"category"`
	Tags        []string      `yaml:"tags"`
	PriceLevel  int           `yaml:"priceLevel"`
	StartsIn    time.Duration `yaml:"startsIn"`
	Duration    time.Duration `yaml:"duration"`
}

func loadSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("could not parse seed file: %w", err)
	}
	if f.Curator == uuid.Nil {
		return nil, fmt.Errorf("seed file %s has no curator", path)
	}

	return &f, nil
}

// seedCatalog lists every place of f and its events through the catalog
// service, so seeded listings go through the same validation as API input.
func seedCatalog(ctx context.Context, svc catalog.Service, f *seedFile, now time.Time) (int, int, error) {
	curatorID := domain.UserID(f.Curator)
	var places, events int
	for _, sp := range f.Places {
		place, err := svc.CreatePlace(ctx, curatorID, catalog.PlaceInput{
			Name:         sp.Name,
			Description:  sp.Description,
			Category:     sp.Category,
			Tags:         sp.Tags,
			Neighborhood: sp.Neighborhood,
			Location:     sp.Location,
			PriceLevel:   sp.PriceLevel,
		})
		if err != nil {
			return places, events, fmt.Errorf("could not seed place %q: %w", sp.Name, err)
		}
		places++

		for _, se := range sp.Events {
			startsAt := now.Add(se.StartsIn).Truncate(time.Minute)
			_, err := svc.CreateEvent(ctx, curatorID, catalog.EventInput{
				PlaceID:     &place.ID,
				Title:       se.Title,
				Description: se.Description,
				Category:    se.Category,
				Tags:        se.Tags,
				PriceLevel:  se.PriceLevel,
				StartsAt:    startsAt,
				EndsAt:      startsAt.Add(se.Duration),
			})
			if err != nil {
				return places, events, fmt.Errorf("could not seed event %q: %w", se.Title, err)
			}
			events++
		}
	}

	return places, events, nil
}

func seedCommand(cfg *config.Config) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads places and events from a YAML file into the catalog",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			f, err := loadSeedFile(path)
			if err != nil {
				logger.Fatal(ctx, "could not load seed file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := catalog.New(strg, suggestions.New(strg, nil, suggestions.NewOptions(cfg)))
			places, events, err := seedCatalog(ctx, svc, f, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not seed catalog", zap.Error(err))
			}

			logger.Info(ctx, "catalog seeded", zap.Int("places", places), zap.Int("events", events))
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "seed/denver.yaml", "Seed file path")

	return cmd
}
