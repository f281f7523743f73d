package calendar

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// Default block lengths painted on the calendar. Activities store only a
// start; the end exists for display.
const (
	eventDuration   = 2 * time.Hour
	tastingDuration = time.Hour
)

// Entry is one paintable calendar block.
type Entry struct {
	ID     uuid.UUID            `json:"id"`
	Kind   enums.ActivityKind   `json:"kind"`
	Title  string               `json:"title"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status enums.ActivityStatus `json:"status"`
}

// Service produces the merged schedule feed.
type Service interface {
	Feed(ctx context.Context, from, to time.Time) ([]Entry, error)
}

type service struct {
	db *gorm.DB
}

// NewService wires calendar dependencies.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "db handle required")
	}
	return &service{db: db}, nil
}

// Feed returns every event and tasting scheduled inside [from, to),
// merged and sorted by start.
func (s *service) Feed(ctx context.Context, from, to time.Time) ([]Entry, error) {
	if !to.After(from) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "feed range end must be after its start")
	}

	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("start_date >= ? AND start_date < ?", from, to).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	var tastings []models.Tasting
	err = s.db.WithContext(ctx).
		Where("tasting_date >= ? AND tasting_date < ?", from, to).
		Find(&tastings).Error
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(events)+len(tastings))
	for _, event := range events {
		start := combine(event.StartDate, event.StartTime)
		entries = append(entries, Entry{
			ID:     event.ID,
			Kind:   enums.ActivityKindEvent,
			Title:  event.Name,
			Start:  start,
			End:    start.Add(eventDuration),
			Status: event.Status,
		})
	}
	for _, tasting := range tastings {
		start := combine(tasting.TastingDate, tasting.TastingTime)
		entries = append(entries, Entry{
			ID:     tasting.ID,
			Kind:   enums.ActivityKindTasting,
			Title:  tasting.Name,
			Start:  start,
			End:    start.Add(tastingDuration),
			Status: tasting.Status,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Start.Equal(entries[j].Start) {
			return entries[i].Title < entries[j].Title
		}
		return entries[i].Start.Before(entries[j].Start)
	})
	return entries, nil
}

// combine anchors a clock string like "18:00" onto a stored date. A value
// that does not parse leaves the block at midnight rather than dropping it
// from the feed.
func combine(date time.Time, clock string) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return day
	}
	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
}
