// Package seed holds the sample catalog shown by a fresh installation and
// loads it into any CatalogStore.
package seed

import (
	"context"
	"fmt"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
)

const unsplash = "https://images.unsplash.com/"

// Events returns the sample event packages.  Each call returns fresh
// slices so callers may mutate the result.
func Events() []model.EventPackage {
	return []model.EventPackage{
		{
			Title:            "Luxury Wedding Package",
			Category:         "Wedding",
			Description:      "A complete luxury wedding experience including venue, catering, and decoration.",
			ShortDescription: "Complete luxury wedding experience",
			ImageURL:         unsplash + "photo-1519741497674-611481863552?w=800",
			Gallery: []string{
				unsplash + "photo-1519741497674-611481863552?w=800",
				unsplash + "photo-1511795409834-ef04bbd61622?w=800",
				unsplash + "photo-1520854221250-bc63c54b5171?w=800",
			},
			Pricing: model.Pricing{Basic: 5000, Premium: 8000, Luxury: 12000},
			Features: []string{
				"Venue Selection & Booking",
				"Full Decoration",
				"Catering for up to 200 guests",
				"Photography & Videography",
				"Live Music Band",
			},
			Timeline: []model.TimelineStep{
				{Step: "Month 1", Description: "Initial consultation and venue booking"},
				{Step: "Month 3", Description: "Vendor selection and menu tasting"},
				{Step: "Month 6", Description: "Final details and rehearsal"},
			},
			IsFeatured: true,
		},
		{
			Title:            "Corporate Summit",
			Category:         "Corporate",
			Description:      "Professional planning for large-scale corporate conferences and summits.",
			ShortDescription: "Professional corporate event planning",
			ImageURL:         unsplash + "photo-1511578314322-379afb476865?w=800",
			Gallery: []string{
				unsplash + "photo-1511578314322-379afb476865?w=800",
				unsplash + "photo-1544531586-fde5298cdd40?w=800",
			},
			Pricing: model.Pricing{Basic: 3000, Premium: 6000, Luxury: 10000},
			Features: []string{
				"Venue Arrangement",
				"AV Setup & Tech Support",
				"Catering",
				"Guest Registration System",
			},
			Timeline: []model.TimelineStep{
				{Step: "Week 1", Description: "Concept and budget approval"},
				{Step: "Week 4", Description: "Speaker coordination"},
			},
			IsFeatured: true,
		},
		{
			Title:            "Birthday Bash",
			Category:         "Party",
			Description:      "Fun and exciting birthday parties for all ages.",
			ShortDescription: "Unforgettable birthday celebrations",
			ImageURL:         unsplash + "photo-1530103862676-de8c9debad1d?w=800",
			Gallery:          []string{unsplash + "photo-1530103862676-de8c9debad1d?w=800"},
			Pricing:          model.Pricing{Basic: 1000, Premium: 2500, Luxury: 4000},
			Features: []string{
				"Theme Decoration",
				"Entertainment / DJ",
				"Custom Cake",
				"Photography",
			},
			Timeline:   []model.TimelineStep{},
			IsFeatured: true,
		},
	}
}

func Testimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ClientName:  "Sarah Johnson",
			ClientImage: unsplash + "photo-1494790108755-2616b612b786?w=100",
			Rating:      5,
			Review:      "EventSphere made our wedding absolutely perfect! Every detail was handled with care.",
			EventType:   "Wedding",
		},
		{
			ClientName:  "Michael Chen",
			ClientImage: unsplash + "photo-1472099645785-5658abf4ff4e?w=100",
			Rating:      5,
			Review:      "Outstanding service for our corporate gala. Highly professional team.",
			EventType:   "Corporate",
		},
	}
}

func Services() []model.Service {
	return []model.Service{
		{Title: "Weddings", Description: "Dream weddings tailored to perfection", Icon: "💒",
			Features: []string{"Full Planning", "Day-of Coordination", "Destination Weddings"}},
		{Title: "Corporate Events", Description: "Professional events that impress", Icon: "🏢",
			Features: []string{"Conferences", "Product Launches", "Team Building"}},
		{Title: "Social Gatherings", Description: "Parties and celebrations", Icon: "🎉",
			Features: []string{"Birthdays", "Anniversaries", "Reunions"}},
	}
}

func Team() []model.TeamMember {
	return []model.TeamMember{
		{
			Name:     "Emily Davis",
			Position: "Lead Planner",
			Image:    unsplash + "photo-1573496359142-b8d87734a5a2?w=400",
			Bio:      "10+ years of experience in luxury weddings.",
		},
	}
}

// Counts reports how many records Load inserted per collection.
type Counts struct {
	Events       int
	Testimonials int
	Services     int
	Team         int
}

// Load inserts the sample catalog into store.  It does not check for
// existing records; run it once against an empty store.
func Load(ctx context.Context, store repository.CatalogStore) (Counts, error) {
	var n Counts
	for _, e := range Events() {
		e := e
		if err := store.InsertEvent(ctx, &e); err != nil {
			return n, fmt.Errorf("seed event %q: %w", e.Title, err)
		}
		n.Events++
	}
	for _, t := range Testimonials() {
		t := t
		if err := store.InsertTestimonial(ctx, &t); err != nil {
			return n, fmt.Errorf("seed testimonial %q: %w", t.ClientName, err)
		}
		n.Testimonials++
	}
	for _, s := range Services() {
		s := s
		if err := store.InsertService(ctx, &s); err != nil {
			return n, fmt.Errorf("seed service %q: %w", s.Title, err)
		}
		n.Services++
	}
	for _, m := range Team() {
		m := m
		if err := store.InsertTeamMember(ctx, &m); err != nil {
			return n, fmt.Errorf("seed team member %q: %w", m.Name, err)
		}
		n.Team++
	}
	return n, nil
}
