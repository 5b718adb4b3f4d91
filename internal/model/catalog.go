package model

// Pricing holds the three tiers offered for every event package.
type Pricing struct {
	Basic   float64 `json:"basic" bson:"basic"`
	Premium float64 `json:"premium" bson:"premium"`
	Luxury  float64 `json:"luxury" bson:"luxury"`
}

// Tier returns the price for a tier name and whether the name is known.
func (p Pricing) Tier(name string) (float64, bool) {
	switch name {
	case "basic":
		return p.Basic, true
	case "premium":
		return p.Premium, true
	case "luxury":
		return p.Luxury, true
	}
	return 0, false
}

// TimelineStep is one milestone of an event plan.
type TimelineStep struct {
	Step        string `json:"step" bson:"step"`
	Description string `json:"description" bson:"description"`
}

// EventPackage is a catalog entry shown on the events pages.
type EventPackage struct {
	ID               string         `json:"_id" bson:"_id"`
	Title            string         `json:"title" bson:"title"`
	Category         string         `json:"category" bson:"category"`
	Description      string         `json:"description" bson:"description"`
	ShortDescription string         `json:"shortDescription" bson:"shortDescription"`
	ImageURL         string         `json:"imageUrl" bson:"imageUrl"`
	Gallery          []string       `json:"gallery" bson:"gallery"`
	Pricing          Pricing        `json:"pricing" bson:"pricing"`
	Features         []string       `json:"features" bson:"features"`
	Timeline         []TimelineStep `json:"timeline" bson:"timeline"`
	IsFeatured       bool           `json:"isFeatured" bson:"isFeatured"`
}

// Testimonial is a client review.
type Testimonial struct {
	ID          string `json:"_id" bson:"_id"`
	ClientName  string `json:"clientName" bson:"clientName"`
	ClientImage string `json:"clientImage" bson:"clientImage"`
	Rating      int    `json:"rating" bson:"rating"`
	Review      string `json:"review" bson:"review"`
	EventType   string `json:"eventType" bson:"eventType"`
}

// Service describes an offering on the services page.
type Service struct {
	ID          string   `json:"_id" bson:"_id"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Icon        string   `json:"icon" bson:"icon"`
	Features    []string `json:"features" bson:"features"`
}

// TeamMember is a bio on the about page.
type TeamMember struct {
	ID       string `json:"_id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Position string `json:"position" bson:"position"`
	Image    string `json:"image" bson:"image"`
	Bio      string `json:"bio" bson:"bio"`
}
