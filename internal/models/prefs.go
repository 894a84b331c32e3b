package models

import "time"

// Features holds the cosmetic feature toggles.
type Features struct {
	Animations      bool `json:"animations"`
	SidebarGlow     bool `json:"sidebarGlow"`
	Toasters        bool `json:"toasters"`
	CompactMode     bool `json:"compactMode"`
	AccentGradients bool `json:"accentGradients"`
}

// DefaultFeatures returns the toggles a fresh install starts with.
func DefaultFeatures() Features {
	return Features{
		Animations:      true,
		SidebarGlow:     true,
		Toasters:        true,
		CompactMode:     false,
		AccentGradients: true,
	}
}

// Theme holds the visual theme preference.
type Theme struct {
	Mode   string `json:"mode"`
	Accent string `json:"accent,omitempty"`
}

func DefaultTheme() Theme {
	return Theme{Mode: "light"}
}

// Layout holds the content layout preference.
type Layout struct {
	SidebarPosition string `json:"sidebarPosition"`
	ContentWidth    string `json:"contentWidth"`
}

func DefaultLayout() Layout {
	return Layout{SidebarPosition: "left", ContentWidth: "full"}
}

type UpdateType string

const (
	UpdateFeature     UpdateType = "feature"
	UpdateBugfix      UpdateType = "bugfix"
	UpdateImprovement UpdateType = "improvement"
)

// UpdateEntry is one persisted changelog item shown on the updates page.
type UpdateEntry struct {
	ID          string     `json:"id"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Changes     []string   `json:"changes,omitempty"`
	Type        UpdateType `json:"type"`
}
