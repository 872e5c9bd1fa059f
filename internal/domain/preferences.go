package domain

// Claves del almacenamiento local heredadas del sitio. No tienen versionado.
const (
	KeyUserProfile           = "aac-user-profile"
	KeyHighContrast          = "highContrast"
	KeyLargeText             = "largeText"
	KeyAccessibilityExpanded = "accessibilityExpanded"
)

// Preferences son los flags de accesibilidad del panel lateral.
type Preferences struct {
	HighContrast          bool `json:"high_contrast"`
	LargeText             bool `json:"large_text"`
	AccessibilityExpanded bool `json:"accessibility_expanded"`
}

// BodyClasses devuelve las clases CSS que el shell aplica al <body>.
func (p Preferences) BodyClasses() []string {
	classes := []string{}
	if p.HighContrast {
		classes = append(classes, "high-contrast")
	}
	if p.LargeText {
		classes = append(classes, "large-text")
	}
	return classes
}

// PreferencesPatch permite actualizar flags sueltos.
type PreferencesPatch struct {
	HighContrast          *bool `json:"high_contrast"`
	LargeText             *bool `json:"large_text"`
	AccessibilityExpanded *bool `json:"accessibility_expanded"`
}

// Apply devuelve una copia con los campos presentes en el patch.
func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	if patch.HighContrast != nil {
		p.HighContrast = *patch.HighContrast
	}
	if patch.LargeText != nil {
		p.LargeText = *patch.LargeText
	}
	if patch.AccessibilityExpanded != nil {
		p.AccessibilityExpanded = *patch.AccessibilityExpanded
	}
	return p
}
