package domain

// Page es una pestaña del shell de navegación.
type Page struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultPageID es la pestaña a la que cae cualquier id desconocido.
const DefaultPageID = "home"

// Pages devuelve las pestañas en el orden de la barra de navegación.
func Pages() []Page {
	return []Page{
		{ID: "home", Label: "Home"},
		{ID: "about", Label: "About"},
		{ID: "prototypes", Label: "Prototypes"},
		{ID: "publications", Label: "Research"},
		{ID: "team", Label: "Team"},
		{ID: "contact", Label: "Contact"},
	}
}

// ResolvePage busca la pestaña por id; si no existe devuelve home.
func ResolvePage(id string) Page {
	pages := Pages()
	for _, p := range pages {
		if p.ID == id {
			return p
		}
	}
	return pages[0]
}
