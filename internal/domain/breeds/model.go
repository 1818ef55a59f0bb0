package breeds

// Weight trae los rangos como texto, tal cual los entrega la API ("3 - 5").
type Weight struct {
	Imperial string `json:"imperial,omitempty"`
	Metric   string `json:"metric,omitempty"`
}

// Image es la imagen de referencia embebida en el listado o devuelta por /images/search.
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Breed representa una raza del catálogo remoto. Es de solo lectura una vez obtenida.
type Breed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin,omitempty"` // puede faltar
	CountryCode string `json:"country_code,omitempty"`
	LifeSpan    string `json:"life_span,omitempty"` // "12 - 15"
	Weight      Weight `json:"weight"`
	Temperament string `json:"temperament,omitempty"` // "Active, Energetic, Independent"
	Coat        string `json:"coat,omitempty"`
	Description string `json:"description,omitempty"`
	AltNames    string `json:"alt_names,omitempty"`

	WikipediaURL     string `json:"wikipedia_url,omitempty"`
	ReferenceImageID string `json:"reference_image_id,omitempty"`
	Image            *Image `json:"image,omitempty"`

	// Niveles 1..5
	Adaptability     int `json:"adaptability,omitempty"`
	AffectionLevel   int `json:"affection_level,omitempty"`
	ChildFriendly    int `json:"child_friendly,omitempty"`
	DogFriendly      int `json:"dog_friendly,omitempty"`
	EnergyLevel      int `json:"energy_level,omitempty"`
	Grooming         int `json:"grooming,omitempty"`
	HealthIssues     int `json:"health_issues,omitempty"`
	Intelligence     int `json:"intelligence,omitempty"`
	SheddingLevel    int `json:"shedding_level,omitempty"`
	SocialNeeds      int `json:"social_needs,omitempty"`
	StrangerFriendly int `json:"stranger_friendly,omitempty"`
	Vocalisation     int `json:"vocalisation,omitempty"`

	// Flags 0/1
	Indoor         int `json:"indoor,omitempty"`
	Lap            int `json:"lap,omitempty"`
	Hypoallergenic int `json:"hypoallergenic,omitempty"`
	Rare           int `json:"rare,omitempty"`
}

// Stats se recalcula cada vez que cambia la lista completa.
// Los promedios van formateados con un decimal ("13.0").
type Stats struct {
	TotalBreeds   int    `json:"totalBreeds"`
	AvgLifeSpan   string `json:"avgLifeSpan"`
	AvgWeight     string `json:"avgWeight"`
	UniqueOrigins int    `json:"uniqueOrigins"`
}
