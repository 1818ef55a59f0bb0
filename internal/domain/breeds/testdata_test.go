package breeds

func sampleBreeds() []Breed {
	return []Breed{
		{ID: "abys", Name: "Abyssinian", Origin: "Egypt", LifeSpan: "14 - 15", Weight: Weight{Metric: "3 - 5"}, Temperament: "Active, Energetic, Independent", EnergyLevel: 5, Grooming: 1, ChildFriendly: 3},
		{ID: "beng", Name: "Bengal", Origin: "United States", LifeSpan: "12 - 15", Weight: Weight{Metric: "3 - 7"}, Temperament: "Alert, Agile, Energetic", EnergyLevel: 5, Grooming: 1, ChildFriendly: 4},
		{ID: "pers", Name: "Persian", Origin: "Iran (Persia)", LifeSpan: "14 - 15", Weight: Weight{Metric: "4 - 6"}, Temperament: "Affectionate, Loyal, Calm", EnergyLevel: 1, Grooming: 5, ChildFriendly: 2, Coat: "Long"},
		{ID: "mcoo", Name: "Maine Coon", Origin: "United States", LifeSpan: "12 - 15", Weight: Weight{Metric: "5 - 8"}, Temperament: "Adaptable, Intelligent, Loving", EnergyLevel: 3, Grooming: 3, ChildFriendly: 4, Coat: "Long"},
		{ID: "xxxx", Name: "Mystery", LifeSpan: "unknown"},
	}
}
