package breeds

// ComputeStats es pura e independiente del orden. Lista vacía => promedios "0.0".
func ComputeStats(list []Breed) Stats {
	total := len(list)

	var lifeSum, weightSum float64
	origins := make(map[string]struct{})
	for _, b := range list {
		lifeSum += float64(LifeSpanLowerBound(b))
		weightSum += WeightLowerBound(b)
		if b.Origin != "" {
			origins[b.Origin] = struct{}{}
		}
	}

	var avgLife, avgWeight float64
	if total > 0 {
		avgLife = lifeSum / float64(total)
		avgWeight = weightSum / float64(total)
	}

	return Stats{
		TotalBreeds:   total,
		AvgLifeSpan:   formatOneDecimal(avgLife),
		AvgWeight:     formatOneDecimal(avgWeight),
		UniqueOrigins: len(origins),
	}
}
