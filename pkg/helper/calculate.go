package helper

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(totalItems / limit). An empty result has zero pages.
func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 0
	}

	return (totalItems + limit - 1) / limit
}
