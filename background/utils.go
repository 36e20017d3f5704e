package background

import (
	"strings"

	"github.com/anjith1/harvest-demand-link/schema"
)

// CommaSeparatedItems will return a string of requested item names separate by commas
func CommaSeparatedItems(items []schema.RequestItem) string {
	itemNames := make([]string, 0)

	for _, item := range items {
		itemNames = append(itemNames, item.Name)
	}

	return strings.Join(itemNames, ", ")
}
