package tone3000

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchOptionsQueryParams(t *testing.T) {
	testCases := []struct {
		name     string
		opts     SearchOptions
		expected map[string]string
	}{
		{
			name:     "empty",
			opts:     SearchOptions{},
			expected: map[string]string{},
		},
		{
			name: "query and sort",
			opts: SearchOptions{
				Query: "plexi crunch",
				Sort:  SortPopular,
			},
			expected: map[string]string{
				"query": "plexi crunch",
				"sort":  "popular",
			},
		},
		{
			name: "gear and sizes are comma-joined",
			opts: SearchOptions{
				Gear:  []Gear{GearAmp, GearPedal},
				Sizes: []Size{SizeFeather, SizeNano},
			},
			expected: map[string]string{
				"gear":  "amp,pedal",
				"sizes": "feather,nano",
			},
		},
		{
			name: "pagination included",
			opts: SearchOptions{
				ListOptions: ListOptions{Page: 3, PageSize: 25},
				Query:       "bass",
			},
			expected: map[string]string{
				"page":      "3",
				"page_size": "25",
				"query":     "bass",
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, testCase.opts.queryParams())
		})
	}
}

func TestSearchOptionsValidate(t *testing.T) {
	require.NoError(
		t,
		SearchOptions{
			Sort:  SortNewest,
			Gear:  []Gear{GearFullRig},
			Sizes: []Size{SizeStandard},
		}.validate(),
	)
	require.Error(t, SearchOptions{Sort: Sort("loudest")}.validate())
	require.Error(t, SearchOptions{Gear: []Gear{Gear("theremin")}}.validate())
	require.Error(t, SearchOptions{Sizes: []Size{Size("jumbo")}}.validate())
}
