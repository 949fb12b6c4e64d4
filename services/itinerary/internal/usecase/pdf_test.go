package usecase

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"itinera/services/itinerary/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentWithDays(n int) entity.ItineraryContent {
	c := entity.ItineraryContent{
		Cover: entity.Cover{Title: "Kyoto Secrets", Destination: "Kyoto", Description: "Quiet temples, loud izakayas"},
	}
	for i := 0; i < n; i++ {
		c.DailyItinerary = append(c.DailyItinerary, entity.Day{
			DayNumber: i + 1,
			Title:     fmt.Sprintf("Day plan %d", i+1),
			Morning:   "Temple walk",
			Afternoon: "Tea ceremony",
			Evening:   "Pontocho alley",
			Activities: []entity.Activity{
				{Time: "09:00", Name: "Kiyomizu-dera", Location: "Higashiyama", Description: "Arrive before the crowds"},
			},
		})
	}
	return c
}

func TestRenderPDF_PreviewTruncatesDays(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5} {
		t.Run(fmt.Sprintf("%d days", n), func(t *testing.T) {
			data, summary, err := RenderPDF(contentWithDays(n), ExportMeta{Title: "Kyoto Secrets"}, false)
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
			assert.True(t, summary.Watermarked)
			assert.Equal(t, summary.Pages, summary.WatermarkedPages)
			assert.Equal(t, min(n, 2), summary.DaysRendered)

			if n > 2 {
				assert.Equal(t, n-2, summary.DaysOmitted)
				assert.Equal(t, fmt.Sprintf("%d more day(s) available after purchase", n-2), summary.Notice)
			} else {
				assert.Equal(t, 0, summary.DaysOmitted)
				assert.Empty(t, summary.Notice)
			}
		})
	}
}

func TestRenderPDF_PurchasedRendersEverything(t *testing.T) {
	data, summary, err := RenderPDF(contentWithDays(7), ExportMeta{
		Title:        "Kyoto Secrets",
		CreatorName:  "Aiko",
		Price:        1500,
		DurationDays: 7,
		LinkURL:      "https://itinera.example/itineraries/it-1",
	}, true)
	require.NoError(t, err)

	assert.NotEmpty(t, data)
	assert.False(t, summary.Watermarked)
	assert.Zero(t, summary.WatermarkedPages)
	assert.Equal(t, 7, summary.DaysRendered)
	assert.Equal(t, 0, summary.DaysOmitted)
	assert.Empty(t, summary.Notice)
	assert.GreaterOrEqual(t, summary.Pages, 1)
}

func TestRenderPDF_LongGuideSpansPages(t *testing.T) {
	_, summary, err := RenderPDF(contentWithDays(30), ExportMeta{}, true)
	require.NoError(t, err)
	assert.Greater(t, summary.Pages, 1)
}

func TestRenderPDF_PreviewWatermarksEveryPage(t *testing.T) {
	c := contentWithDays(30)
	c.Cover.Description = strings.Repeat("Quiet temples at dawn, loud izakayas after dark. ", 400)

	_, summary, err := RenderPDF(c, ExportMeta{}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DaysRendered)
	assert.Equal(t, 28, summary.DaysOmitted)
	assert.Greater(t, summary.Pages, 1)
	assert.Equal(t, summary.Pages, summary.WatermarkedPages)
}

func TestRenderPDF_NonLatinText(t *testing.T) {
	c := contentWithDays(1)
	c.Cover.Title = "Café crème à Paris"
	_, _, err := RenderPDF(c, ExportMeta{}, false)
	assert.NoError(t, err)
}

func TestMetadataLines(t *testing.T) {
	c := entity.ItineraryContent{Cover: entity.Cover{Duration: "5 nights"}}

	lines := metadataLines(c, ExportMeta{Price: 12.5, CreatorName: "Marc"}, "Paris")
	assert.Equal(t, []string{"Destination: Paris", "Duration: 5 nights", "Price: 12.50", "Created by: Marc"}, lines)

	lines = metadataLines(c, ExportMeta{DurationDays: 3}, "")
	assert.Equal(t, []string{"Duration: 3 days", "Price: 0.00"}, lines)
}
