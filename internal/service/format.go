package service

import (
	"fmt"
	"math"

	"site-analytics-service/internal/model"
)

func period(days int) string { return fmt.Sprintf("%dd", days) }

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

// percent converts a proportion in [0,1] to a percentage rounded to places.
func percent(v float64, places int) float64 {
	return roundTo(v*100, places)
}

// formatReportDate turns the raw 8-digit YYYYMMDD date dimension into
// YYYY-MM-DD. Anything else passes through unchanged.
func formatReportDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	return raw[:4] + "-" + raw[4:6] + "-" + raw[6:8]
}

// pointsFromRows maps single-dimension rows onto the uniform point shape,
// preserving upstream order.
func pointsFromRows(rows []model.Row, dimension, metric string) []model.Point {
	points := make([]model.Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, model.Point{
			X: row.Dimension(dimension),
			Y: row.Metric(metric).Int(),
		})
	}
	return points
}
