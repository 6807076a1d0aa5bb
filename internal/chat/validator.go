package chat

import (
	"encoding/json"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ValidateExercises normalizes raw extracted exercises into validated
// records. Invalid entries are dropped, not fatal, so one bad extraction
// does not sink the whole batch.
func ValidateExercises(rawExercises []RawExercise) []Exercise {
	var exercises []Exercise
	for _, raw := range rawExercises {
		exercise, ok := validateExercise(raw)
		if !ok {
			log.Tracef("dropping invalid exercise entry: %+v", raw)
			continue
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}

func validateExercise(raw RawExercise) (Exercise, bool) {
	name := strings.ToLower(strings.TrimSpace(raw.Name))
	if name == "" {
		return Exercise{}, false
	}

	metricType := MetricType(raw.MetricType)
	if !metricType.IsValid() {
		return Exercise{}, false
	}

	metricValue, ok := toFloat(raw.MetricValue)
	if !ok || metricValue < 0 {
		return Exercise{}, false
	}

	sets, ok := toInt(raw.Sets)
	if !ok || sets < 1 {
		sets = 1
	}

	exercise := Exercise{
		Name:        name,
		Sets:        sets,
		MetricType:  metricType,
		MetricValue: metricValue,
	}

	// zero weight means "no weight", normalize it to absent
	if weight, ok := toFloat(raw.Weight); ok && weight > 0 {
		exercise.Weight = &weight
		if weightUnit := WeightUnit(raw.WeightUnit); weightUnit.IsValid() {
			exercise.WeightUnit = &weightUnit
		}
	}

	return exercise, true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt(value any) (int, bool) {
	f, ok := toFloat(value)
	if !ok {
		return 0, false
	}
	return int(f), true
}
