package database

import (
	"github.com/befit/api/internal/model"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedExerciseTypes inserts the default exercise catalogue when the table
// is empty. Safe to run on every boot; a populated table is left alone.
func SeedExerciseTypes(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&model.ExerciseType{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	types := []model.ExerciseType{
		{Name: "Bench press", Description: "Chest press on a flat bench", Muscles: pq.StringArray{"chest", "triceps"}, Equipment: datatypes.JSON([]byte(`["barbell","bench"]`))},
		{Name: "Barbell squat", Description: "Squat with the bar on the back", Muscles: pq.StringArray{"quadriceps", "glutes"}, Equipment: datatypes.JSON([]byte(`["barbell","rack"]`))},
		{Name: "Deadlift", Description: "Full-body pull from the floor", Muscles: pq.StringArray{"back", "hamstrings", "glutes"}, Equipment: datatypes.JSON([]byte(`["barbell"]`))},
		{Name: "Overhead press", Description: "Standing press over the head", Muscles: pq.StringArray{"shoulders", "triceps"}, Equipment: datatypes.JSON([]byte(`["barbell"]`))},
		{Name: "Pull-up", Description: "Bodyweight pull on the bar", Muscles: pq.StringArray{"back", "biceps"}, Equipment: datatypes.JSON([]byte(`["pull-up bar"]`))},
		{Name: "Barbell curl", Description: "Standing biceps curl", Muscles: pq.StringArray{"biceps"}, Equipment: datatypes.JSON([]byte(`["barbell"]`))},
		{Name: "French press", Description: "Lying triceps extension", Muscles: pq.StringArray{"triceps"}, Equipment: datatypes.JSON([]byte(`["barbell","bench"]`))},
		{Name: "Barbell row", Description: "Bent-over row", Muscles: pq.StringArray{"back"}, Equipment: datatypes.JSON([]byte(`["barbell"]`))},
		{Name: "Dumbbell fly", Description: "Chest fly on a flat bench", Muscles: pq.StringArray{"chest"}, Equipment: datatypes.JSON([]byte(`["dumbbells","bench"]`))},
		{Name: "Plank", Description: "Static core hold", Muscles: pq.StringArray{"core"}, Equipment: datatypes.JSON([]byte(`[]`))},
	}

	if err := db.Create(&types).Error; err != nil {
		return 0, err
	}
	return len(types), nil
}
