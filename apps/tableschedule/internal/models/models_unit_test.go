package models_test

import (
	"testing"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDayOrdinal(t *testing.T) {
	assert.Equal(t, 0, models.DayOrdinal("Mon"))
	assert.Equal(t, 0, models.DayOrdinal("Monday"))
	assert.Equal(t, 2, models.DayOrdinal("Wed"))
	assert.Equal(t, 4, models.DayOrdinal("Friday"))
	assert.Equal(t, 6, models.DayOrdinal("Sun"))
	assert.Equal(t, 7, models.DayOrdinal(""))
	assert.Equal(t, 7, models.DayOrdinal("Mo"))
	assert.Equal(t, 7, models.DayOrdinal("monday"))
	assert.Equal(t, 7, models.DayOrdinal("Holiday"))
}

func TestCatalog(t *testing.T) {
	catalog := models.NewCatalog([]models.Course{
		{Abbreviation: "MFS", Name: "Managerial Finance", Sections: []string{"A", "B"}},
		{Abbreviation: "ET", Name: "", Sections: []string{"B"}},
	})

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, "Managerial Finance", catalog.FullName("MFS"))
	assert.Equal(t, "ET", catalog.FullName("ET"))
	assert.Equal(t, "XYZ", catalog.FullName("XYZ"))

	_, ok := catalog.Lookup("XYZ")
	assert.False(t, ok)

	options := catalog.Options()
	assert.Equal(t, []models.CourseOption{
		{Value: "MFS - A", Label: "Managerial Finance (MFS - A)"},
		{Value: "MFS - B", Label: "Managerial Finance (MFS - B)"},
		{Value: "ET - B", Label: "ET (ET - B)"},
	}, options)
}

func TestSelectionSet(t *testing.T) {
	set := models.NewSelectionSet("MFS - A", " ", "", " ET - B ", "MFS - A")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("MFS - A"))
	assert.True(t, set.Contains("ET - B"))
	assert.False(t, set.Contains("MFS"))
	assert.False(t, set.Contains(""))
}

func TestScheduleEntryKey(t *testing.T) {
	//nolint:exhaustruct //only identity fields matter
	entry := models.ScheduleEntry{Course: "BRM", Section: "Exc"}
	assert.Equal(t, "BRM - Exc", entry.Key())
}
