package models

type Course struct {
	Abbreviation string
	Name         string
	Sections     []string
}

type CourseOption struct {
	Value string
	Label string
}

// Catalog is read-only once built.
type Catalog struct {
	courses map[string]Course
	order   []string
}

func NewCatalog(courses []Course) Catalog {
	catalog := Catalog{
		courses: map[string]Course{},
		order:   []string{},
	}

	for _, course := range courses {
		if _, ok := catalog.courses[course.Abbreviation]; !ok {
			catalog.order = append(catalog.order, course.Abbreviation)
		}
		catalog.courses[course.Abbreviation] = course
	}

	return catalog
}

func (catalog Catalog) Len() int {
	return len(catalog.order)
}

func (catalog Catalog) Lookup(abbreviation string) (Course, bool) {
	course, ok := catalog.courses[abbreviation]
	return course, ok
}

// FullName falls back to the abbreviation for unknown courses.
func (catalog Catalog) FullName(abbreviation string) string {
	course, ok := catalog.Lookup(abbreviation)
	if !ok || course.Name == "" {
		return abbreviation
	}
	return course.Name
}

// Options lists every course section in catalog order.
func (catalog Catalog) Options() []CourseOption {
	options := []CourseOption{}

	for _, abbreviation := range catalog.order {
		course := catalog.courses[abbreviation]
		for _, section := range course.Sections {
			key := CourseKey(course.Abbreviation, section)
			options = append(options, CourseOption{
				Value: key,
				Label: catalog.FullName(abbreviation) + " (" + key + ")",
			})
		}
	}

	return options
}
