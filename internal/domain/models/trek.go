package models

// Trek is the catalogue entry a booking points at by slug.
type Trek struct {
	Slug       string
	Name       string
	Region     string
	Difficulty string
	Duration   string
}

// Slot is a dated departure of a trek with finite capacity.
type Slot struct {
	ID       string
	TrekSlug string
	Date     string
	Capacity int
	Booked   int
}

// Available never goes negative, even for overbooked slots.
func (s Slot) Available() int {
	if n := s.Capacity - s.Booked; n > 0 {
		return n
	}
	return 0
}
