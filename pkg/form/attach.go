package form

// Attach appends row to the tail of s and returns s, so further rows can be
// chained onto the same section.
func (s *Section) Attach(row *Row) *Section {
	s.AddRow(row)
	return s
}

// Attach combines two bare rows into a new section holding r then next.
func (r *Row) Attach(next *Row) *Section {
	return NewSection().Attach(r).Attach(next)
}

// WrapInNewSection returns a new header/footer-less section holding only row.
func WrapInNewSection(row *Row) *Section {
	return NewSection().Attach(row)
}
