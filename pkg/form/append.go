package form

// Append adds section to the tail of f and returns f.
func (f *Form) Append(section *Section) *Form {
	f.AddSection(section)
	return f
}

// AppendRow wraps row in a new section and appends that section to f.
func (f *Form) AppendRow(row *Row) *Form {
	return f.Append(WrapInNewSection(row))
}

// Append combines two sections into a new form holding s then next.
func (s *Section) Append(next *Section) *Form {
	return NewForm().Append(s).Append(next)
}

// AppendRow wraps row in a new section and combines s with it into a new form.
func (s *Section) AppendRow(row *Row) *Form {
	return s.Append(WrapInNewSection(row))
}

// Append wraps r and next in sections of their own and combines them into a
// new form.
func (r *Row) Append(next *Row) *Form {
	return WrapInNewSection(r).Append(WrapInNewSection(next))
}

// WrapInNewForm returns a new form holding only section.
func WrapInNewForm(section *Section) *Form {
	return NewForm().Append(section)
}
