package form

// FormSnapshot is a detached, serialisable view of a Form. Tooling and golden
// tests use it; the algebra never reads it back.
type FormSnapshot struct {
	Sections []SectionSnapshot `json:"sections" yaml:"sections"`
}

// SectionSnapshot mirrors a Section.
type SectionSnapshot struct {
	Header string        `json:"header,omitempty" yaml:"header,omitempty"`
	Footer string        `json:"footer,omitempty" yaml:"footer,omitempty"`
	Rows   []RowSnapshot `json:"rows" yaml:"rows"`
}

// RowSnapshot mirrors a Row.
type RowSnapshot struct {
	Name        string            `json:"name" yaml:"name"`
	Type        string            `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Describe converts f into a FormSnapshot. A nil form yields an empty snapshot.
func Describe(f *Form) FormSnapshot {
	snapshot := FormSnapshot{Sections: []SectionSnapshot{}}
	if f == nil {
		return snapshot
	}
	for _, section := range f.sections {
		snapshot.Sections = append(snapshot.Sections, DescribeSection(section))
	}
	return snapshot
}

// DescribeSection converts a single section.
func DescribeSection(s *Section) SectionSnapshot {
	out := SectionSnapshot{Rows: []RowSnapshot{}}
	if s == nil {
		return out
	}
	out.Header = s.Header
	out.Footer = s.Footer
	for _, row := range s.rows {
		out.Rows = append(out.Rows, describeRow(row))
	}
	return out
}

func describeRow(r *Row) RowSnapshot {
	if r == nil {
		return RowSnapshot{}
	}
	out := RowSnapshot{
		Name:        r.Name,
		Type:        r.Type,
		Format:      r.Format,
		Label:       r.Label,
		Description: r.Description,
		Required:    r.Required,
	}
	if len(r.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(r.Metadata))
		for key, value := range r.Metadata {
			out.Metadata[key] = value
		}
	}
	return out
}
