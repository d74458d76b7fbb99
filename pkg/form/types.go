package form

// Kind identifies which level of the tree a descriptor belongs to.
type Kind int

const (
	KindRow Kind = iota + 1
	KindSection
	KindForm
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindSection:
		return "section"
	case KindForm:
		return "form"
	default:
		return "unknown"
	}
}

// Node is the closed set of descriptors: *Form, *Section and *Row. The
// unexported marker keeps other packages from adding kinds.
type Node interface {
	Kind() Kind
	node()
}

var (
	_ Node = (*Row)(nil)
	_ Node = (*Section)(nil)
	_ Node = (*Form)(nil)
)

// Row describes a single field. Its fields are opaque to the algebra and are
// only carried along for the rendering side.
type Row struct {
	Name        string
	Type        string
	Format      string
	Label       string
	Description string
	Required    bool
	Metadata    map[string]string
}

// RowOption configures a Row at construction time.
type RowOption func(*Row)

// WithType sets the field type hint.
func WithType(fieldType string) RowOption {
	return func(r *Row) {
		r.Type = fieldType
	}
}

// WithFormat sets the field format hint (email, date-time, ...).
func WithFormat(format string) RowOption {
	return func(r *Row) {
		r.Format = format
	}
}

// WithLabel sets the display label.
func WithLabel(label string) RowOption {
	return func(r *Row) {
		r.Label = label
	}
}

// WithDescription sets the help text.
func WithDescription(description string) RowOption {
	return func(r *Row) {
		r.Description = description
	}
}

// Required marks the row as required.
func Required() RowOption {
	return func(r *Row) {
		r.Required = true
	}
}

// WithMetadata merges the provided key/value pairs into the row metadata.
func WithMetadata(metadata map[string]string) RowOption {
	return func(r *Row) {
		if len(metadata) == 0 {
			return
		}
		if r.Metadata == nil {
			r.Metadata = make(map[string]string, len(metadata))
		}
		for key, value := range metadata {
			r.Metadata[key] = value
		}
	}
}

// NewRow returns a Row named name.
func NewRow(name string, options ...RowOption) *Row {
	row := &Row{Name: name}
	for _, opt := range options {
		if opt != nil {
			opt(row)
		}
	}
	return row
}

// Kind implements Node.
func (*Row) Kind() Kind { return KindRow }
func (*Row) node() {}

// Section groups rows under optional header and footer text.
type Section struct {
	Header string
	Footer string
	rows   []*Row
}

// SectionOption configures a Section at construction time.
type SectionOption func(*Section)

// WithHeader sets the section header.
func WithHeader(header string) SectionOption {
	return func(s *Section) {
		s.Header = header
	}
}

// WithFooter sets the section footer.
func WithFooter(footer string) SectionOption {
	return func(s *Section) {
		s.Footer = footer
	}
}

// NewSection returns an empty Section.
func NewSection(options ...SectionOption) *Section {
	section := &Section{}
	for _, opt := range options {
		if opt != nil {
			opt(section)
		}
	}
	return section
}

// AddRow appends row at the tail of the section.
func (s *Section) AddRow(row *Row) {
	s.rows = append(s.rows, row)
}

// Rows returns the rows in display order. The slice aliases the section's
// storage and must not be modified.
func (s *Section) Rows() []*Row {
	return s.rows
}

// Len reports the number of rows.
func (s *Section) Len() int {
	return len(s.rows)
}

// Kind implements Node.
func (*Section) Kind() Kind { return KindSection }
func (*Section) node() {}

// Form is the top-level container: an ordered list of sections.
type Form struct {
	sections []*Section
}

// NewForm returns an empty Form.
func NewForm() *Form {
	return &Form{}
}

// AddSection appends section at the tail of the form.
func (f *Form) AddSection(section *Section) {
	f.sections = append(f.sections, section)
}

// Sections returns the sections in display order. The slice aliases the form's
// storage and must not be modified.
func (f *Form) Sections() []*Section {
	return f.sections
}

// Len reports the number of sections.
func (f *Form) Len() int {
	return len(f.sections)
}

// Kind implements Node.
func (*Form) Kind() Kind { return KindForm }
func (*Form) node() {}
