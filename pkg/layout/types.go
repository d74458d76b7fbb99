package layout

// RowSpec declares a row. Name defaults to the map key.
type RowSpec struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string            `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SectionSpec declares a section. Rows lists row names attached, in order,
// whenever the section is instantiated.
type SectionSpec struct {
	Header string   `json:"header,omitempty" yaml:"header,omitempty"`
	Footer string   `json:"footer,omitempty" yaml:"footer,omitempty"`
	Rows   []string `json:"rows,omitempty" yaml:"rows,omitempty"`
}

type documentFile struct {
	Rows     map[string]RowSpec     `json:"rows" yaml:"rows"`
	Sections map[string]SectionSpec `json:"sections" yaml:"sections"`
	Form     string                 `json:"form" yaml:"form"`
}
