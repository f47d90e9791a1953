package excel

// FieldType is the semantic type of a mapped spreadsheet column
type FieldType string

const (
	FieldString  FieldType = "STRING"
	FieldNumber  FieldType = "NUMBER"
	FieldDate    FieldType = "DATE"
	FieldBoolean FieldType = "BOOLEAN"
	FieldEmail   FieldType = "EMAIL"
	FieldPhone   FieldType = "PHONE"
)

// ColumnMapping binds one spreadsheet column to one entity field.
// HeaderExcel is matched against the sheet's actual header row, so columns
// may be reordered in uploaded files as long as the labels are intact.
type ColumnMapping struct {
	HeaderExcel       string    `json:"headerExcel"`
	Field             string    `json:"field"`
	Required          bool      `json:"required"`
	Unique            bool      `json:"unique"`
	Multiple          bool      `json:"multiple"`
	Type              FieldType `json:"type"`
	Format            string    `json:"format,omitempty"`
	Regex             string    `json:"regex,omitempty"`
	RegexErrorMessage string    `json:"regexErrorMessage,omitempty"`
}

// MappingConfig describes one entity's import/export sheet layout.
// RowIndex/ColumnIndex locate the header (0-based). When SqlFilePath is
// set, export bypasses the entity layer and streams the query result.
type MappingConfig struct {
	Name        string          `json:"name"`
	RowIndex    int             `json:"rowIndex"`
	ColumnIndex int             `json:"columnIndex"`
	SqlFilePath string          `json:"sqlFilePath,omitempty"`
	Column      []ColumnMapping `json:"column"`
}
