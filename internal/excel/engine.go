package excel

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"furniture-admin-api/internal/response"
)

const resultHeader = "Result"

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]+$`)
)

// dateLayouts tried in order when a column has no explicit format
var dateLayouts = []string{"2006-01-02", time.RFC3339, "1/2/2006", "2006-01-02 15:04:05"}

// ImportDeps wires the entity-specific collaborators into the generic
// import pipeline
type ImportDeps[T any] struct {
	Config    *MappingConfig
	Fields    FieldMap[T]
	NewEntity func() *T

	// ExistsByField probes the store for a row already carrying the value;
	// backs the unique column rule
	ExistsByField func(ctx context.Context, field string, value any) (bool, error)

	// ValidateEntity is the optional cross-field hook run after the column
	// rules; a non-empty return is appended to the row's error message
	ValidateEntity func(entity *T) string

	Save   func(ctx context.Context, entity *T) error
	Logger *zap.Logger
}

type importRow[T any] struct {
	rowIdx int
	entity *T
	errs   string
}

// Import runs the whole pipeline over an uploaded workbook: parse rows
// into entities through the accessor table, validate each against the
// column rules, persist the clean ones, and return the original sheet
// annotated with a Result column. Row-level failures are reported in-band;
// only a structurally broken file is an error.
func Import[T any](ctx context.Context, deps ImportDeps[T], data []byte) ([]byte, error) {
	cfg := deps.Config

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, response.NewMalformedFile("unable to read workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, response.NewMalformedFile("workbook has no sheets", nil)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, response.NewMalformedFile("unable to read sheet rows", err)
	}

	// Nothing below the header: hand back a blank template instead
	if len(rows) <= cfg.RowIndex+1 {
		deps.Logger.Info("no data rows found in uploaded file", zap.String("config", cfg.Name))
		return Template(cfg)
	}

	if cfg.RowIndex >= len(rows) {
		return nil, response.NewMalformedFile("header row not found", nil)
	}
	headerRow := rows[cfg.RowIndex]

	// Index the sheet's actual header labels so columns may be reordered
	headerToIndex := make(map[string]int, len(headerRow))
	for i := cfg.ColumnIndex; i < len(headerRow); i++ {
		if label := strings.TrimSpace(headerRow[i]); label != "" {
			headerToIndex[label] = i
		}
	}

	var results []importRow[T]
	for rowIdx := cfg.RowIndex + 1; rowIdx < len(rows); rowIdx++ {
		entity, typeErrors, ok := populateRow(deps, rows[rowIdx], headerToIndex, rowIdx)
		if !ok {
			continue
		}

		errs := validateRow(ctx, deps, entity, typeErrors)
		results = append(results, importRow[T]{rowIdx: rowIdx, entity: entity, errs: errs})
	}

	for _, row := range results {
		if row.errs != "" {
			continue
		}
		if err := deps.Save(ctx, row.entity); err != nil {
			deps.Logger.Error("failed to persist imported row",
				zap.Int("row", row.rowIdx+1), zap.Error(err))
			return nil, err
		}
	}

	if err := annotateResults(f, sheet, cfg, headerRow, results); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, response.NewInternal("failed to write result workbook", err)
	}
	return buf.Bytes(), nil
}

// populateRow builds one entity from a sheet row. A panic while setting
// fields skips the row entirely; cell values that fail conversion leave
// the field unset and surface later as type errors.
func populateRow[T any](deps ImportDeps[T], row []string, headerToIndex map[string]int, rowIdx int) (entity *T, typeErrors map[string]string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			deps.Logger.Error("skipping malformed row",
				zap.Int("row", rowIdx+1), zap.Any("panic", r))
			entity, typeErrors, ok = nil, nil, false
		}
	}()

	entity = deps.NewEntity()
	typeErrors = make(map[string]string)

	for _, mapping := range deps.Config.Column {
		colIdx, found := headerToIndex[mapping.HeaderExcel]
		if !found {
			deps.Logger.Warn("column not found in uploaded file headers",
				zap.String("header", mapping.HeaderExcel))
			continue
		}
		if colIdx >= len(row) {
			continue
		}
		raw := strings.TrimSpace(row[colIdx])
		if raw == "" {
			continue
		}

		accessor, known := deps.Fields[mapping.Field]
		if !known {
			deps.Logger.Warn("no accessor registered for configured field",
				zap.String("field", mapping.Field))
			continue
		}

		value, err := convertCell(raw, mapping)
		if err != nil {
			deps.Logger.Warn("cell value does not match column type",
				zap.Int("row", rowIdx+1), zap.String("field", mapping.Field),
				zap.String("value", raw), zap.Error(err))
			typeErrors[mapping.Field] = typeErrorMessage(mapping)
			continue
		}

		if err := accessor.Set(entity, value); err != nil {
			deps.Logger.Warn("failed to assign cell value",
				zap.Int("row", rowIdx+1), zap.String("field", mapping.Field), zap.Error(err))
			typeErrors[mapping.Field] = typeErrorMessage(mapping)
		}
	}

	return entity, typeErrors, true
}

// validateRow applies the column rules in order (required, type, unique,
// regex) and then the custom hook, accumulating every failure into one
// message rather than stopping at the first
func validateRow[T any](ctx context.Context, deps ImportDeps[T], entity *T, typeErrors map[string]string) string {
	var sb strings.Builder

	for _, mapping := range deps.Config.Column {
		accessor, known := deps.Fields[mapping.Field]
		if !known {
			continue
		}
		value := accessor.Get(entity)

		if mapping.Required && isEmpty(value) {
			fmt.Fprintf(&sb, "%s is required. ", mapping.HeaderExcel)
			continue
		}

		if msg, failed := typeErrors[mapping.Field]; failed {
			sb.WriteString(msg)
		}

		if isEmpty(value) {
			continue
		}

		if s, isString := value.(string); isString {
			switch mapping.Type {
			case FieldEmail:
				if !emailPattern.MatchString(s) {
					fmt.Fprintf(&sb, "%s must be a valid email address. ", mapping.HeaderExcel)
				}
			case FieldPhone:
				if !phonePattern.MatchString(s) {
					fmt.Fprintf(&sb, "%s must be a valid phone number. ", mapping.HeaderExcel)
				}
			}
		}

		if mapping.Unique {
			exists, err := deps.ExistsByField(ctx, mapping.Field, value)
			if err != nil {
				deps.Logger.Warn("could not probe unique field",
					zap.String("field", mapping.Field), zap.Error(err))
			} else if exists {
				fmt.Fprintf(&sb, "%s already exists. ", mapping.Field)
			}
		}

		if mapping.Regex != "" {
			if s, isString := value.(string); isString {
				re, err := regexp.Compile(mapping.Regex)
				if err != nil {
					deps.Logger.Warn("invalid regex in mapping config",
						zap.String("field", mapping.Field), zap.Error(err))
				} else if !re.MatchString(s) {
					if mapping.RegexErrorMessage != "" {
						sb.WriteString(mapping.RegexErrorMessage + " ")
					} else {
						fmt.Fprintf(&sb, "%s has invalid format. ", mapping.HeaderExcel)
					}
				}
			}
		}
	}

	if deps.ValidateEntity != nil {
		if custom := deps.ValidateEntity(entity); custom != "" {
			sb.WriteString(custom)
		}
	}

	return strings.TrimSpace(sb.String())
}

// annotateResults appends the Result column to the uploaded sheet
func annotateResults[T any](f *excelize.File, sheet string, cfg *MappingConfig, headerRow []string, results []importRow[T]) error {
	resultCol := len(headerRow)

	cell, err := excelize.CoordinatesToCellName(resultCol+1, cfg.RowIndex+1)
	if err != nil {
		return response.NewInternal("failed to compute result cell", err)
	}
	if err := f.SetCellValue(sheet, cell, resultHeader); err != nil {
		return response.NewInternal("failed to write result header", err)
	}

	for _, row := range results {
		cell, err := excelize.CoordinatesToCellName(resultCol+1, row.rowIdx+1)
		if err != nil {
			return response.NewInternal("failed to compute result cell", err)
		}
		message := "Success"
		if row.errs != "" {
			message = row.errs
		}
		if err := f.SetCellValue(sheet, cell, message); err != nil {
			return response.NewInternal("failed to write result cell", err)
		}
	}
	return nil
}

// Export writes one row per entity using the column mappings in reverse
// (field to cell), honoring each column's date format
func Export[T any](cfg *MappingConfig, fields FieldMap[T], entities []*T, logger *zap.Logger) ([]byte, error) {
	f, sheet := newWorkbook(cfg)
	defer f.Close()

	writeHeader(f, sheet, cfg)

	rowIdx := cfg.RowIndex + 1
	for _, entity := range entities {
		colIdx := cfg.ColumnIndex
		for _, mapping := range cfg.Column {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, response.NewInternal("failed to compute cell", err)
			}
			colIdx++

			accessor, known := fields[mapping.Field]
			if !known {
				logger.Warn("no accessor registered for configured field",
					zap.String("field", mapping.Field))
				continue
			}
			value := accessor.Get(entity)
			if value == nil {
				continue
			}
			if err := f.SetCellValue(sheet, cell, formatValue(value, mapping)); err != nil {
				return nil, response.NewInternal("failed to write cell", err)
			}
		}
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, response.NewInternal("failed to write workbook", err)
	}
	return buf.Bytes(), nil
}

// Template produces a workbook holding only the configured header row
func Template(cfg *MappingConfig) ([]byte, error) {
	f, sheet := newWorkbook(cfg)
	defer f.Close()

	writeHeader(f, sheet, cfg)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, response.NewInternal("failed to write template", err)
	}
	return buf.Bytes(), nil
}

func newWorkbook(cfg *MappingConfig) (*excelize.File, string) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	if cfg.Name != "" {
		f.SetSheetName(sheet, cfg.Name)
		sheet = cfg.Name
	}
	return f, sheet
}

func writeHeader(f *excelize.File, sheet string, cfg *MappingConfig) {
	colIdx := cfg.ColumnIndex
	for _, mapping := range cfg.Column {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, cfg.RowIndex+1)
		if err == nil {
			f.SetCellValue(sheet, cell, mapping.HeaderExcel)
		}
		colIdx++
	}
}

// convertCell turns the raw cell text into the column's semantic type
func convertCell(raw string, mapping ColumnMapping) (any, error) {
	switch mapping.Type {
	case FieldNumber:
		return strconv.ParseFloat(raw, 64)
	case FieldBoolean:
		return strconv.ParseBool(strings.ToLower(raw))
	case FieldDate:
		if mapping.Format != "" {
			if t, err := time.Parse(mapping.Format, raw); err == nil {
				return t, nil
			}
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("unparsable date %q", raw)
	default:
		// STRING, EMAIL and PHONE stay trimmed strings
		return raw, nil
	}
}

func typeErrorMessage(mapping ColumnMapping) string {
	switch mapping.Type {
	case FieldNumber:
		return fmt.Sprintf("%s must be a number. ", mapping.HeaderExcel)
	case FieldBoolean:
		return fmt.Sprintf("%s must be true or false. ", mapping.HeaderExcel)
	case FieldDate:
		return fmt.Sprintf("%s must be a valid date. ", mapping.HeaderExcel)
	default:
		return fmt.Sprintf("%s must be text. ", mapping.HeaderExcel)
	}
}

func formatValue(value any, mapping ColumnMapping) any {
	if t, isTime := value.(time.Time); isTime {
		layout := mapping.Format
		if layout == "" {
			layout = "2006-01-02"
		}
		return t.Format(layout)
	}
	return value
}

// isEmpty treats nil and blank strings as absent. Accessors return nil
// (not a typed nil pointer) for unset optional fields.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
