package excel

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"furniture-admin-api/internal/response"
)

// SQLExporter streams the result of a configured raw query straight into
// a workbook, bypassing the entity layer. Used for reporting views whose
// rows do not map 1:1 to an entity.
type SQLExporter struct {
	db     *gorm.DB
	sqlDir string
	logger *zap.Logger
}

// NewSQLExporter creates a SQLExporter reading query files under sqlDir
func NewSQLExporter(db *gorm.DB, sqlDir string, logger *zap.Logger) *SQLExporter {
	return &SQLExporter{db: db, sqlDir: sqlDir, logger: logger}
}

// Export runs the query named by cfg.SqlFilePath and writes an optional
// title row, the configured headers, and one row per result record
func (e *SQLExporter) Export(ctx context.Context, cfg *MappingConfig) ([]byte, error) {
	query, err := e.loadQuery(cfg.SqlFilePath)
	if err != nil {
		return nil, err
	}

	f, sheet := newWorkbook(cfg)
	defer f.Close()

	if cfg.Name != "" && cfg.RowIndex > 0 {
		if err := e.writeTitle(f, sheet, cfg); err != nil {
			return nil, err
		}
	}
	writeHeader(f, sheet, cfg)

	rows, err := e.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		e.logger.Error("sql export query failed", zap.String("sql", cfg.SqlFilePath), zap.Error(err))
		return nil, response.NewInternal("sql export query failed", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, response.NewInternal("failed to read query columns", err)
	}

	rowIdx := cfg.RowIndex + 1
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, response.NewInternal("failed to scan query row", err)
		}

		for i, value := range values {
			cell, cellErr := excelize.CoordinatesToCellName(cfg.ColumnIndex+i+1, rowIdx+1)
			if cellErr != nil {
				return nil, response.NewInternal("failed to compute cell", cellErr)
			}
			if b, isBytes := value.([]byte); isBytes {
				value = string(b)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, response.NewInternal("failed to write cell", err)
			}
		}
		rowIdx++
	}
	if err := rows.Err(); err != nil {
		return nil, response.NewInternal("query iteration failed", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, response.NewInternal("failed to write workbook", err)
	}
	return buf.Bytes(), nil
}

func (e *SQLExporter) loadQuery(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(e.sqlDir, path))
	if err != nil {
		e.logger.Error("failed to read sql export file", zap.String("path", path), zap.Error(err))
		return "", response.NewInternal("failed to read sql export file", err)
	}
	query := strings.TrimSpace(string(data))
	if query == "" {
		return "", response.NewInternal("sql export file is empty", nil)
	}
	return query, nil
}

func (e *SQLExporter) writeTitle(f *excelize.File, sheet string, cfg *MappingConfig) error {
	if err := f.SetCellValue(sheet, "A1", cfg.Name); err != nil {
		return response.NewInternal("failed to write title", err)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "A1", styleID)
	}

	if len(cfg.Column) > 1 {
		end, err := excelize.CoordinatesToCellName(len(cfg.Column), 1)
		if err == nil {
			f.MergeCell(sheet, "A1", end)
		}
	}
	return nil
}
