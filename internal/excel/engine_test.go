package excel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"furniture-admin-api/internal/response"
)

type member struct {
	Name   string
	Email  string
	Age    *int
	Joined *time.Time
}

func memberFields() FieldMap[member] {
	return FieldMap[member]{
		"name": {
			Get: func(m *member) any { return m.Name },
			Set: func(m *member, v any) error { m.Name = v.(string); return nil },
		},
		"email": {
			Get: func(m *member) any { return m.Email },
			Set: func(m *member, v any) error { m.Email = v.(string); return nil },
		},
		"age": {
			Get: func(m *member) any {
				if m.Age == nil {
					return nil
				}
				return *m.Age
			},
			Set: func(m *member, v any) error {
				age := int(v.(float64))
				m.Age = &age
				return nil
			},
		},
		"joined": {
			Get: func(m *member) any {
				if m.Joined == nil {
					return nil
				}
				return *m.Joined
			},
			Set: func(m *member, v any) error {
				t := v.(time.Time)
				m.Joined = &t
				return nil
			},
		},
	}
}

func memberConfig() *MappingConfig {
	return &MappingConfig{
		Name:        "Members",
		RowIndex:    0,
		ColumnIndex: 0,
		Column: []ColumnMapping{
			{HeaderExcel: "Name", Field: "name", Required: true, Type: FieldString},
			{HeaderExcel: "Email", Field: "email", Required: true, Type: FieldEmail},
			{HeaderExcel: "Age", Field: "age", Type: FieldNumber},
			{HeaderExcel: "Joined", Field: "joined", Type: FieldDate, Format: "02/01/2006"},
		},
	}
}

// buildWorkbook produces xlsx bytes with the given header and data rows
func buildWorkbook(t *testing.T, header []string, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, label := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			t.Fatalf("write header: %v", err)
		}
	}
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("write cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open result workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	if err != nil {
		t.Fatalf("read result rows: %v", err)
	}
	return rows
}

func memberDeps(saved *[]*member, existing map[string]bool) ImportDeps[member] {
	return ImportDeps[member]{
		Config:    memberConfig(),
		Fields:    memberFields(),
		NewEntity: func() *member { return new(member) },
		ExistsByField: func(ctx context.Context, field string, value any) (bool, error) {
			if existing == nil {
				return false, nil
			}
			key := fmt.Sprintf("%s=%v", field, value)
			return existing[key], nil
		},
		Save: func(ctx context.Context, m *member) error {
			*saved = append(*saved, m)
			return nil
		},
		Logger: zap.NewNop(),
	}
}

func TestImport_MixedRows(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Email", "Age", "Joined"},
		[][]string{
			{"Alice", "alice@example.com", "30", "01/02/1995"},
			{"", "bob@example.com", "20", ""},
			{"Carol", "not-an-email", "40", ""},
		})

	var saved []*member
	out, err := Import(context.Background(), memberDeps(&saved, nil), data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if len(saved) != 1 {
		t.Fatalf("persisted %d rows, want 1", len(saved))
	}
	got := saved[0]
	if got.Name != "Alice" || got.Email != "alice@example.com" {
		t.Errorf("saved = %+v", got)
	}
	if got.Age == nil || *got.Age != 30 {
		t.Errorf("age = %v, want 30", got.Age)
	}
	if got.Joined == nil || got.Joined.Format("2006-01-02") != "1995-02-01" {
		t.Errorf("joined = %v, want 1995-02-01", got.Joined)
	}

	rows := readRows(t, out)
	if len(rows) != 4 {
		t.Fatalf("result has %d rows, want 4", len(rows))
	}
	if rows[0][4] != "Result" {
		t.Errorf("result header = %q, want Result", rows[0][4])
	}
	if rows[1][4] != "Success" {
		t.Errorf("row 1 result = %q, want Success", rows[1][4])
	}
	if rows[2][4] != "Name is required." {
		t.Errorf("row 2 result = %q", rows[2][4])
	}
	if rows[3][4] != "Email must be a valid email address." {
		t.Errorf("row 3 result = %q", rows[3][4])
	}
}

func TestImport_AccumulatesAllErrorsPerRow(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Email", "Age", "Joined"},
		[][]string{
			{"", "broken", "NaN-ish", "yesterday"},
		})

	var saved []*member
	out, err := Import(context.Background(), memberDeps(&saved, nil), data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("persisted %d rows, want 0", len(saved))
	}

	rows := readRows(t, out)
	result := rows[1][4]
	for _, want := range []string{
		"Name is required. ",
		"Email must be a valid email address. ",
		"Age must be a number. ",
		"Joined must be a valid date.",
	} {
		if !strings.Contains(result+" ", want) {
			t.Errorf("result %q missing %q", result, want)
		}
	}
}

func TestImport_UniqueColumnProbesStore(t *testing.T) {
	cfg := memberConfig()
	cfg.Column[0].Unique = true

	data := buildWorkbook(t,
		[]string{"Name", "Email", "Age", "Joined"},
		[][]string{
			{"Taken", "taken@example.com", "", ""},
			{"Free", "free@example.com", "", ""},
		})

	var saved []*member
	deps := memberDeps(&saved, map[string]bool{"name=Taken": true})
	deps.Config = cfg

	out, err := Import(context.Background(), deps, data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if len(saved) != 1 || saved[0].Name != "Free" {
		t.Fatalf("saved = %+v, want only Free", saved)
	}

	rows := readRows(t, out)
	if rows[1][4] != "name already exists." {
		t.Errorf("row 1 result = %q", rows[1][4])
	}
	if rows[2][4] != "Success" {
		t.Errorf("row 2 result = %q", rows[2][4])
	}
}

func TestImport_RegexAndCustomHook(t *testing.T) {
	cfg := memberConfig()
	cfg.Column[0].Regex = "^[A-Z][a-z]+$"
	cfg.Column[0].RegexErrorMessage = "Name must be capitalized."

	data := buildWorkbook(t,
		[]string{"Name", "Email", "Age", "Joined"},
		[][]string{
			{"lowercase", "a@example.com", "", ""},
			{"Minor", "b@example.com", "10", ""},
		})

	var saved []*member
	deps := memberDeps(&saved, nil)
	deps.Config = cfg
	deps.ValidateEntity = func(m *member) string {
		if m.Age != nil && *m.Age < 18 {
			return "Must be an adult. "
		}
		return ""
	}

	out, err := Import(context.Background(), deps, data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("saved = %d rows, want 0", len(saved))
	}

	rows := readRows(t, out)
	if rows[1][4] != "Name must be capitalized." {
		t.Errorf("row 1 result = %q", rows[1][4])
	}
	if rows[2][4] != "Must be an adult." {
		t.Errorf("row 2 result = %q", rows[2][4])
	}
}

func TestImport_ReorderedColumnsStillMap(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Age", "Joined", "Email", "Name"},
		[][]string{
			{"41", "", "x@example.com", "Xavier"},
		})

	var saved []*member
	_, err := Import(context.Background(), memberDeps(&saved, nil), data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved = %d rows, want 1", len(saved))
	}
	if saved[0].Name != "Xavier" || saved[0].Age == nil || *saved[0].Age != 41 {
		t.Errorf("saved = %+v", saved[0])
	}
}

func TestImport_EmptySheetReturnsTemplate(t *testing.T) {
	data := buildWorkbook(t, []string{"Name", "Email", "Age", "Joined"}, nil)

	var saved []*member
	out, err := Import(context.Background(), memberDeps(&saved, nil), data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	rows := readRows(t, out)
	if len(rows) != 1 {
		t.Fatalf("template has %d rows, want 1", len(rows))
	}
	want := []string{"Name", "Email", "Age", "Joined"}
	for i, label := range want {
		if rows[0][i] != label {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], label)
		}
	}
}

func TestImport_GarbageBytesIsMalformedFile(t *testing.T) {
	var saved []*member
	_, err := Import(context.Background(), memberDeps(&saved, nil), []byte("this is not a workbook"))

	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeMalformedFile {
		t.Fatalf("Import() error = %v, want MALFORMED_FILE", err)
	}
}

func TestImport_SaveFailureIsFatal(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Email", "Age", "Joined"},
		[][]string{{"Alice", "alice@example.com", "", ""}})

	var saved []*member
	deps := memberDeps(&saved, nil)
	deps.Save = func(ctx context.Context, m *member) error {
		return errors.New("store is down")
	}

	_, err := Import(context.Background(), deps, data)
	if err == nil {
		t.Fatal("expected save failure to propagate")
	}
}

func TestTemplate_HeadersFollowConfigOrder(t *testing.T) {
	out, err := Template(memberConfig())
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	rows := readRows(t, out)
	if len(rows) != 1 {
		t.Fatalf("template has %d rows, want 1", len(rows))
	}
	want := []string{"Name", "Email", "Age", "Joined"}
	for i, label := range want {
		if rows[0][i] != label {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], label)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	joined := time.Date(2001, 12, 24, 0, 0, 0, 0, time.UTC)
	age := 33
	entities := []*member{
		{Name: "Alice", Email: "alice@example.com", Age: &age, Joined: &joined},
		{Name: "Bob", Email: "bob@example.com"},
	}

	exported, err := Export(memberConfig(), memberFields(), entities, zap.NewNop())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var saved []*member
	_, err = Import(context.Background(), memberDeps(&saved, nil), exported)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if len(saved) != 2 {
		t.Fatalf("round trip persisted %d rows, want 2", len(saved))
	}
	if saved[0].Name != "Alice" || saved[0].Age == nil || *saved[0].Age != 33 {
		t.Errorf("first = %+v", saved[0])
	}
	if saved[0].Joined == nil || !saved[0].Joined.Equal(joined) {
		t.Errorf("joined = %v, want %v", saved[0].Joined, joined)
	}
	if saved[1].Name != "Bob" || saved[1].Age != nil {
		t.Errorf("second = %+v", saved[1])
	}
}
