package dataset

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const csvHeader = "Province,District,Sub-district,Happy Block,L2,Latitude,Longitude," +
	"Household,Install,Churn,% Churn,Port Use,Port Available,Port Utilization (%)," +
	"Market Share AIS (%),Market Share 3BB (%),Market Share NT (%),Market Share True (%)," +
	"True Speed,Net Add"

const goodRow = `Songkhla,Hat Yai,Kho Hong,HB-001,L2-01,7.006,100.498,150,90,5,5.5,60,80,75.0,20,10,15,40,850 Mbps,12`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	content := strings.Join([]string{
		csvHeader,
		goodRow,
		`Songkhla,Sadao,"Prik, Town",HB-002,L2-02,6.838,100.421,80,40,2,2.5,30,50,60.0,25,5,10,35,1000 Mbps,-3`,
	}, "\n")
	path := writeTemp(t, "data.csv", content)

	rows, err := Load(path, discardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	r := rows[0]
	if r.Province != "Songkhla" || r.District != "Hat Yai" || r.Subdistrict != "Kho Hong" {
		t.Errorf("unexpected geography: %+v", r)
	}
	if r.Household != 150 || r.Install != 90 || r.Churn != 5 || r.NetAdd != 12 {
		t.Errorf("unexpected counts: %+v", r)
	}
	if r.TrueSpeed != "850 Mbps" {
		t.Errorf("unexpected speed: %q", r.TrueSpeed)
	}
	if r.ID == rows[1].ID {
		t.Error("rows must get distinct ids")
	}
	// Quoted field with an embedded comma survives lenient parsing.
	if rows[1].Subdistrict != "Prik, Town" {
		t.Errorf("expected quoted sub-district, got %q", rows[1].Subdistrict)
	}
	if rows[1].NetAdd != -3 {
		t.Errorf("expected negative net add, got %d", rows[1].NetAdd)
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	content := strings.Join([]string{
		csvHeader,
		goodRow,
		`Songkhla,Hat Yai,Khlong Hae,HB-003,L2-03,7.03,100.47,abc,40,2,2.5,30,50,60.0,25,5,10,35,500 Mbps,1`,
		`Songkhla,Hat Yai`,
		goodRow,
	}, "\n")
	path := writeTemp(t, "data.csv", content)

	rows, err := Load(path, discardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// The unparseable-numeric row and the truncated row are dropped silently.
	if len(rows) != 2 {
		t.Errorf("expected 2 rows after skipping, got %d", len(rows))
	}
}

func TestLoadMissingColumnIsStructural(t *testing.T) {
	content := "Province,District\nSongkhla,Hat Yai\n"
	path := writeTemp(t, "data.csv", content)

	_, err := Load(path, discardLogger())
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for missing columns, got %v", err)
	}
}

func TestLoadEmptyFileIsStructural(t *testing.T) {
	path := writeTemp(t, "data.csv", "")
	_, err := Load(path, discardLogger())
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for empty file, got %v", err)
	}
}

func TestLoadMissingFileIsNotStructural(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), discardLogger())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrParse) {
		t.Error("missing file must not be reported as a structural parse failure")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "data.txt", csvHeader)
	if _, err := Load(path, discardLogger()); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
