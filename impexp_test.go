package risknav

import (
	"bytes"
	"strings"
	"testing"
)

func TestBook_EncodeDecode(t *testing.T) {
	book := testBook()

	var positions []Position
	for p := range book.Positions() {
		positions = append(positions, p)
	}

	var posBuf, polBuf bytes.Buffer
	if err := EncodePositions(&posBuf, positions); err != nil {
		t.Fatalf("EncodePositions() error = %v", err)
	}
	if err := EncodePolicies(&polBuf, book.Policies()); err != nil {
		t.Fatalf("EncodePolicies() error = %v", err)
	}

	decoded, err := DecodeBook(&posBuf, &polBuf)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}

	if decoded.Len() != book.Len() {
		t.Fatalf("decoded %d positions, want %d", decoded.Len(), book.Len())
	}
	if len(decoded.Policies()) != len(book.Policies()) {
		t.Fatalf("decoded %d policies, want %d", len(decoded.Policies()), len(book.Policies()))
	}

	// The decoded book computes the same snapshot.
	before := Compute(book, NewDate(2026, 1, 30))
	after := Compute(decoded, NewDate(2026, 1, 30))
	if !before.TotalAssets().Equal(after.TotalAssets()) {
		t.Errorf("TotalAssets changed through CSV: %v != %v", before.TotalAssets(), after.TotalAssets())
	}
	if !about(before.FundedStatus(), after.FundedStatus()) {
		t.Errorf("FundedStatus changed through CSV: %v != %v", before.FundedStatus(), after.FundedStatus())
	}
	if before.AssetDuration() != after.AssetDuration() {
		t.Errorf("AssetDuration changed through CSV: %v != %v", before.AssetDuration(), after.AssetDuration())
	}
}

func TestDecodePositions_MissingCells(t *testing.T) {
	csv := strings.Join([]string{
		strings.Join(positionHeader, ","),
		"2026-01-30,Gap Row,Asset,Fixed Income,Nominal Bonds,Government,North America,Canada,CAD,1000000,,1000,,0,0,10,75",
	}, "\n")

	positions, err := DecodePositions(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodePositions() error = %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("decoded %d positions, want 1", len(positions))
	}
	p := positions[0]
	if !p.IsMissing("exposure_cad") || !p.IsMissing("duration") {
		t.Errorf("empty cells not recorded as missing: %v", p.Missing)
	}
	if p.IsMissing("mtm_cad") {
		t.Error("populated cell recorded as missing")
	}
	if !p.Exposure.IsZero() {
		t.Errorf("missing exposure should default to zero, got %v", p.Exposure)
	}
}

func TestDecodePositions_BadHeader(t *testing.T) {
	csv := "foo,bar\n1,2\n"
	if _, err := DecodePositions(strings.NewReader(csv)); err == nil {
		t.Error("expected an error for a foreign header")
	}
}

func TestLoadSaveBook(t *testing.T) {
	dir := t.TempDir()
	book := testBook()

	if err := SaveBook(dir, book); err != nil {
		t.Fatalf("SaveBook() error = %v", err)
	}
	loaded, err := LoadBook(dir)
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if loaded.Len() != book.Len() {
		t.Errorf("loaded %d positions, want %d", loaded.Len(), book.Len())
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadBook_MissingDir(t *testing.T) {
	if _, err := LoadBook("does/not/exist"); err == nil {
		t.Error("expected an error for a missing data directory")
	}
}
