package risknav

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names of the book inside a data directory, matching the upstream
// export layout.
const (
	PositionsFile = "positions.csv"
	PolicyFile    = "policy.csv"
)

// LoadBook reads the book from a data directory holding the positions
// and policy CSV files.
func LoadBook(dir string) (*Book, error) {
	posFile, err := os.Open(filepath.Join(dir, PositionsFile))
	if err != nil {
		return nil, fmt.Errorf("could not open positions file: %w", err)
	}
	defer posFile.Close()

	polFile, err := os.Open(filepath.Join(dir, PolicyFile))
	if err != nil {
		return nil, fmt.Errorf("could not open policy file: %w", err)
	}
	defer polFile.Close()

	book, err := DecodeBook(posFile, polFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode book in %q: %w", dir, err)
	}
	return book, nil
}

// SaveBook writes the book's CSV files into a data directory, creating
// the directory if needed.
func SaveBook(dir string, book *Book) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	posFile, err := os.Create(filepath.Join(dir, PositionsFile))
	if err != nil {
		return fmt.Errorf("could not create positions file: %w", err)
	}
	defer posFile.Close()

	var positions []Position
	for p := range book.Positions() {
		positions = append(positions, p)
	}
	if err := EncodePositions(posFile, positions); err != nil {
		return err
	}

	polFile, err := os.Create(filepath.Join(dir, PolicyFile))
	if err != nil {
		return fmt.Errorf("could not create policy file: %w", err)
	}
	defer polFile.Close()

	return EncodePolicies(polFile, book.Policies())
}
