package schemes

import (
	_ "embed"
	"fmt"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/classification"
)

var (
	//go:embed data/sic.csv
	sicCSV []byte
	//go:embed data/naics.csv
	naicsCSV []byte
	//go:embed data/gics.csv
	gicsCSV []byte
)

var (
	sicMeta = classification.Metadata{
		Name:          "Standard Industrial Classification",
		Acronym:       "SIC",
		Source:        "https://www.osha.gov/data/sic-manual",
		GoverningBody: "U.S. Office of Management and Budget",
		LastUpdated:   civil.Date{Year: 1987, Month: 1, Day: 1},
	}
	naicsMeta = classification.Metadata{
		Name:          "North American Industry Classification System",
		Acronym:       "NAICS",
		Source:        "https://www.census.gov/naics/",
		GoverningBody: "U.S. Census Bureau",
		LastUpdated:   civil.Date{Year: 2022, Month: 1, Day: 1},
	}
	gicsMeta = classification.Metadata{
		Name:          "Global Industry Classification Standard",
		Acronym:       "GICS",
		Source:        "https://www.msci.com/our-solutions/indexes/gics",
		GoverningBody: "MSCI and S&P Dow Jones Indices",
		LastUpdated:   civil.Date{Year: 2023, Month: 3, Day: 17},
	}
)

// NewSIC は SIC (major group → industry group → industry) の分類表を構築します。
// 先頭ゼロを持つ農業系の major group 01-09 は数値化すると他の階層と衝突するため含めません。
func NewSIC() (*classification.Registry[uint16], error) {
	return build[uint16](sicMeta, sicCSV, 16)
}

// NewNAICS は NAICS 2022 の分類表を構築します。
// 31-33 のような範囲表記のセクターは 31, 32, 33 の個別ルートとして持ちます。
func NewNAICS() (*classification.Registry[uint32], error) {
	return build[uint32](naicsMeta, naicsCSV, 32)
}

// NewGICS は GICS (sector → industry group → industry → sub-industry) の分類表を構築します。
func NewGICS() (*classification.Registry[uint32], error) {
	return build[uint32](gicsMeta, gicsCSV, 32)
}

func build[T ~uint16 | ~uint32](meta classification.Metadata, raw []byte, bits int) (*classification.Registry[T], error) {
	codes, err := load[T](raw, bits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", meta.Acronym, err)
	}
	reg, err := classification.NewRegistry(meta, codes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", meta.Acronym, err)
	}
	return reg, nil
}
