package schemes

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"market_backend/internal/feature/classification"
)

var (
	// ErrUnknownScheme は Catalog に存在しない分類名が指定されたことを示します。
	ErrUnknownScheme = errors.New("unknown classification scheme")
	// ErrInvalidCode はコード文字列が分類のネイティブ型に変換できないことを示します。
	ErrInvalidCode = errors.New("invalid classification code")
)

// Entry は分類コードを文字列表現で表したものです。
type Entry struct {
	Code        string
	Parent      string
	Description string
}

// Scheme は分類表を文字列コードで引くための共通インターフェースです。
type Scheme interface {
	Metadata() classification.Metadata
	// Describe は code の分類エントリを返します。存在しなければ false を返します。
	Describe(code string) (Entry, bool, error)
	// Children は code 直下のエントリを表の順序で返します。code が存在しなければ false を返します。
	Children(code string) ([]Entry, bool, error)
	// Ancestors は code の親から根までを近い順に返します。
	Ancestors(code string) ([]Entry, bool, error)
}

type scheme[T ~uint16 | ~uint32] struct {
	reg  *classification.Registry[T]
	bits int
}

func (s scheme[T]) Metadata() classification.Metadata { return s.reg.Metadata() }

func (s scheme[T]) parse(code string) (T, error) {
	return parseUint[T](strings.TrimSpace(code), s.bits)
}

func (s scheme[T]) Describe(code string) (Entry, bool, error) {
	c, err := s.parse(code)
	if err != nil {
		return Entry{}, false, err
	}
	got, ok := s.reg.Get(c)
	if !ok {
		return Entry{}, false, nil
	}
	return toEntry(got), true, nil
}

func (s scheme[T]) Children(code string) ([]Entry, bool, error) {
	c, err := s.parse(code)
	if err != nil {
		return nil, false, err
	}
	children, ok := s.reg.Children(c)
	if !ok {
		return nil, false, nil
	}
	return toEntries(children), true, nil
}

func (s scheme[T]) Ancestors(code string) ([]Entry, bool, error) {
	c, err := s.parse(code)
	if err != nil {
		return nil, false, err
	}
	anc, ok := s.reg.Ancestors(c)
	if !ok {
		return nil, false, nil
	}
	return toEntries(anc), true, nil
}

func toEntry[T ~uint16 | ~uint32](c classification.Code[T]) Entry {
	e := Entry{
		Code:        strconv.FormatUint(uint64(c.Code), 10),
		Description: c.Description,
	}
	if c.Parent != nil {
		e.Parent = strconv.FormatUint(uint64(*c.Parent), 10)
	}
	return e
}

func toEntries[T ~uint16 | ~uint32](codes []classification.Code[T]) []Entry {
	out := make([]Entry, 0, len(codes))
	for _, c := range codes {
		out = append(out, toEntry(c))
	}
	return out
}

// Catalog は短縮名 (sic, naics, gics) で分類表を選択します。
type Catalog struct {
	schemes map[string]Scheme
}

// NewCatalog は組み込みの全分類表を構築して Catalog を返します。
func NewCatalog() (*Catalog, error) {
	sic, err := NewSIC()
	if err != nil {
		return nil, err
	}
	naics, err := NewNAICS()
	if err != nil {
		return nil, err
	}
	gics, err := NewGICS()
	if err != nil {
		return nil, err
	}
	return &Catalog{schemes: map[string]Scheme{
		"sic":   scheme[uint16]{reg: sic, bits: 16},
		"naics": scheme[uint32]{reg: naics, bits: 32},
		"gics":  scheme[uint32]{reg: gics, bits: 32},
	}}, nil
}

// Scheme は name に対応する分類表を返します。大文字小文字は区別しません。
func (c *Catalog) Scheme(name string) (Scheme, error) {
	s, ok := c.schemes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Names は登録済みの分類名を昇順で返します。
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.schemes))
	for n := range c.schemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Describe は分類名とコード文字列から説明を引きます。
func (c *Catalog) Describe(name, code string) (Entry, bool, error) {
	s, err := c.Scheme(name)
	if err != nil {
		return Entry{}, false, err
	}
	return s.Describe(code)
}
