// Package schemes は組み込みの業種分類 (SIC, NAICS, GICS) を提供します。
//
// 各分類表は code,parent,description の CSV として埋め込まれており、
// New* コンストラクタを呼んだ時点で classification.Registry に組み立てられます。
package schemes

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"market_backend/internal/feature/classification"
)

var header = []string{"code", "parent", "description"}

// load は埋め込み CSV を読み込み、bits 幅の符号なし整数コードへ変換します。
func load[T ~uint16 | ~uint32](raw []byte, bits int) ([]classification.Code[T], error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = len(header)

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		if head[i] != h {
			return nil, fmt.Errorf("unexpected header %v", head)
		}
	}

	var codes []classification.Code[T]
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		code, err := parseUint[T](rec[0], bits)
		if err != nil {
			return nil, err
		}
		c := classification.Code[T]{Code: code, Description: rec[2]}
		if rec[1] != "" {
			parent, err := parseUint[T](rec[1], bits)
			if err != nil {
				return nil, err
			}
			c.Parent = &parent
		}
		codes = append(codes, c)
	}
	return codes, nil
}

func parseUint[T ~uint16 | ~uint32](s string, bits int) (T, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return T(n), nil
}
