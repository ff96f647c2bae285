// Package classification models industry classification schemes as
// read-only forests of codes with O(1) lookup and a parent→children index.
package classification

import (
	"cmp"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

var (
	// ErrDuplicateCode は同じコードが2回現れたことを示します。
	ErrDuplicateCode = errors.New("duplicate code")
	// ErrDanglingParent は親コードが表に存在しないことを示します。
	ErrDanglingParent = errors.New("parent code not in table")
	// ErrCycle は親をたどると自分に戻ることを示します。
	ErrCycle = errors.New("parent chain forms a cycle")
)

// Metadata describes a classification scheme.
type Metadata struct {
	Name          string     `json:"name"`
	Acronym       string     `json:"acronym"`
	Source        string     `json:"source"`
	GoverningBody string     `json:"governing_body"`
	LastUpdated   civil.Date `json:"last_updated"`
}

// Code is one entry of a scheme. Parent is nil for a root.
type Code[T cmp.Ordered] struct {
	Code        T      `json:"code"`
	Parent      *T     `json:"parent,omitempty"`
	Description string `json:"description"`
}

// IsRoot reports whether the entry has no parent.
func (c Code[T]) IsRoot() bool { return c.Parent == nil }

// Registry は構築後に変更されない分類表です。並行読み取りにロックは不要です。
type Registry[T cmp.Ordered] struct {
	meta     Metadata
	entries  []Code[T]
	index    map[T]int
	children map[T][]int
	roots    []int
}

// NewRegistry は codes から Registry を構築し、森の不変条件を検証します。
// 重複コード、存在しない親、循環はエラーになります。codes の順序が子の順序になります。
func NewRegistry[T cmp.Ordered](meta Metadata, codes []Code[T]) (*Registry[T], error) {
	r := &Registry[T]{
		meta:     meta,
		entries:  make([]Code[T], len(codes)),
		index:    make(map[T]int, len(codes)),
		children: make(map[T][]int),
	}
	copy(r.entries, codes)

	for i, c := range r.entries {
		if _, dup := r.index[c.Code]; dup {
			return nil, fmt.Errorf("%s: %w: %v", meta.Acronym, ErrDuplicateCode, c.Code)
		}
		r.index[c.Code] = i
	}
	for i, c := range r.entries {
		if c.Parent == nil {
			r.roots = append(r.roots, i)
			continue
		}
		if _, ok := r.index[*c.Parent]; !ok {
			return nil, fmt.Errorf("%s: %w: %v (parent of %v)", meta.Acronym, ErrDanglingParent, *c.Parent, c.Code)
		}
		r.children[*c.Parent] = append(r.children[*c.Parent], i)
	}
	if err := r.checkAcyclic(); err != nil {
		return nil, err
	}
	return r, nil
}

// checkAcyclic walks every parent chain once; reaching a node that is
// still on the current walk means the chain loops.
func (r *Registry[T]) checkAcyclic() error {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]uint8, len(r.entries))
	for start := range r.entries {
		var path []int
		for i := start; state[i] != done; {
			if state[i] == onPath {
				return fmt.Errorf("%s: %w at %v", r.meta.Acronym, ErrCycle, r.entries[i].Code)
			}
			state[i] = onPath
			path = append(path, i)
			p := r.entries[i].Parent
			if p == nil {
				break
			}
			i = r.index[*p]
		}
		for _, j := range path {
			state[j] = done
		}
	}
	return nil
}

func (r *Registry[T]) Metadata() Metadata { return r.meta }

// Get はコードに完全一致する項目を返します。
func (r *Registry[T]) Get(code T) (Code[T], bool) {
	i, ok := r.index[code]
	if !ok {
		return Code[T]{}, false
	}
	return r.entries[i], true
}

// Children は parent を親に持つ項目を表の順序で返します。
// parent が表に存在しない場合は false、葉の場合は空のスライスと true を返します。
func (r *Registry[T]) Children(parent T) ([]Code[T], bool) {
	if _, ok := r.index[parent]; !ok {
		return nil, false
	}
	return r.collect(r.children[parent]), true
}

// Roots returns the top-level entries in table order.
func (r *Registry[T]) Roots() []Code[T] { return r.collect(r.roots) }

func (r *Registry[T]) Len() int { return len(r.entries) }

// Ancestors returns the parent chain of code, nearest first.
func (r *Registry[T]) Ancestors(code T) ([]Code[T], bool) {
	i, ok := r.index[code]
	if !ok {
		return nil, false
	}
	out := []Code[T]{}
	for p := r.entries[i].Parent; p != nil; {
		e := r.entries[r.index[*p]]
		out = append(out, e)
		p = e.Parent
	}
	return out, true
}

// All returns every entry in table order.
func (r *Registry[T]) All() []Code[T] {
	out := make([]Code[T], len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry[T]) collect(idx []int) []Code[T] {
	out := make([]Code[T], 0, len(idx))
	for _, i := range idx {
		out = append(out, r.entries[i])
	}
	return out
}
