// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads material parameter sets from JSON, in the shape of
// the teacher repository's inp/mat.go ".mat" database. It only parses
// data into fun.Prms; it deliberately does not turn a parsed Material into
// a live model instance — that closed-set lookup belongs at the driver
// boundary (cmd/materialpoint), not in the core (spec §9.1).
package config

import (
	"encoding/json"

	"github.com/cpmech/gosolid/fun"
	"github.com/cpmech/gosolid/utl"
)

// Material holds one named material's model choice and parameters
type Material struct {
	Name  string   `json:"name"`  // name of this material instance
	Desc  string   `json:"desc"`  // human-readable description
	Model string   `json:"model"` // model key, e.g. "j2finite", "elast"
	Extra string   `json:"extra"` // extra free-form information
	Prms  fun.Prms `json:"prms"`  // model parameters
}

// MaterialDB is a parsed materials file
type MaterialDB struct {
	Materials []*Material `json:"materials"`
}

// ReadMaterialDB reads and parses a materials JSON file
func ReadMaterialDB(fn string) (*MaterialDB, error) {
	b, err := utl.ReadFile(fn)
	if err != nil {
		return nil, utl.Err("config: cannot open materials file %q: %v", fn, err)
	}
	var db MaterialDB
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, utl.Err("config: cannot parse materials file %q: %v", fn, err)
	}
	return &db, nil
}

// Get returns the named material, or nil if not present
func (o *MaterialDB) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
