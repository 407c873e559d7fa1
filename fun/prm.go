// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fun holds small shared record types used to configure models:
// named scalar parameters, read by name during a model's Init.
package fun

// Prm holds one named model parameter
type Prm struct {
	N     string  `json:"n"`     // name of parameter
	V     float64 `json:"v"`     // value of parameter
	Extra string  `json:"extra"` // extra information, e.g. "kgc:name"
}

// Prms is a set of parameters
type Prms []*Prm

// Find returns the parameter named n, or nil if not present
func (o Prms) Find(n string) *Prm {
	for _, p := range o {
		if p.N == n {
			return p
		}
	}
	return nil
}

// GetValueOrDefault returns the value of the parameter named n, or def if absent
func (o Prms) GetValueOrDefault(n string, def float64) float64 {
	if p := o.Find(n); p != nil {
		return p.V
	}
	return def
}

// Keycode returns the value that follows "key:" in extra, up to the next
// space (e.g. key "kgc" in "kgc:lin" gives "lin"), and whether key was found
func Keycode(extra, key string) (string, bool) {
	if extra == "" {
		return "", false
	}
	n := len(key)
	for i := 0; i+n+1 <= len(extra); i++ {
		if extra[i:i+n] == key && i+n < len(extra) && extra[i+n] == ':' {
			j := i + n + 1
			k := j
			for k < len(extra) && extra[k] != ' ' {
				k++
			}
			return extra[j:k], true
		}
	}
	return "", false
}
