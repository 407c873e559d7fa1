// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosolid/config"
)

func TestReadMaterialDBParsesModelAndPrms(t *testing.T) {
	const payload = `{
		"materials": [
			{"name": "s6", "desc": "linear elastic", "model": "elast", "prms": [
				{"n": "E", "v": 210000},
				{"n": "nu", "v": 0.3}
			]},
			{"name": "j2a", "desc": "finite-strain J2", "model": "j2finite", "prms": [
				{"n": "K", "v": 166666.7},
				{"n": "G", "v": 76923.1}
			]}
		]
	}`
	f, err := os.CreateTemp("", "materials-*.json")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString(payload)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	db, err := config.ReadMaterialDB(f.Name())
	require.NoError(t, err)
	require.Len(t, db.Materials, 2)

	s6 := db.Get("s6")
	require.NotNil(t, s6)
	require.Equal(t, "elast", s6.Model)
	require.Len(t, s6.Prms, 2)
	require.Equal(t, "E", s6.Prms[0].N)
	require.Equal(t, 210000.0, s6.Prms[0].V)

	require.Nil(t, db.Get("does-not-exist"))
}

func TestReadMaterialDBMissingFile(t *testing.T) {
	_, err := config.ReadMaterialDB("/nonexistent/materials.json")
	require.Error(t, err)
}
