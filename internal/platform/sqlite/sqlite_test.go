// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/registra-app/registra/internal/platform/sqlite"
)

/*
TestNormalizeBackupPath verifies that backup destinations always end up
with a SQLite file extension while recognized extensions pass through.
*/
func TestNormalizeBackupPath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"sqlite kept", "backups/nightly.sqlite", "backups/nightly.sqlite"},
		{"db kept", "backups/nightly.db", "backups/nightly.db"},
		{"case-insensitive", "backups/Nightly.DB", "backups/Nightly.DB"},
		{"no extension", "backups/nightly", "backups/nightly.sqlite"},
		{"other extension replaced", "backups/nightly.txt", "backups/nightly.sqlite"},
		{"dotted directory", "backups.v2/nightly", "backups.v2/nightly.sqlite"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, sqlite.NormalizeBackupPath(testCase.input))
		})
	}
}
