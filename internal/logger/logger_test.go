/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"os"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	Info("wrote %s", "themes/a.json")
	Warn("selector %q assigned twice", "variable")
	Debug("hidden")

	want := "wrote themes/a.json\nwarning: selector \"variable\" assigned twice\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	SetVerbose(true)
	Debug("rule %d", 3)
	if got := buf.String(); got != "debug: rule 3\n" {
		t.Errorf("verbose Debug output = %q", got)
	}
}
