/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme_test

import (
	"testing"

	"bennypowers.dev/vstheme/theme"
)

func TestOrderedMap(t *testing.T) {
	m := theme.NewOrderedMap[int]()
	if replaced := m.Set("b", 1); replaced {
		t.Error("first Set reported a replacement")
	}
	m.Set("a", 2)
	if replaced := m.Set("b", 3); !replaced {
		t.Error("second Set of the same key should report a replacement")
	}

	if got := m.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("Keys() = %v, want [b a]", got)
	}
	if v, ok := m.Get("b"); !ok || v != 3 {
		t.Errorf("Get(b) = %d, %v; want 3, true", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	var values []int
	for _, v := range m.All() {
		values = append(values, v)
	}
	if len(values) != 2 || values[0] != 3 || values[1] != 2 {
		t.Errorf("All() values = %v, want [3 2]", values)
	}
}
