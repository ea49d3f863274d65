// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"encoding/json"
	"fmt"
	"strings"

	"cogentcore.org/artflow/base/iox/jsonx"
	"cogentcore.org/artflow/scene"
)

// Update is a set of property changes for one element, as returned
// by advisors that propose edits rather than whole elements.
type Update struct {
	ID      string          `json:"id"`
	Changes json.RawMessage `json:"changes"`
}

// ParseUpdates parses a JSON array of updates, ignoring a surrounding
// markdown code fence.
func ParseUpdates(text string) ([]Update, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var ups []Update
	if err := jsonx.ReadBytes(&ups, []byte(text)); err != nil {
		return nil, fmt.Errorf("suggest: parsing updates: %w", err)
	}
	return ups, nil
}

// Merge returns copies of the elements with the changes of the matching
// updates applied. Elements without an update are copied unchanged, and
// updates for unknown ids are ignored. Element ids and kinds never change.
func Merge(elements []*scene.Element, updates []Update) ([]*scene.Element, error) {
	out := scene.CloneList(elements)
	for _, up := range updates {
		el := scene.Find(out, up.ID)
		if el == nil || len(up.Changes) == 0 {
			continue
		}
		id, kind := el.ID, el.Kind
		if err := json.Unmarshal(up.Changes, el); err != nil {
			return nil, fmt.Errorf("suggest: changes for %s: %w", up.ID, err)
		}
		el.ID, el.Kind = id, kind
		el.Sanitize()
	}
	return out, nil
}
