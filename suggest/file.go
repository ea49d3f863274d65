// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"context"
	"errors"
	"os"

	"cogentcore.org/artflow/place"
	"cogentcore.org/artflow/scene"
)

// FileAdvisor is an [Advisor] that answers from local files: a JSON
// array of element updates for suggestions, and an image file for
// generation. It is used for offline runs and scripted edits.
type FileAdvisor struct {

	// UpdatesFile is a JSON array of {id, changes} updates,
	// optionally inside a markdown code fence.
	UpdatesFile string

	// ImageFile is returned, inlined as a data URI, by Generate.
	ImageFile string
}

func (fa *FileAdvisor) Suggest(ctx context.Context, req Request) ([]*scene.Element, error) {
	if fa.UpdatesFile == "" {
		return nil, errors.New("suggest: no updates file")
	}
	b, err := os.ReadFile(fa.UpdatesFile)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ups, err := ParseUpdates(string(b))
	if err != nil {
		return nil, err
	}
	return Merge(req.Elements, ups)
}

func (fa *FileAdvisor) Generate(ctx context.Context, prompt string) (place.Payload, error) {
	if fa.ImageFile == "" {
		return place.Payload{}, errors.New("suggest: no image file")
	}
	if err := ctx.Err(); err != nil {
		return place.Payload{}, err
	}
	return place.PayloadFromFile(fa.ImageFile)
}
