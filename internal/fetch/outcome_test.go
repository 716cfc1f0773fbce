// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junctionhq/junction/internal/models"
)

func TestOutcomeTagging(t *testing.T) {
	ok := Success(models.ArrQueue{TotalRecords: 4})
	assert.True(t, ok.OK())
	assert.Empty(t, ok.Reason())

	fail := Failure("connection refused")
	assert.False(t, fail.OK())
	assert.Nil(t, fail.Data())
	assert.Equal(t, "connection refused", fail.Reason())
}

func TestOutcomeZeroValueIsFailure(t *testing.T) {
	var o Outcome
	assert.False(t, o.OK())
}

func TestAs(t *testing.T) {
	o := Success(models.ArrQueue{TotalRecords: 4})

	q, ok := As[models.ArrQueue](o)
	assert.True(t, ok)
	assert.Equal(t, 4, q.TotalRecords)

	// Wrong payload type
	_, ok = As[models.Activity](o)
	assert.False(t, ok)

	// Failure never extracts
	_, ok = As[models.ArrQueue](Failure("down"))
	assert.False(t, ok)
}
