// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// legacyContentField is the content key written by editors that predate
// contentHTML.
const legacyContentField = "contentRichText"

var errNotAnArray = errors.New("slot value is not a JSON array")

// decodeStats describes how much of a slot value needed repair.
type decodeStats struct {
	// skipped counts array elements that are not objects.
	skipped int
	// reassigned counts records that got a fresh id because theirs was
	// missing, unusable or already taken.
	reassigned int
}

// decodeMemos parses a slot value leniently. Only array elements that are
// not objects are skipped. Every field falls back to its default when missing
// or of the wrong type, and a record without a usable id, or with an id
// already used by an earlier record, gets a fresh id above all others.
func decodeMemos(value string) ([]models.Memo, decodeStats, error) {
	var stats decodeStats
	if strings.TrimSpace(value) == "" {
		return []models.Memo{}, stats, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, stats, fmt.Errorf("%w: %w", errNotAnArray, err)
	}
	if raw == nil {
		// "null"
		return nil, stats, errNotAnArray
	}

	type record struct {
		memo  models.Memo
		hasID bool
	}

	records := make([]record, 0, len(raw))
	var maxID int64
	for _, item := range raw {
		memo, hasID, ok := decodeMemo(item)
		if !ok {
			stats.skipped++
			continue
		}
		if hasID {
			maxID = max(maxID, memo.ID)
		}
		records = append(records, record{memo: memo, hasID: hasID})
	}

	memos := make([]models.Memo, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.memo.ID]; !r.hasID || dup {
			maxID++
			r.memo.ID = maxID
			stats.reassigned++
		}
		seen[r.memo.ID] = struct{}{}
		memos = append(memos, r.memo)
	}

	return memos, stats, nil
}

// decodeMemo reports ok=false only when item is not a JSON object. hasID is
// false when the id is missing, not a whole number or not positive.
func decodeMemo(item json.RawMessage) (memo models.Memo, hasID, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return models.Memo{}, false, false
	}

	memo = models.Memo{
		Title:    decodeString(fields["title"]),
		Tags:     decodeTags(fields["tags"]),
		Date:     decodeString(fields["date"]),
		FontSize: decodeString(fields["fontSize"]),
	}
	memo.ID, hasID = decodeID(fields["id"])
	if memo.ID <= 0 {
		hasID = false
	}
	if content, present := fields["contentHTML"]; present {
		memo.ContentHTML = decodeString(content)
	} else {
		memo.ContentHTML = decodeString(fields[legacyContentField])
	}
	_ = json.Unmarshal(fields["isBold"], &memo.IsBold)

	memo.Normalize()
	return memo, hasID, true
}

// decodeID accepts whole numbers, also when written as a JSON string.
func decodeID(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var num json.Number
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		num = json.Number(strings.TrimSpace(s))
	} else {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&num); err != nil {
			return 0, false
		}
	}
	if num == "" {
		return 0, false
	}

	if id, err := num.Int64(); err == nil {
		return id, true
	}

	// 1.7e12 is still a valid millisecond timestamp
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, false
	}
	return int64(f), true
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func decodeTags(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []string{}
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		var tag string
		if json.Unmarshal(item, &tag) == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// encodeMemos serializes memos in their canonical form. The result is always
// a JSON array, never null.
func encodeMemos(memos []models.Memo) (string, error) {
	out := make([]models.Memo, 0, len(memos))
	for _, m := range memos {
		m = m.Clone()
		m.Normalize()
		out = append(out, m)
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
