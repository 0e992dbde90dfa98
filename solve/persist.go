// File: persist.go
// Role: LoadMemo / SaveMemo — the optional persisted memo file: line-
// oriented UTF-8 text, each line "fingerprint,net_score". Uses
// encoding/csv for robust two-field parsing; no third-party CSV library
// appears anywhere in the example pack (see repository DESIGN.md).

package solve

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// LoadMemo reads a persisted memo file and returns its entries as a fresh
// Memo. A missing file is not an error: the memo starts empty. Loaded
// entries carry no move sequence (only the score is persisted): a cache
// hit on a loaded entry returns the correct score but an empty
// continuation, so a Result.Sequence that passes through such a position
// ends there.
func LoadMemo(path string) (Memo, error) {
	m := NewMemo()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, wrapf("LoadMemo", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapf("LoadMemo", err)
		}

		score, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, wrapf("LoadMemo", ErrMalformedMemoLine)
		}
		m.Set(record[0], Entry{Score: score})
	}

	return m, nil
}

// SaveMemo writes m to path as "fingerprint,net_score" lines, overwriting
// any existing file. Only mapMemo and *SyncMemo support enumeration; other
// Memo implementations return an error rather than silently writing
// nothing.
func SaveMemo(path string, m Memo) error {
	entries, err := enumerate(m)
	if err != nil {
		return wrapf("SaveMemo", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return wrapf("SaveMemo", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for key, e := range entries {
		if err := w.Write([]string{key, strconv.Itoa(e.Score)}); err != nil {
			return wrapf("SaveMemo", err)
		}
	}
	w.Flush()

	return w.Error()
}

// enumerate returns all entries in m as a plain map, regardless of whether
// m is the default mapMemo or a *SyncMemo.
func enumerate(m Memo) (map[string]Entry, error) {
	switch t := m.(type) {
	case mapMemo:
		return map[string]Entry(t), nil
	case *SyncMemo:
		t.mu.RLock()
		defer t.mu.RUnlock()
		out := make(map[string]Entry, len(t.m))
		for k, v := range t.m {
			out[k] = v
		}
		return out, nil
	default:
		return nil, wrapf("enumerate", errUnsupportedMemoType)
	}
}
