package memo

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key hashes the canonical JSON encoding of v. Struct field order makes the
// encoding canonical; maps are sorted by encoding/json.
func Key(prefix string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("memo key: %w", err)
	}
	return prefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
