package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Bucket is the lower bound (km/h) of a half-open speed interval
type Bucket float64

// BucketOf maps a speed onto its bucket: floor(speed / width) * width
func BucketOf(speed, width float64) Bucket {
	return Bucket(math.Floor(speed/width) * width)
}

// String formats the bucket with at least one decimal, e.g. "10.0"
func (b Bucket) String() string {
	s := strconv.FormatFloat(float64(b), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// MarshalText lets buckets be used as JSON object keys
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a bucket key
func (b *Bucket) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}
	*b = Bucket(v)
	return nil
}

// MarshalJSON keeps buckets numeric when they appear as values
func (b Bucket) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalJSON parses a bucket from a number or, as for object keys,
// a quoted string
func (b *Bucket) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		data = []byte(s)
	}
	return b.UnmarshalText(data)
}

// sortBuckets orders buckets ascending
func sortBuckets(buckets []Bucket) {
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })
}
